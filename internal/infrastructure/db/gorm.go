package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/employee"
	"meewoo-banking/internal/domain/fd"
	"meewoo-banking/internal/domain/hiring"
	"meewoo-banking/internal/domain/ledger"
	"meewoo-banking/internal/domain/loan"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate keeps the schema current with the domain entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customer.Customer{},
		&employee.Employee{},
		&ledger.Entry{},
		&fd.FixedDeposit{},
		&loan.Application{},
		&hiring.JobApplication{},
	)
}
