package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "meewoo-banking/internal/adapter/http"
	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/adapter/repository/mysql"
	"meewoo-banking/internal/config"
	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/infrastructure/cache"
	"meewoo-banking/internal/infrastructure/db"
	"meewoo-banking/internal/usecase/account"
	"meewoo-banking/internal/usecase/fd"
	"meewoo-banking/internal/usecase/hiring"
	"meewoo-banking/internal/usecase/identity"
	"meewoo-banking/internal/usecase/loan"
	"meewoo-banking/internal/usecase/onboarding"
	"meewoo-banking/internal/usecase/statement"
	"meewoo-banking/pkg/id"
	"meewoo-banking/pkg/money"
	"meewoo-banking/pkg/password"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	employees := mysql.NewEmployeeRepository(gdb)
	ledgerRepo := mysql.NewLedgerRepository(gdb)
	fds := mysql.NewFixedDepositRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	jobApps := mysql.NewJobApplicationRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	if err := seedAdmin(gdb, customers, cfg); err != nil {
		log.Fatal(err)
	}

	bank := onboarding.BankIdentity{
		BankCode:   cfg.BankCode,
		BranchCode: cfg.BranchCode,
		IFSCPrefix: cfg.IFSCPrefix,
	}

	dir := identity.NewDirectory(customers, employees)
	h := httpadp.Handlers{
		Base:       httpadp.NewHandler(),
		Onboarding: httpadp.NewOnboardingHandler(onboarding.NewUsecase(customers, uow, bank)),
		Account:    httpadp.NewAccountHandler(account.NewUsecase(customers, uow)),
		Teller:     httpadp.NewTellerHandler(account.NewUsecase(customers, uow)),
		FD:         httpadp.NewFDHandler(fd.NewUsecase(fds, customers, uow)),
		Loan:       httpadp.NewLoanHandler(loan.NewUsecase(loans, customers, uow)),
		Hiring:     httpadp.NewHiringHandler(hiring.NewUsecase(jobApps, uow)),
		Statement:  httpadp.NewStatementHandler(statement.NewUsecase(customers, ledgerRepo)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Request-Id", "X-Request-At"},
	}))

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e, h, dir, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the bootstrap admin account on first start.
func seedAdmin(gdb *gorm.DB, customers customer.Repository, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := customers.GetByMobileNumber(ctx, cfg.AdminMobile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &customer.Customer{
		CustomerID:    id.Prefixed("CUST-", 8),
		FirstName:     "Bank",
		LastName:      "Admin",
		MobileNumber:  cfg.AdminMobile,
		Email:         cfg.AdminEmail,
		PasswordHash:  hash,
		AccountNumber: cfg.BankCode + cfg.BranchCode + id.AccountSerial(),
		IFSCode:       cfg.IFSCPrefix + cfg.BranchCode,
		BranchCode:    cfg.BranchCode,
		Balance:       money.FromFloat(0),
		IsAdmin:       true,
		IsApproved:    true,
	}
	if err := customers.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("seeded admin customer %s", admin.CustomerID)
	return nil
}
