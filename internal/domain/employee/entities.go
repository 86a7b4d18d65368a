package employee

import "time"

// Employee records are created only by the hiring workflow, never directly.
type Employee struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"-"`
	EmployeeID         string    `gorm:"size:16;uniqueIndex:ux_employees_employee_id" json:"employee_id"`
	FirstName          string    `gorm:"size:64" json:"first_name"`
	LastName           string    `gorm:"size:64" json:"last_name"`
	Email              string    `gorm:"size:128;uniqueIndex:ux_employees_email" json:"email"`
	MobileNumber       string    `gorm:"size:15;uniqueIndex:ux_employees_mobile" json:"mobile_number"`
	JobTitle           string    `gorm:"size:64" json:"job_title"`
	HireDate           time.Time `gorm:"type:date" json:"hire_date"`
	PasswordHash       string    `gorm:"size:128" json:"-"`
	AccountEnabled     bool      `gorm:"not null;default:true" json:"account_enabled"`
	AccountLocked      bool      `gorm:"not null;default:false" json:"account_locked"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) Enabled() bool { return e.AccountEnabled && !e.AccountLocked }

func (e *Employee) FullName() string { return e.FirstName + " " + e.LastName }
