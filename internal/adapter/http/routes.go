package http

import (
	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/identity"
)

// Handlers bundles every route target for registration.
type Handlers struct {
	Base       *Handler
	Onboarding *OnboardingHandler
	Account    *AccountHandler
	Teller     *TellerHandler
	FD         *FDHandler
	Loan       *LoanHandler
	Hiring     *HiringHandler
	Statement  *StatementHandler
}

// RegisterRoutes wires the public, customer, employee and admin route groups.
// Mutating money endpoints additionally carry the idempotency guard.
func RegisterRoutes(e *echo.Echo, h Handlers, dir *identity.Directory, idemp echo.MiddlewareFunc) {
	auth := middleware.BasicAuth(dir)

	// public
	e.GET("/health", h.Base.Health)
	e.POST("/register", h.Onboarding.Register)
	e.POST("/apply-for-job", h.Hiring.Submit)

	e.POST("/login", h.Onboarding.Login, auth)

	// customer self-service
	cust := e.Group("", auth, middleware.RequireCustomer)
	cust.GET("/check-balance", h.Account.Balance)
	cust.POST("/transfer", h.Account.Transfer, idemp)
	cust.GET("/transactions/download", h.Statement.Download)
	cust.POST("/fd/apply", h.FD.Apply)
	cust.GET("/fd/my-fds", h.FD.ListMine)
	cust.POST("/loan/apply", h.Loan.Apply)
	cust.GET("/loan/my-loans", h.Loan.ListMine)

	// teller operations, employees and admins
	emp := e.Group("/employee", auth, middleware.RequireStaff)
	emp.POST("/deposit", h.Teller.Deposit, idemp)
	emp.POST("/withdraw", h.Teller.Withdraw, idemp)
	emp.GET("/check-balance/:customer_id", h.Teller.Balance)

	// admin
	admin := e.Group("/admin", auth, middleware.RequireAdmin)
	admin.GET("/pending", h.Onboarding.ListPending)
	admin.POST("/approve/:customer_id", h.Onboarding.Approve)
	admin.POST("/reject/:customer_id", h.Onboarding.Reject)

	admin.GET("/fd/pending", h.FD.ListPending)
	admin.POST("/fd/:fd_id/approve", h.FD.Approve, idemp)
	admin.POST("/fd/:fd_id/reject", h.FD.Reject)

	admin.GET("/loan/pending", h.Loan.ListActionable)
	admin.POST("/loan/:loan_id/approve", h.Loan.Approve)
	admin.POST("/loan/:loan_id/reject", h.Loan.Reject)

	admin.GET("/applications", h.Hiring.List)
	admin.GET("/applications/:application_id", h.Hiring.Get)
	admin.POST("/applications/:application_id/schedule-interview", h.Hiring.ScheduleInterview)
	admin.POST("/applications/:application_id/reject", h.Hiring.Reject)
	admin.POST("/applications/:application_id/hire", h.Hiring.Hire)
}
