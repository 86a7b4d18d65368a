package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanApplyReq struct {
	LoanType         string   `json:"loan_type" validate:"required,max=32"`
	RequestedAmount  float64  `json:"requested_amount" validate:"required,gte=1000,dec2"`
	TermInMonths     int      `json:"term_in_months" validate:"required,gte=6,lte=120"`
	Purpose          string   `json:"purpose" validate:"required,max=512"`
	MonthlyIncome    *float64 `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	EmploymentStatus string   `json:"employment_status" validate:"max=32"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req loanApplyReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	in := loan.ApplyInput{
		LoanType:         req.LoanType,
		RequestedAmount:  decimal.NewFromFloat(req.RequestedAmount),
		TermInMonths:     req.TermInMonths,
		Purpose:          req.Purpose,
		EmploymentStatus: req.EmploymentStatus,
	}
	if req.MonthlyIncome != nil {
		income := decimal.NewFromFloat(*req.MonthlyIncome)
		in.MonthlyIncome = &income
	}
	res, err := h.uc.Apply(c.Request().Context(), p.ID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanHandler) ListMine(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.ListMine(c.Request().Context(), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) ListActionable(c echo.Context) error {
	res, err := h.uc.ListActionable(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type loanApproveReq struct {
	ApprovedAmount float64 `json:"approved_amount" validate:"required,gt=0,dec2"`
	InterestRate   float64 `json:"interest_rate" validate:"required,gt=0.1"`
}

func (h *LoanHandler) Approve(c echo.Context) error {
	loanID, ok, err := pathID(c, "loan_id")
	if !ok {
		return err
	}
	var req loanApproveReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Approve(c.Request().Context(), loanID, p.ID, loan.ApproveInput{
		ApprovedAmount: decimal.NewFromFloat(req.ApprovedAmount),
		InterestRate:   decimal.NewFromFloat(req.InterestRate),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) Reject(c echo.Context) error {
	loanID, ok, err := pathID(c, "loan_id")
	if !ok {
		return err
	}
	var req rejectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Reject(c.Request().Context(), loanID, p.ID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
