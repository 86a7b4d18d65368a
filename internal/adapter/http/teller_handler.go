package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/account"
)

// TellerHandler covers the staff-side counter operations.
type TellerHandler struct{ uc *account.Usecase }

func NewTellerHandler(uc *account.Usecase) *TellerHandler { return &TellerHandler{uc: uc} }

type tellerMutationReq struct {
	CustomerID string  `json:"customer_id" validate:"required,max=16"`
	Amount     float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *TellerHandler) Deposit(c echo.Context) error {
	var req tellerMutationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Deposit(c.Request().Context(), req.CustomerID, decimal.NewFromFloat(req.Amount), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *TellerHandler) Withdraw(c echo.Context) error {
	var req tellerMutationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Withdraw(c.Request().Context(), req.CustomerID, decimal.NewFromFloat(req.Amount), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *TellerHandler) Balance(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.EmployeeCheckBalance(c.Request().Context(), c.Param("customer_id"), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
