package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/account"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type transferReq struct {
	Amount             float64 `json:"amount" validate:"required,gt=0,dec2"`
	ReceiverCustomerID string  `json:"receiver_customer_id" validate:"required,max=16"`
	ReceiverMobileNo   string  `json:"receiver_mobile_number" validate:"required,mobile"`
}

func (h *AccountHandler) Transfer(c echo.Context) error {
	var req transferReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Transfer(c.Request().Context(), p.ID, account.TransferInput{
		Amount:             decimal.NewFromFloat(req.Amount),
		ReceiverCustomerID: req.ReceiverCustomerID,
		ReceiverMobileNo:   req.ReceiverMobileNo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AccountHandler) Balance(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.CheckBalance(c.Request().Context(), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
