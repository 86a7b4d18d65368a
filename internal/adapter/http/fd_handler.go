package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/fd"
)

type FDHandler struct{ uc *fd.Usecase }

func NewFDHandler(uc *fd.Usecase) *FDHandler { return &FDHandler{uc: uc} }

type fdApplyReq struct {
	PrincipalAmount float64 `json:"principal_amount" validate:"required,gte=500,dec2"`
	TermInMonths    int     `json:"term_in_months" validate:"required,gte=1,lte=120"`
}

func (h *FDHandler) Apply(c echo.Context) error {
	var req fdApplyReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Apply(c.Request().Context(), p.ID, fd.ApplyInput{
		PrincipalAmount: decimal.NewFromFloat(req.PrincipalAmount),
		TermInMonths:    req.TermInMonths,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *FDHandler) ListMine(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.ListMine(c.Request().Context(), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *FDHandler) ListPending(c echo.Context) error {
	res, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *FDHandler) Approve(c echo.Context) error {
	fdID, ok, err := pathID(c, "fd_id")
	if !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Approve(c.Request().Context(), fdID, p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *FDHandler) Reject(c echo.Context) error {
	fdID, ok, err := pathID(c, "fd_id")
	if !ok {
		return err
	}
	var req rejectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Reject(c.Request().Context(), fdID, p.ID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
