package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/statement"
)

type StatementHandler struct{ uc *statement.Usecase }

func NewStatementHandler(uc *statement.Usecase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Download serves the caller's transaction history PDF for
// ?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD.
func (h *StatementHandler) Download(c echo.Context) error {
	start, err := time.Parse("2006-01-02", c.QueryParam("startDate"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate must be YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", c.QueryParam("endDate"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endDate must be YYYY-MM-DD"})
	}

	p, _ := middleware.PrincipalFrom(c)
	st, err := h.uc.Render(c.Request().Context(), p.ID, start, end)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+st.Filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", st.PDF)
}
