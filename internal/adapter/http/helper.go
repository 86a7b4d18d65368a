package http

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/domain/errs"
)

// writeError translates a usecase error into the matching HTTP response.
// Internal details never leak to the client.
func writeError(c echo.Context, err error) error {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errs.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errs.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errs.KindAuth:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindAndValidate reports ok=false after writing the 400 response itself.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
	}
	return n, true, nil
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
