package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/onboarding"
)

type OnboardingHandler struct{ uc *onboarding.Usecase }

func NewOnboardingHandler(uc *onboarding.Usecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

type registerReq struct {
	FirstName    string `json:"first_name" validate:"required,max=64"`
	LastName     string `json:"last_name" validate:"required,max=64"`
	FatherName   string `json:"father_name" validate:"max=64"`
	MobileNumber string `json:"mobile_number" validate:"required,mobile"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Address      string `json:"address" validate:"max=512"`
	Pincode      string `json:"pincode" validate:"max=10"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

func (h *OnboardingHandler) Register(c echo.Context) error {
	var req registerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	in := onboarding.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FatherName:   req.FatherName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		Pincode:      req.Pincode,
	}
	if req.DateOfBirth != "" {
		dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
		in.DateOfBirth = &dob
	}
	res, err := h.uc.Register(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// Login only verifies: BasicAuth already authenticated the caller, so this
// endpoint just reflects the resolved principal back.
func (h *OnboardingHandler) Login(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "credentials required"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"kind":         string(p.Kind),
		"id":           p.ID,
		"display_name": p.DisplayName,
	})
}

func (h *OnboardingHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OnboardingHandler) Approve(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	if err := h.uc.ApproveRegistration(c.Request().Context(), c.Param("customer_id"), p.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

func (h *OnboardingHandler) Reject(c echo.Context) error {
	p, _ := middleware.PrincipalFrom(c)
	if err := h.uc.RejectRegistration(c.Request().Context(), c.Param("customer_id"), p.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}
