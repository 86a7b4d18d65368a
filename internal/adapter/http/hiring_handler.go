package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/adapter/middleware"
	"meewoo-banking/internal/usecase/hiring"
)

type HiringHandler struct{ uc *hiring.Usecase }

func NewHiringHandler(uc *hiring.Usecase) *HiringHandler { return &HiringHandler{uc: uc} }

type jobApplyReq struct {
	FirstName      string `json:"first_name" validate:"required,max=64"`
	LastName       string `json:"last_name" validate:"required,max=64"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,mobile"`
	Qualifications string `json:"qualifications" validate:"max=2000"`
	Experience     string `json:"experience" validate:"max=2000"`
	DesiredRole    string `json:"desired_role" validate:"max=64"`
	ResumeLink     string `json:"resume_link" validate:"omitempty,url"`
}

// Submit is the public careers endpoint; no authentication.
func (h *HiringHandler) Submit(c echo.Context) error {
	var req jobApplyReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Submit(c.Request().Context(), hiring.SubmitInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *HiringHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *HiringHandler) Get(c echo.Context) error {
	appID, ok, err := pathID(c, "application_id")
	if !ok {
		return err
	}
	res, err := h.uc.Get(c.Request().Context(), appID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type scheduleReq struct {
	InterviewDate string `json:"interview_date" validate:"required"`
	AdminNotes    string `json:"admin_notes" validate:"max=2000"`
}

func (h *HiringHandler) ScheduleInterview(c echo.Context) error {
	appID, ok, err := pathID(c, "application_id")
	if !ok {
		return err
	}
	var req scheduleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	when, err := time.Parse(time.RFC3339, req.InterviewDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "interview_date must be RFC3339"})
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.ScheduleInterview(c.Request().Context(), appID, p.ID, hiring.ScheduleInput{
		InterviewDate: when,
		AdminNotes:    req.AdminNotes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type hiringNotesReq struct {
	AdminNotes string `json:"admin_notes" validate:"max=2000"`
}

func (h *HiringHandler) Reject(c echo.Context) error {
	appID, ok, err := pathID(c, "application_id")
	if !ok {
		return err
	}
	var req hiringNotesReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Reject(c.Request().Context(), appID, p.ID, req.AdminNotes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type hireReq struct {
	JobTitle   string `json:"job_title" validate:"required,max=64"`
	AdminNotes string `json:"admin_notes" validate:"max=2000"`
}

func (h *HiringHandler) Hire(c echo.Context) error {
	appID, ok, err := pathID(c, "application_id")
	if !ok {
		return err
	}
	var req hireReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, _ := middleware.PrincipalFrom(c)
	res, err := h.uc.Hire(c.Request().Context(), appID, p.ID, hiring.HireInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
