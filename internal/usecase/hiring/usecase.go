package hiring

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"meewoo-banking/internal/domain/employee"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/hiring"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/pkg/id"
	"meewoo-banking/pkg/password"

	"gorm.io/gorm"
)

const (
	employeeIDSuffixLen  = 6
	initialCredentialLen = 12
)

type Usecase struct {
	applications hiring.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(applications hiring.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{applications: applications, uow: tx}
}

// Submit records a PENDING job application. Open to unauthenticated callers.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*hiring.JobApplication, error) {
	a := &hiring.JobApplication{
		ApplicantFirstName: strings.TrimSpace(in.FirstName),
		ApplicantLastName:  strings.TrimSpace(in.LastName),
		ApplicantEmail:     strings.ToLower(strings.TrimSpace(in.Email)),
		ApplicantPhone:     in.Phone,
		Qualifications:     in.Qualifications,
		Experience:         in.Experience,
		DesiredRole:        strings.TrimSpace(in.DesiredRole),
		ResumeLink:         strings.TrimSpace(in.ResumeLink),
		ApplicationDate:    time.Now().UTC(),
		Status:             hiring.StatusPending,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		return nil, errs.Internal(err, "saving job application")
	}
	log.Printf("hiring submit: application=%d email=%s role=%s", a.ID, a.ApplicantEmail, a.DesiredRole)
	return a, nil
}

// List returns every application for the admin review screen.
func (u *Usecase) List(ctx context.Context) ([]hiring.JobApplication, error) {
	out, err := u.applications.ListAll(ctx)
	if err != nil {
		return nil, errs.Internal(err, "listing job applications")
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, appID uint64) (*hiring.JobApplication, error) {
	a, err := u.applications.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("job application not found")
		}
		return nil, errs.Internal(err, "loading job application")
	}
	return a, nil
}

// ScheduleInterview moves a PENDING application to INTERVIEW_SCHEDULED.
func (u *Usecase) ScheduleInterview(ctx context.Context, appID uint64, adminID string, in ScheduleInput) (*hiring.JobApplication, error) {
	if in.InterviewDate.IsZero() {
		return nil, errs.Validationf("interview date is required")
	}
	var out *hiring.JobApplication
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := u.lockActionable(ctx, r, appID)
		if err != nil {
			return err
		}
		when := in.InterviewDate.UTC()
		a.Status = hiring.StatusInterviewScheduled
		a.InterviewDate = &when
		a.ReviewerAdminID = adminID
		if in.AdminNotes != "" {
			a.AdminNotes = in.AdminNotes
		}
		if err := r.JobApplications.Save(ctx, a); err != nil {
			return errs.Internal(err, "saving scheduled application")
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("hiring schedule: admin=%s application=%d interview=%s", adminID, appID, out.InterviewDate.Format(time.RFC3339))
	return out, nil
}

// Reject marks an application REJECTED. Terminal, like HIRED.
func (u *Usecase) Reject(ctx context.Context, appID uint64, adminID, notes string) (*hiring.JobApplication, error) {
	var out *hiring.JobApplication
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := u.lockActionable(ctx, r, appID)
		if err != nil {
			return err
		}
		a.Status = hiring.StatusRejected
		a.ReviewerAdminID = adminID
		if notes != "" {
			a.AdminNotes = notes
		}
		if err := r.JobApplications.Save(ctx, a); err != nil {
			return errs.Internal(err, "saving rejected application")
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("hiring reject: admin=%s application=%d outcome=rejected", adminID, appID)
	return out, nil
}

// Hire provisions an employee account from an application and marks it HIRED.
// The employee row is created before the status flips so a failure on either
// write rolls back both. The generated credential is returned once and only a
// bcrypt hash of it is stored; first login forces a password change.
func (u *Usecase) Hire(ctx context.Context, appID uint64, adminID string, in HireInput) (*HireResult, error) {
	jobTitle := strings.TrimSpace(in.JobTitle)
	if jobTitle == "" {
		return nil, errs.Validationf("job title is required")
	}

	var out *HireResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := u.lockActionable(ctx, r, appID)
		if err != nil {
			return err
		}

		if err := u.checkContactFree(ctx, r, a.ApplicantEmail, a.ApplicantPhone); err != nil {
			return err
		}

		employeeID, err := freshEmployeeID(ctx, r.Employees)
		if err != nil {
			return err
		}
		credential := password.GenerateInitial(initialCredentialLen)
		hash, err := password.Hash(credential)
		if err != nil {
			return errs.Internal(err, "hashing initial credential")
		}

		e := &employee.Employee{
			EmployeeID:         employeeID,
			FirstName:          a.ApplicantFirstName,
			LastName:           a.ApplicantLastName,
			Email:              a.ApplicantEmail,
			MobileNumber:       a.ApplicantPhone,
			JobTitle:           jobTitle,
			HireDate:           time.Now().UTC(),
			PasswordHash:       hash,
			AccountEnabled:     true,
			MustChangePassword: true,
		}
		if err := r.Employees.Create(ctx, e); err != nil {
			return errs.Internal(err, "creating employee account")
		}

		a.Status = hiring.StatusHired
		a.ReviewerAdminID = adminID
		if in.AdminNotes != "" {
			a.AdminNotes = in.AdminNotes
		}
		if err := r.JobApplications.Save(ctx, a); err != nil {
			return errs.Internal(err, "saving hired application")
		}

		out = &HireResult{
			EmployeeID:        e.EmployeeID,
			Email:             e.Email,
			JobTitle:          e.JobTitle,
			InitialCredential: credential,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("hiring hire: admin=%s application=%d employee=%s outcome=hired", adminID, appID, out.EmployeeID)
	return out, nil
}

func (u *Usecase) lockActionable(ctx context.Context, r uow.Repos, appID uint64) (*hiring.JobApplication, error) {
	a, err := r.JobApplications.GetByIDForUpdate(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("job application not found")
		}
		return nil, errs.Internal(err, "loading job application")
	}
	switch a.Status {
	case hiring.StatusHired:
		return nil, errs.Conflictf("job application %d has already been hired", appID)
	case hiring.StatusRejected:
		return nil, errs.Conflictf("job application %d has already been rejected", appID)
	}
	return a, nil
}

// checkContactFree refuses to provision an employee whose email or mobile is
// already taken in either account store. The application keeps its current
// status so the conflict can be resolved and retried.
func (u *Usecase) checkContactFree(ctx context.Context, r uow.Repos, email, phone string) error {
	if _, err := r.Employees.GetByEmail(ctx, email); err == nil {
		return errs.Conflictf("email %s already belongs to an employee", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.Internal(err, "checking employee email")
	}
	if _, err := r.Employees.GetByMobileNumber(ctx, phone); err == nil {
		return errs.Conflictf("mobile number %s already belongs to an employee", phone)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.Internal(err, "checking employee mobile")
	}
	if _, err := r.Customers.GetByEmail(ctx, email); err == nil {
		return errs.Conflictf("email %s already belongs to a customer", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.Internal(err, "checking customer email")
	}
	if _, err := r.Customers.GetByMobileNumber(ctx, phone); err == nil {
		return errs.Conflictf("mobile number %s already belongs to a customer", phone)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.Internal(err, "checking customer mobile")
	}
	return nil
}

func freshEmployeeID(ctx context.Context, employees employee.Repository) (string, error) {
	for range [5]struct{}{} {
		candidate := id.Prefixed("EMP-", employeeIDSuffixLen)
		_, err := employees.GetByEmployeeID(ctx, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errs.Internal(err, "checking employee id")
		}
	}
	return "", errs.Internal(errors.New("employee id space exhausted"), "generating employee id")
}
