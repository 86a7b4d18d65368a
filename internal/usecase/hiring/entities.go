package hiring

import "time"

type SubmitInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Qualifications string
	Experience     string
	DesiredRole    string
	ResumeLink     string
}

type ScheduleInput struct {
	InterviewDate time.Time
	AdminNotes    string
}

type HireInput struct {
	JobTitle   string
	AdminNotes string
}

// HireResult surfaces the one-time credential exactly once, at hire time. It
// is never stored in plaintext.
type HireResult struct {
	EmployeeID        string `json:"employee_id"`
	Email             string `json:"email"`
	JobTitle          string `json:"job_title"`
	InitialCredential string `json:"initial_credential"`
}
