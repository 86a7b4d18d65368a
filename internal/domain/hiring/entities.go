package hiring

import "time"

type Status string

const (
	StatusPending            Status = "PENDING"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusRejected           Status = "REJECTED"
	// HIRED is terminal and triggers employee provisioning exactly once.
	StatusHired Status = "HIRED"
)

type JobApplication struct {
	ID                 uint64     `gorm:"primaryKey;column:id" json:"id"`
	ApplicantFirstName string     `gorm:"size:64;not null" json:"applicant_first_name"`
	ApplicantLastName  string     `gorm:"size:64;not null" json:"applicant_last_name"`
	ApplicantEmail     string     `gorm:"size:128;not null" json:"applicant_email"`
	ApplicantPhone     string     `gorm:"size:15;not null" json:"applicant_phone"`
	Qualifications     string     `gorm:"type:text" json:"qualifications,omitempty"`
	Experience         string     `gorm:"type:text" json:"experience,omitempty"`
	DesiredRole        string     `gorm:"size:64" json:"desired_role,omitempty"`
	ResumeLink         string     `gorm:"type:text" json:"resume_link,omitempty"`
	ApplicationDate    time.Time  `gorm:"not null" json:"application_date"`
	Status             Status     `gorm:"size:24;not null" json:"status"`
	ReviewerAdminID    string     `gorm:"size:16" json:"reviewer_admin_id,omitempty"`
	InterviewDate      *time.Time `json:"interview_date,omitempty"`
	AdminNotes         string     `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (JobApplication) TableName() string { return "job_applications" }
