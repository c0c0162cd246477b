package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Principal Roles ---
type Role string

const (
	RoleApplicant     Role = "applicant"
	RoleHiringManager Role = "hiringManager"
	RoleAdmin         Role = "admin"
)

// Valid reports whether the role is one of the three known principal kinds.
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleHiringManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusDeclined ApplicationStatus = "declined"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case StatusPending, StatusAccepted, StatusDeclined:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Applicant represents a job seeker. AppliedJobs is a projection of the
// applications relation, filled by the service layer, not a stored column.
type Applicant struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`

	Name    *string  `json:"name,omitempty" db:"name"`
	School  *string  `json:"school,omitempty" db:"school"`
	Degrees []string `json:"degrees" db:"degrees"`

	// Resume bytes are loaded only by the dedicated resume lookup.
	ResumeContentType *string `json:"-" db:"resume_content_type"`

	AppliedJobs []uuid.UUID `json:"appliedJobs" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HiringManager represents an employer account. A manager cannot log in or
// post jobs until an admin flips IsApproved. JobIDs is a projection of
// jobs.hiring_manager_id.
type HiringManager struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CompanyName  string    `json:"companyName" db:"company_name"`
	IsApproved   bool      `json:"isApproved" db:"is_approved"`

	JobIDs []uuid.UUID `json:"jobIds" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplicantStatus is one entry of a job's applicant roster on the wire.
type ApplicantStatus struct {
	ApplicantID uuid.UUID         `json:"applicantId"`
	Status      ApplicationStatus `json:"status"`
}

// Job represents a job posting owned by exactly one hiring manager.
// Applicants and ApplicantStatuses are projections of the applications
// relation, assembled by the service layer.
type Job struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Location        string    `json:"location" db:"location"`
	Category        string    `json:"category" db:"category"`
	Salary          string    `json:"salary" db:"salary"`
	PostDate        string    `json:"postDate" db:"post_date"`
	HiringManagerID uuid.UUID `json:"hiringManagerId" db:"hiring_manager_id"`

	Applicants        []uuid.UUID       `json:"applicants" db:"-"`
	ApplicantStatuses []ApplicantStatus `json:"applicantStatuses" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Application is the first-class applicant<->job relation row. It is the
// single source of truth for "who applied where with what status"; the
// per-applicant and per-job views above are derived from it.
type Application struct {
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}
