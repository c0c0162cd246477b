// internal/transport/dto/application_dto.go
package dto

import "github.com/google/uuid"

// ApplyRequest defines the structure for an applicant applying to a job.
type ApplyRequest struct {
	ApplicantID uuid.UUID `json:"applicantId" validate:"required"`
	JobID       uuid.UUID `json:"jobId" validate:"required"`
}
