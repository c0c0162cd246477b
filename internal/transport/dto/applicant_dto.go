// internal/transport/dto/applicant_dto.go
package dto

import "github.com/google/uuid"

// CreateApplicantRequest defines the structure for persisting a new applicant.
// The password is already hashed by the auth service at this point.
type CreateApplicantRequest struct {
	Username     string `validate:"required"`
	PasswordHash string `validate:"required"`
}

// UpdateApplicantProfileRequest defines the structure for the multipart
// profile update. Resume is nil when no file was uploaded.
type UpdateApplicantProfileRequest struct {
	ID                uuid.UUID `validate:"required"`
	Name              *string   `validate:"omitempty,max=200"`
	School            *string   `validate:"omitempty,max=200"`
	Degrees           []string  `validate:"omitempty,dive,max=200"`
	Resume            []byte
	ResumeContentType string
}
