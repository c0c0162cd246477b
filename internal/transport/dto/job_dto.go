// internal/transport/dto/job_dto.go
package dto

import "github.com/google/uuid"

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"required"`
	Location        string    `json:"location" validate:"required,max=200"`
	Category        string    `json:"category" validate:"required,max=100"`
	Salary          string    `json:"salary" validate:"required,max=100"`
	PostDate        string    `json:"postDate" validate:"required,max=100"`
	HiringManagerID uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// UpdateJobRequest defines the structure for updating job fields. Nil fields
// are left untouched.
type UpdateJobRequest struct {
	ID          uuid.UUID `json:"-" validate:"required"` // From URL path
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Salary      *string   `json:"salary,omitempty" validate:"omitempty,max=100"`
	PostDate    *string   `json:"postDate,omitempty" validate:"omitempty,max=100"`
}
