// internal/transport/dto/manager_dto.go
package dto

// CreateHiringManagerRequest defines the structure for persisting a new
// hiring manager. New managers always start unapproved.
type CreateHiringManagerRequest struct {
	Username     string `validate:"required"`
	PasswordHash string `validate:"required"`
	CompanyName  string `validate:"omitempty,max=200"`
}
