// internal/transport/dto/auth_dto.go
package dto

// RegisterRequest defines the structure for registering a new principal.
// CompanyName only applies to the hiringManager role.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=100"`
	Password    string `json:"password" validate:"required,min=1"`
	Role        string `json:"role" validate:"required"`
	CompanyName string `json:"companyName" validate:"omitempty,max=200"`
}

// LoginRequest defines the structure for logging in as any of the three roles.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginResponse carries the signed token and the role it embeds.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
