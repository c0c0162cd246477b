package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// AuthHandler holds the service dependency for registration and login.
type AuthHandler struct {
	auth      services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: auth, validator: validate}
}

// Register godoc
// @Summary      Register a new applicant or hiring manager
// @Description  Creates a credential record for the given role. Hiring managers start unapproved.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	if err := h.auth.Register(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role specified"})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			log.Printf("Error during registration: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login godoc
// @Summary      Log in as applicant, hiring manager, or admin
// @Description  Returns a signed token embedding the role. Unapproved hiring managers are rejected with 403.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.LoginRequest true "Login payload"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	tokenString, role, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role specified"})
		case errors.Is(err, services.ErrNotApproved):
			c.JSON(http.StatusForbidden, gin.H{"message": "Your account is not yet approved by an admin."})
		case errors.Is(err, services.ErrInvalidCredentials):
			if req.Role == "admin" {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid admin credentials"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			}
		default:
			log.Printf("Error during login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: tokenString, Role: string(role)})
}
