package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/token"
	"job-board-api/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the ecosystem uses for these
// credential records.
const bcryptCost = 10

// AdminCredentials is the non-persisted admin singleton. The password may be
// a bcrypt hash or, for development setups, a plaintext value.
type AdminCredentials struct {
	Username string
	Password string
}

type authService struct {
	applicants storage.ApplicantRepository
	managers   storage.HiringManagerRepository
	tokens     *token.Manager
	admin      AdminCredentials
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(applicants storage.ApplicantRepository, managers storage.HiringManagerRepository, tokens *token.Manager, admin AdminCredentials) AuthService {
	return &authService{
		applicants: applicants,
		managers:   managers,
		tokens:     tokens,
		admin:      admin,
	}
}

// Register creates a new applicant or hiring manager. The two kinds live in
// separate collections, so an applicant and a manager may share a username.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	role := models.Role(req.Role)
	if role != models.RoleApplicant && role != models.RoleHiringManager {
		return ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Printf("AuthService: Error hashing password for %q: %v", req.Username, err)
		return fmt.Errorf("internal error hashing password: %w", err)
	}

	if role == models.RoleHiringManager {
		_, err = s.managers.Create(ctx, &dto.CreateHiringManagerRequest{
			Username:     req.Username,
			PasswordHash: string(hash),
			CompanyName:  req.CompanyName,
		})
	} else {
		_, err = s.applicants.Create(ctx, &dto.CreateApplicantRequest{
			Username:     req.Username,
			PasswordHash: string(hash),
		})
	}
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%w: username already taken", ErrConflict)
		}
		log.Printf("AuthService: Error creating %s %q: %v", role, req.Username, err)
		return fmt.Errorf("internal error creating user: %w", err)
	}
	return nil
}

// Login authenticates a principal of the requested role and issues a token
// embedding that role. An unapproved hiring manager is rejected with
// ErrNotApproved before the credential check, a distinct outcome from bad
// credentials.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, models.Role, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return "", "", ErrInvalidRole
	}

	if role == models.RoleAdmin {
		return s.loginAdmin(req)
	}

	var id, passwordHash string
	switch role {
	case models.RoleHiringManager:
		manager, err := s.managers.GetByUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", "", ErrInvalidCredentials
			}
			log.Printf("AuthService: Error fetching hiring manager %q during login: %v", req.Username, err)
			return "", "", fmt.Errorf("internal error during login: %w", err)
		}
		if !manager.IsApproved {
			log.Printf("Login blocked for unapproved hiring manager %q", req.Username)
			return "", "", ErrNotApproved
		}
		id, passwordHash = manager.ID.String(), manager.PasswordHash
	case models.RoleApplicant:
		applicant, err := s.applicants.GetByUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", "", ErrInvalidCredentials
			}
			log.Printf("AuthService: Error fetching applicant %q during login: %v", req.Username, err)
			return "", "", fmt.Errorf("internal error during login: %w", err)
		}
		id, passwordHash = applicant.ID.String(), applicant.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for %s %q: invalid password", role, req.Username)
		return "", "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(id, role)
	if err != nil {
		log.Printf("AuthService: Error issuing token for %q: %v", req.Username, err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return signed, role, nil
}

func (s *authService) loginAdmin(req *dto.LoginRequest) (string, models.Role, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) != 1 {
		return "", "", ErrInvalidCredentials
	}
	if !s.checkAdminPassword(req.Password) {
		return "", "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue("admin", models.RoleAdmin)
	if err != nil {
		log.Printf("AuthService: Error issuing admin token: %v", err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return signed, models.RoleAdmin, nil
}

func (s *authService) checkAdminPassword(password string) bool {
	if strings.HasPrefix(s.admin.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}
