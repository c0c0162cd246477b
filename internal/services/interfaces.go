package services

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// AuthService defines the interface for registration and login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	// Login returns a signed token and the role it embeds.
	Login(ctx context.Context, req *dto.LoginRequest) (string, models.Role, error)
}

// AdminService defines the interface for the hiring manager approval workflow.
type AdminService interface {
	ListManagers(ctx context.Context) ([]models.HiringManager, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Deny(ctx context.Context, id uuid.UUID) error
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationService coordinates the apply/accept/decline lifecycle across
// applicant and job records. It is the only place touching both together.
type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID) (*models.Job, error)
	Accept(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error)
	Decline(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error)
}

// ApplicantService defines the interface for applicant profile operations.
type ApplicantService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error)
	AppliedJobs(ctx context.Context, applicantID uuid.UUID) ([]models.Job, error)
	Resume(ctx context.Context, applicantID uuid.UUID) ([]byte, string, error)
}
