package storage

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicantRepository defines the interface for applicant data operations.
type ApplicantRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicantRequest) (*models.Applicant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error)
	GetByUsername(ctx context.Context, username string) (*models.Applicant, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error)
	// GetResume returns the raw resume blob and its content type.
	GetResume(ctx context.Context, id uuid.UUID) ([]byte, string, error)
}

// HiringManagerRepository defines the interface for hiring manager data operations.
type HiringManagerRepository interface {
	Create(ctx context.Context, req *dto.CreateHiringManagerRequest) (*models.HiringManager, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.HiringManager, error)
	GetByUsername(ctx context.Context, username string) (*models.HiringManager, error)
	GetAll(ctx context.Context) ([]models.HiringManager, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListIDsByManager returns the owner's job list projection in insertion order.
	ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

// ApplicationRepository defines the interface for the applicant<->job relation.
type ApplicationRepository interface {
	// Insert adds a pending entry if none exists for (jobID, applicantID).
	// It reports whether a row was actually inserted; re-applying is not an error.
	Insert(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	Get(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error)
	// UpdateStatus transitions a pending entry to the given status. It returns
	// ErrNotFound when no row exists and ErrStaleStatus when the row exists but
	// is no longer pending.
	UpdateStatus(ctx context.Context, jobID, applicantID uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}
