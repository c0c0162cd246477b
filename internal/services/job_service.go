package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobs storage.JobRepository
	apps storage.ApplicationRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobs storage.JobRepository, apps storage.ApplicationRepository) JobService {
	return &jobService{jobs: jobs, apps: apps}
}

// Create stores a new job posting. The owner is the authenticated hiring
// manager from the token, already set on the request by the handler.
func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	// Fresh job, empty roster.
	fillRoster(job, nil)
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		log.Printf("JobService: Error getting job %s: %v", id, err)
		return nil, mapRepoError(err, "getting job by ID")
	}
	if err := attachRoster(ctx, s.apps, job); err != nil {
		return nil, mapRepoError(err, "loading job roster")
	}
	return job, nil
}

func (s *jobService) ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.jobs.ListByManager(ctx, managerID)
	if err != nil {
		log.Printf("JobService: Error listing jobs for manager %s: %v", managerID, err)
		return nil, fmt.Errorf("internal error listing jobs by manager: %w", err)
	}
	if err := attachRosters(ctx, s.apps, jobs); err != nil {
		return nil, mapRepoError(err, "loading job rosters")
	}
	return jobs, nil
}

func (s *jobService) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	if err := attachRosters(ctx, s.apps, jobs); err != nil {
		return nil, mapRepoError(err, "loading job rosters")
	}
	return jobs, nil
}

func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		log.Printf("JobService: Error updating job %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating job")
	}
	if err := attachRoster(ctx, s.apps, job); err != nil {
		return nil, mapRepoError(err, "loading job roster")
	}
	return job, nil
}

// Delete removes the job. The store cascades the job's application rows and
// the owner's job list is a projection, so no second write is needed for the
// detach.
func (s *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrJobNotFound
		}
		log.Printf("JobService: Error deleting job %s: %v", id, err)
		return mapRepoError(err, "deleting job")
	}
	log.Printf("Job %s deleted", id)
	return nil
}
