package services

import (
	"context"
	"errors"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/google/uuid"
)

type applicationService struct {
	apps       storage.ApplicationRepository
	jobs       storage.JobRepository
	applicants storage.ApplicantRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(apps storage.ApplicationRepository, jobs storage.JobRepository, applicants storage.ApplicantRepository) ApplicationService {
	return &applicationService{apps: apps, jobs: jobs, applicants: applicants}
}

// Apply records that an applicant applied to a job with status pending.
// The insert is an atomic add-if-absent on the (job, applicant) pair, so the
// operation is idempotent: re-applying, including two concurrent applies for
// the same pair, leaves exactly one pending entry and still succeeds.
func (s *applicationService) Apply(ctx context.Context, applicantID, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, mapRepoError(err, "fetching job for application")
	}

	if _, err := s.applicants.GetByID(ctx, applicantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, mapRepoError(err, "fetching applicant for application")
	}

	inserted, err := s.apps.Insert(ctx, jobID, applicantID)
	if err != nil {
		// A foreign key miss here means the job or applicant vanished between
		// the lookups and the insert.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, mapRepoError(err, "recording application")
	}
	if !inserted {
		log.Printf("Applicant %s already applied to job %s, apply is a no-op", applicantID, jobID)
	} else {
		log.Printf("Applicant %s applied to job %s", applicantID, jobID)
	}

	if err := attachRoster(ctx, s.apps, job); err != nil {
		return nil, mapRepoError(err, "loading job roster")
	}
	return job, nil
}

// Accept transitions the applicant's pending entry on the job to accepted.
func (s *applicationService) Accept(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error) {
	return s.decide(ctx, jobID, applicantID, callerID, models.StatusAccepted)
}

// Decline transitions the applicant's pending entry on the job to declined.
func (s *applicationService) Decline(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error) {
	return s.decide(ctx, jobID, applicantID, callerID, models.StatusDeclined)
}

func (s *applicationService) decide(ctx context.Context, jobID, applicantID uuid.UUID, callerID string, status models.ApplicationStatus) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, mapRepoError(err, "fetching job for status decision")
	}

	// The role gate already established the caller is a hiring manager; this
	// checks they are *this job's* hiring manager.
	if job.HiringManagerID.String() != callerID {
		log.Printf("Forbidden: caller %s tried to decide applicant %s on job %s owned by %s",
			callerID, applicantID, jobID, job.HiringManagerID)
		return nil, ErrForbidden
	}

	if _, err := s.apps.UpdateStatus(ctx, jobID, applicantID, status); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrApplicationNotFound
		case errors.Is(err, storage.ErrStaleStatus):
			return nil, ErrInvalidTransition
		default:
			return nil, mapRepoError(err, "updating application status")
		}
	}
	log.Printf("Applicant %s marked %s for job %s", applicantID, status, jobID)

	if err := attachRoster(ctx, s.apps, job); err != nil {
		return nil, mapRepoError(err, "loading job roster")
	}
	return job, nil
}
