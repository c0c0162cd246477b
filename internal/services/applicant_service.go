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

type applicantService struct {
	applicants storage.ApplicantRepository
	apps       storage.ApplicationRepository
	jobs       storage.JobRepository
}

// NewApplicantService creates a new instance of ApplicantService.
func NewApplicantService(applicants storage.ApplicantRepository, apps storage.ApplicationRepository, jobs storage.JobRepository) ApplicantService {
	return &applicantService{applicants: applicants, apps: apps, jobs: jobs}
}

func (s *applicantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	applicant, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrApplicantNotFound
		}
		log.Printf("ApplicantService: Error getting applicant %s: %v", id, err)
		return nil, mapRepoError(err, "getting applicant by ID")
	}
	if err := s.attachAppliedJobs(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (s *applicantService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error) {
	applicants, err := s.applicants.GetByIDs(ctx, ids)
	if err != nil {
		log.Printf("ApplicantService: Error getting applicants by IDs: %v", err)
		return nil, fmt.Errorf("internal error getting applicants: %w", err)
	}
	for i := range applicants {
		if err := s.attachAppliedJobs(ctx, &applicants[i]); err != nil {
			return nil, err
		}
	}
	return applicants, nil
}

// UpdateProfile writes the optional profile fields and the resume blob when
// one was uploaded.
func (s *applicantService) UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error) {
	applicant, err := s.applicants.UpdateProfile(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrApplicantNotFound
		}
		log.Printf("ApplicantService: Error updating profile for %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating applicant profile")
	}
	if err := s.attachAppliedJobs(ctx, applicant); err != nil {
		return nil, err
	}
	log.Printf("Profile updated for applicant %s", req.ID)
	return applicant, nil
}

// AppliedJobs returns the full job records the applicant has applied to.
func (s *applicantService) AppliedJobs(ctx context.Context, applicantID uuid.UUID) ([]models.Job, error) {
	if _, err := s.applicants.GetByID(ctx, applicantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, mapRepoError(err, "fetching applicant for applied jobs")
	}

	entries, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		log.Printf("ApplicantService: Error listing applications for %s: %v", applicantID, err)
		return nil, fmt.Errorf("internal error listing applied jobs: %w", err)
	}

	jobs := []models.Job{}
	for _, entry := range entries {
		job, err := s.jobs.GetByID(ctx, entry.JobID)
		if err != nil {
			// The job may have been deleted since the application was made.
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, mapRepoError(err, "fetching applied job")
		}
		if err := attachRoster(ctx, s.apps, job); err != nil {
			return nil, mapRepoError(err, "loading job roster")
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// Resume returns the raw resume bytes and content type for pass-through.
func (s *applicantService) Resume(ctx context.Context, applicantID uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.applicants.GetResume(ctx, applicantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrResumeNotFound
		}
		log.Printf("ApplicantService: Error fetching resume for %s: %v", applicantID, err)
		return nil, "", mapRepoError(err, "fetching resume")
	}
	return data, contentType, nil
}

func (s *applicantService) attachAppliedJobs(ctx context.Context, applicant *models.Applicant) error {
	entries, err := s.apps.ListByApplicant(ctx, applicant.ID)
	if err != nil {
		log.Printf("ApplicantService: Error loading applied jobs for %s: %v", applicant.ID, err)
		return fmt.Errorf("internal error loading applied jobs: %w", err)
	}
	applicant.AppliedJobs = make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		applicant.AppliedJobs = append(applicant.AppliedJobs, entry.JobID)
	}
	return nil
}
