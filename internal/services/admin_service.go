package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/google/uuid"
)

type adminService struct {
	managers storage.HiringManagerRepository
	jobs     storage.JobRepository
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(managers storage.HiringManagerRepository, jobs storage.JobRepository) AdminService {
	return &adminService{managers: managers, jobs: jobs}
}

// ListManagers returns every hiring manager record, awaiting or already
// approved, with the owned-jobs projection attached.
func (s *adminService) ListManagers(ctx context.Context) ([]models.HiringManager, error) {
	managers, err := s.managers.GetAll(ctx)
	if err != nil {
		log.Printf("AdminService: Error listing hiring managers: %v", err)
		return nil, fmt.Errorf("internal error listing hiring managers: %w", err)
	}

	for i := range managers {
		ids, err := s.jobs.ListIDsByManager(ctx, managers[i].ID)
		if err != nil {
			log.Printf("AdminService: Error listing job IDs for manager %s: %v", managers[i].ID, err)
			return nil, fmt.Errorf("internal error listing hiring managers: %w", err)
		}
		managers[i].JobIDs = ids
	}
	return managers, nil
}

// Approve lets the hiring manager through the approval gate.
func (s *adminService) Approve(ctx context.Context, id uuid.UUID) error {
	if err := s.managers.SetApproved(ctx, id, true); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrManagerNotFound
		}
		log.Printf("AdminService: Error approving hiring manager %s: %v", id, err)
		return fmt.Errorf("internal error approving hiring manager: %w", err)
	}
	log.Printf("Hiring manager %s approved", id)
	return nil
}

// Deny hard-deletes the hiring manager record. Jobs already posted under
// that manager stay behind with a dangling owner reference; no cascade.
func (s *adminService) Deny(ctx context.Context, id uuid.UUID) error {
	if err := s.managers.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrManagerNotFound
		}
		log.Printf("AdminService: Error denying hiring manager %s: %v", id, err)
		return fmt.Errorf("internal error denying hiring manager: %w", err)
	}
	log.Printf("Hiring manager %s denied and removed", id)
	return nil
}
