package services

import (
	"context"
	"fmt"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/google/uuid"
)

// attachRoster fills a job's wire projection (applicants + applicantStatuses)
// from the applications relation.
func attachRoster(ctx context.Context, apps storage.ApplicationRepository, job *models.Job) error {
	entries, err := apps.ListByJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("failed to load roster for job %s: %w", job.ID, err)
	}
	fillRoster(job, entries)
	return nil
}

// attachRosters does the same for a list of jobs in one query.
func attachRosters(ctx context.Context, apps storage.ApplicationRepository, jobs []models.Job) error {
	ids := make([]uuid.UUID, len(jobs))
	for i := range jobs {
		ids[i] = jobs[i].ID
	}

	entries, err := apps.ListByJobIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load rosters: %w", err)
	}

	byJob := make(map[uuid.UUID][]models.Application, len(jobs))
	for _, e := range entries {
		byJob[e.JobID] = append(byJob[e.JobID], e)
	}
	for i := range jobs {
		fillRoster(&jobs[i], byJob[jobs[i].ID])
	}
	return nil
}

func fillRoster(job *models.Job, entries []models.Application) {
	job.Applicants = make([]uuid.UUID, 0, len(entries))
	job.ApplicantStatuses = make([]models.ApplicantStatus, 0, len(entries))
	for _, e := range entries {
		job.Applicants = append(job.Applicants, e.ApplicantID)
		job.ApplicantStatuses = append(job.ApplicantStatuses, models.ApplicantStatus{
			ApplicantID: e.ApplicantID,
			Status:      e.Status,
		})
	}
}
