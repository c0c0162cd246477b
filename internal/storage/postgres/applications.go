// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL. One row per (job, applicant) pair; the composite primary
// key is what makes the apply operation idempotent under concurrency.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = "job_id, applicant_id, status, created_at, updated_at"

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.JobID,
		&a.ApplicantID,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectApplications(rows pgx.Rows) ([]models.Application, error) {
	defer rows.Close()
	apps := []models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return apps, nil
}

// Insert adds a pending entry for (jobID, applicantID) if none exists.
// ON CONFLICT DO NOTHING makes this the atomic "add if absent" primitive:
// two concurrent applies for the same pair cannot both insert.
func (r *ApplicationRepo) Insert(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO applications (job_id, applicant_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (job_id, applicant_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, jobID, applicantID, models.StatusPending)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error inserting application (job %s, applicant %s): referenced row missing", jobID, applicantID)
			return false, storage.ErrNotFound
		}
		log.Printf("Error inserting application (job %s, applicant %s): %v", jobID, applicantID, err)
		return false, fmt.Errorf("failed to insert application: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get retrieves the status entry for one (job, applicant) pair.
func (r *ApplicationRepo) Get(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND applicant_id = $2`

	app, err := scanApplication(r.db.QueryRow(ctx, query, jobID, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application (job %s, applicant %s): %v", jobID, applicantID, err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListByJob returns a job's applicant roster in apply order.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications for job %s: %v", jobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	return collectApplications(rows)
}

// ListByJobIDs returns the rosters of many jobs in one round trip.
func (r *ApplicationRepo) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, nil
	}
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = ANY($1) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, jobIDs)
	if err != nil {
		log.Printf("Error querying applications for %d jobs: %v", len(jobIDs), err)
		return nil, fmt.Errorf("failed to query applications by job IDs: %w", err)
	}
	return collectApplications(rows)
}

// ListByApplicant returns an applicant's applied-jobs projection in apply order.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		log.Printf("Error querying applications for applicant %s: %v", applicantID, err)
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	return collectApplications(rows)
}

// UpdateStatus transitions a pending entry to the given status. The WHERE
// clause carries the pending precondition, so a lost race (or a retry after
// the entry was already decided) affects zero rows instead of overwriting.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, jobID, applicantID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $3, updated_at = NOW()
		WHERE job_id = $1 AND applicant_id = $2 AND status = $4
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, jobID, applicantID, status, models.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish "no such entry" from "entry already decided".
			if _, getErr := r.Get(ctx, jobID, applicantID); getErr == nil {
				return nil, storage.ErrStaleStatus
			}
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status (job %s, applicant %s): %v", jobID, applicantID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}
