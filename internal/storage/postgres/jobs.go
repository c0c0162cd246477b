// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = "id, title, description, location, category, salary, post_date, hiring_manager_id, created_at, updated_at"

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Location,
		&j.Category,
		&j.Salary,
		&j.PostDate,
		&j.HiringManagerID,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]models.Job, error) {
	defer rows.Close()
	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, description, location, category, salary, post_date, hiring_manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Title,
		req.Description,
		req.Location,
		req.Category,
		req.Salary,
		req.PostDate,
		req.HiringManagerID,
	)

	job, err := scanJob(row)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

// ListByManager retrieves jobs posted by a specific hiring manager in
// insertion order. An empty slice is not an error.
func (r *JobRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE hiring_manager_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		log.Printf("Error querying jobs by manager %s: %v", managerID, err)
		return nil, fmt.Errorf("failed to query jobs by manager: %w", err)
	}
	return collectJobs(rows)
}

// ListAll retrieves every job posting. No pagination in scope.
func (r *JobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all jobs: %v", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListIDsByManager returns the owner's job list projection.
func (r *JobRepo) ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM jobs WHERE hiring_manager_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		log.Printf("Error querying job IDs by manager %s: %v", managerID, err)
		return nil, fmt.Errorf("failed to query job IDs by manager: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job IDs: %w", err)
	}
	return ids, nil
}

// Update applies the non-nil fields of the request to the job row.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	sets := []string{}
	args := []interface{}{req.ID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.PostDate != nil {
		addSet("post_date", *req.PostDate)
	}

	if len(sets) == 0 {
		// Nothing to change; return the current row.
		return r.GetByID(ctx, req.ID)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $1 RETURNING %s", strings.Join(sets, ", "), jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}
	return job, nil
}

// Delete removes a job. Application rows referencing it are removed by the
// store's cascade; the owner's job list is a projection and needs no second
// write.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
