// internal/storage/postgres/applicants.go
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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicantRepo implements the storage.ApplicantRepository interface using PostgreSQL.
type ApplicantRepo struct {
	db Querier
}

// NewApplicantRepo creates a new ApplicantRepo.
func NewApplicantRepo(db *pgxpool.Pool) *ApplicantRepo {
	return &ApplicantRepo{db: db}
}

// Compile-time check to ensure ApplicantRepo implements ApplicantRepository
var _ storage.ApplicantRepository = (*ApplicantRepo)(nil)

const applicantColumns = "id, username, password_hash, name, school, degrees, resume_content_type, created_at, updated_at"

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	var a models.Applicant
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.Name,
		&a.School,
		&a.Degrees,
		&a.ResumeContentType,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Degrees == nil {
		a.Degrees = []string{}
	}
	return &a, nil
}

// Create saves a new applicant. The username is unique within the applicant
// kind only; a hiring manager may carry the same username string.
func (r *ApplicantRepo) Create(ctx context.Context, req *dto.CreateApplicantRequest) (*models.Applicant, error) {
	query := `
		INSERT INTO applicants (id, username, password_hash, degrees, created_at, updated_at)
		VALUES ($1, $2, $3, '{}', NOW(), NOW())
		RETURNING ` + applicantColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Username, req.PasswordHash)
	applicant, err := scanApplicant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Error creating applicant %q: duplicate username", req.Username)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating applicant %q: %v", req.Username, err)
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	return applicant, nil
}

// GetByID retrieves an applicant by ID. Resume bytes are not loaded here.
func (r *ApplicantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning applicant by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get applicant by ID %s: %w", id, err)
	}
	return applicant, nil
}

// GetByUsername retrieves an applicant by username (login path).
func (r *ApplicantRepo) GetByUsername(ctx context.Context, username string) (*models.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE username = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning applicant by username %q: %v", username, err)
		return nil, fmt.Errorf("failed to get applicant by username: %w", err)
	}
	return applicant, nil
}

// GetByIDs retrieves a batch of applicants by their IDs.
func (r *ApplicantRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = ANY($1) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		log.Printf("Error querying applicants by IDs: %v", err)
		return nil, fmt.Errorf("failed to query applicants by IDs: %w", err)
	}
	defer rows.Close()

	applicants := []models.Applicant{}
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			log.Printf("Error scanning applicant row: %v", err)
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, *applicant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applicants: %w", err)
	}
	return applicants, nil
}

// UpdateProfile updates the profile fields that were actually submitted, so an
// omitted field keeps its stored value. Degrees are the exception: a profile
// update always replaces the degree list.
func (r *ApplicantRepo) UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error) {
	sets := []string{}
	args := []interface{}{req.ID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.School != nil {
		addSet("school", *req.School)
	}
	if req.Degrees != nil {
		addSet("degrees", req.Degrees)
	}
	if req.Resume != nil {
		addSet("resume", req.Resume)
		addSet("resume_content_type", req.ResumeContentType)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE applicants SET %s WHERE id = $1 RETURNING %s", strings.Join(sets, ", "), applicantColumns)

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating applicant profile %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update applicant profile: %w", err)
	}
	return applicant, nil
}

// GetResume returns the stored resume blob and its content type.
func (r *ApplicantRepo) GetResume(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	query := `SELECT resume, resume_content_type FROM applicants WHERE id = $1`

	var data []byte
	var contentType *string
	err := r.db.QueryRow(ctx, query, id).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", storage.ErrNotFound
		}
		log.Printf("Error fetching resume for applicant %s: %v", id, err)
		return nil, "", fmt.Errorf("failed to get resume for applicant %s: %w", id, err)
	}
	if data == nil || contentType == nil {
		// Applicant exists but never uploaded a resume.
		return nil, "", storage.ErrNotFound
	}
	return data, *contentType, nil
}
