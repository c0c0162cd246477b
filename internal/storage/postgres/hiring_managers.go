// internal/storage/postgres/hiring_managers.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HiringManagerRepo implements the storage.HiringManagerRepository interface using PostgreSQL.
type HiringManagerRepo struct {
	db Querier
}

// NewHiringManagerRepo creates a new HiringManagerRepo.
func NewHiringManagerRepo(db *pgxpool.Pool) *HiringManagerRepo {
	return &HiringManagerRepo{db: db}
}

// Compile-time check to ensure HiringManagerRepo implements HiringManagerRepository
var _ storage.HiringManagerRepository = (*HiringManagerRepo)(nil)

const managerColumns = "id, username, password_hash, company_name, is_approved, created_at, updated_at"

func scanManager(row pgx.Row) (*models.HiringManager, error) {
	var m models.HiringManager
	err := row.Scan(
		&m.ID,
		&m.Username,
		&m.PasswordHash,
		&m.CompanyName,
		&m.IsApproved,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create saves a new hiring manager. is_approved defaults to false; only the
// admin approval workflow flips it.
func (r *HiringManagerRepo) Create(ctx context.Context, req *dto.CreateHiringManagerRequest) (*models.HiringManager, error) {
	query := `
		INSERT INTO hiring_managers (id, username, password_hash, company_name, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		RETURNING ` + managerColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Username, req.PasswordHash, req.CompanyName)
	manager, err := scanManager(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Error creating hiring manager %q: duplicate username", req.Username)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating hiring manager %q: %v", req.Username, err)
		return nil, fmt.Errorf("failed to create hiring manager: %w", err)
	}
	return manager, nil
}

// GetByID retrieves a hiring manager by ID.
func (r *HiringManagerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.HiringManager, error) {
	query := `SELECT ` + managerColumns + ` FROM hiring_managers WHERE id = $1`

	manager, err := scanManager(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning hiring manager by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get hiring manager by ID %s: %w", id, err)
	}
	return manager, nil
}

// GetByUsername retrieves a hiring manager by username (login path).
func (r *HiringManagerRepo) GetByUsername(ctx context.Context, username string) (*models.HiringManager, error) {
	query := `SELECT ` + managerColumns + ` FROM hiring_managers WHERE username = $1`

	manager, err := scanManager(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning hiring manager by username %q: %v", username, err)
		return nil, fmt.Errorf("failed to get hiring manager by username: %w", err)
	}
	return manager, nil
}

// GetAll retrieves every hiring manager record, approved or not, in
// insertion order. The admin surface lists them unfiltered.
func (r *HiringManagerRepo) GetAll(ctx context.Context) ([]models.HiringManager, error) {
	query := `SELECT ` + managerColumns + ` FROM hiring_managers ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying hiring managers: %v", err)
		return nil, fmt.Errorf("failed to query hiring managers: %w", err)
	}
	defer rows.Close()

	managers := []models.HiringManager{}
	for rows.Next() {
		manager, err := scanManager(rows)
		if err != nil {
			log.Printf("Error scanning hiring manager row: %v", err)
			return nil, fmt.Errorf("failed to scan hiring manager: %w", err)
		}
		managers = append(managers, *manager)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hiring managers: %w", err)
	}
	return managers, nil
}

// SetApproved updates the approval flag.
func (r *HiringManagerRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE hiring_managers SET is_approved = $2, updated_at = NOW() WHERE id = $1`, id, approved)
	if err != nil {
		log.Printf("Error updating approval for hiring manager %s: %v", id, err)
		return fmt.Errorf("failed to update hiring manager approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete hard-deletes the hiring manager record. Jobs posted by the manager
// are deliberately left in place (dangling owner reference, accepted behavior).
func (r *HiringManagerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hiring_managers WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting hiring manager %s: %v", id, err)
		return fmt.Errorf("failed to delete hiring manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
