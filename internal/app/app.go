// internal/app/app.go
package app

import (
	"job-board-api/config"
	"job-board-api/internal/token"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	DBPool    *pgxpool.Pool
	Validator *validator.Validate
	Tokens    *token.Manager
}
