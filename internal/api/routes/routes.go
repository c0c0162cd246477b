// internal/api/routes/routes.go
package routes

import (
	"log"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/app"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires repositories, services and handlers and mounts the
// resource-specific route groups under /api.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// --- Repositories ---
	applicantRepo := postgres.NewApplicantRepo(app.DBPool)
	managerRepo := postgres.NewHiringManagerRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	appRepo := postgres.NewApplicationRepo(app.DBPool)

	// --- Services ---
	authService := services.NewAuthService(applicantRepo, managerRepo, app.Tokens, services.AdminCredentials{
		Username: app.Config.Admin.Username,
		Password: app.Config.Admin.Password,
	})
	adminService := services.NewAdminService(managerRepo, jobRepo)
	jobService := services.NewJobService(jobRepo, appRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, applicantRepo)
	applicantService := services.NewApplicantService(applicantRepo, appRepo, jobRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, app.Validator)
	adminHandler := handlers.NewAdminHandler(adminService)
	jobHandler := handlers.NewJobHandler(jobService, applicationService, applicantService, app.Validator)
	applicantHandler := handlers.NewApplicantHandler(applicantService, applicationService, jobService, app.Validator)

	// --- Middleware ---
	authenticate := middleware.Authenticate(app.Tokens)
	requireAdmin := middleware.RequireRole(app.Tokens, models.RoleAdmin)
	requireManager := middleware.RequireRole(app.Tokens, models.RoleHiringManager)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler)
	RegisterAdminRoutes(api, adminHandler, requireAdmin)
	RegisterManagerRoutes(api, jobHandler, requireManager, authenticate)
	RegisterApplicantRoutes(api, applicantHandler, authenticate)

	// --- Utility Routes ---
	router.GET("/health", handlers.HealthCheck)
	router.GET("/get-ip", handlers.GetIP)

	log.Println("Routes registered")
}
