package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-board-api/config"
	"job-board-api/internal/app"
	"job-board-api/internal/database"
	"job-board-api/internal/server"
	"job-board-api/internal/token"

	"github.com/go-playground/validator"
)

// @title           Job Board API
// @version         1.0
// @description     REST API for a job board: applicants apply to jobs, hiring managers post them, an admin approves managers.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()
	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.Expiration)

	application := &app.Application{
		Config:    cfg,
		DBPool:    dbPool,
		Validator: validate,
		Tokens:    tokens,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
