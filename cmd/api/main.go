package main

import (
	"log/slog"
	"os"

	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/config"
	"github.com/joblane/job-portal/internal/database"
	"github.com/joblane/job-portal/internal/handlers"
	"github.com/joblane/job-portal/internal/media"
	"github.com/joblane/job-portal/internal/services"
)

func main() {
	// 1. Configuration (loads .env when present)
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		slog.Error("SECRET_KEY must be set")
		os.Exit(1)
	}

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 3. Media storage: Cloudinary when configured, local disk otherwise
	var uploads media.Uploader
	servedUploadDir := ""
	if cfg.CloudinaryURL != "" {
		uploads, err = media.NewCloudinaryUploader(cfg.CloudinaryURL)
	} else {
		uploads, err = media.NewDiskUploader(cfg.UploadDir)
		servedUploadDir = cfg.UploadDir
	}
	if err != nil {
		slog.Error("failed to initialize media storage", "error", err)
		os.Exit(1)
	}

	// 4. Core services
	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(db, tokens, uploads)
	companyService := services.NewCompanyService(db, uploads)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 5. Router
	router := handlers.NewRouter(handlers.RouterDependencies{
		Users:          handlers.NewUserHandler(userService, int(cfg.TokenTTL.Seconds())),
		Companies:      handlers.NewCompanyHandler(companyService),
		Jobs:           handlers.NewJobHandler(jobService),
		Applications:   handlers.NewApplicationHandler(applicationService),
		Tokens:         tokens,
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      servedUploadDir,
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
