package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Media uploads. When CloudinaryURL is empty the server falls back
	// to local-disk storage under UploadDir.
	CloudinaryURL string
	UploadDir     string

	AllowedOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jobportal port=5432 sslmode=disable"),
		JWTSecret:     getEnv("SECRET_KEY", ""),
		TokenTTL:      24 * time.Hour,
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
