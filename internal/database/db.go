package database

import (
	"log/slog"

	"github.com/joblane/job-portal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so services can map races on unique
	// indexes to Duplicate instead of Internal.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	slog.Info("database connection established")

	// Migration: this creates the tables in Postgres automatically
	if err := db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, err
	}
	return db, nil
}
