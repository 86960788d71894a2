package services

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}))
	return db
}

type fakeUploader struct {
	uploaded []string
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, folder, filename string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	url := "https://cdn.example.com/" + folder + "/" + filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	userSeq++
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		FullName:    fmt.Sprintf("User %d", userSeq),
		Email:       fmt.Sprintf("user%d@example.com", userSeq),
		PhoneNumber: "5550100",
		Password:    hash,
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, CreatedByID: ownerID}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, ownerID, companyID uint, title, description string, createdAt time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:           title,
		Description:     description,
		Requirements:    []string{"Go"},
		Salary:          60,
		Location:        "Remote",
		JobType:         "Full-time",
		ExperienceLevel: "2",
		Position:        1,
		CompanyID:       companyID,
		CreatedByID:     ownerID,
	}
	job.CreatedAt = createdAt
	require.NoError(t, db.Create(job).Error)
	return job
}
