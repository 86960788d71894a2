package services

import (
	"context"
	"errors"
	"strings"

	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply creates a Pending application. A second application for the
// same (job, applicant) pair is rejected; the composite unique index
// backs up this pre-check against concurrent applies.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID uint) (*models.Application, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found.")
		}
		return nil, apperr.Internal("failed to look up job", err)
	}

	var existing models.Application
	err = s.DB.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&existing).Error
	if err == nil {
		return nil, apperr.Duplicate("You have already applied for this job.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to check existing application", err)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("You have already applied for this job.")
		}
		return nil, apperr.Internal("failed to create application", err)
	}
	return application, nil
}

// ListApplied returns the caller's applications, newest first, with
// job and company expanded for the client's applied-jobs view.
func (s *ApplicationService) ListApplied(ctx context.Context, applicantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Internal("failed to list applications", err)
	}
	return applications, nil
}

// ListApplicants returns a job's applications with applicant identity
// expanded. The calling recruiter must own the job.
func (s *ApplicationService) ListApplicants(ctx context.Context, callerID, jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Preload("Applications").
		Preload("Applications.Applicant").
		First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found.")
		}
		return nil, apperr.Internal("failed to fetch job", err)
	}
	if job.CreatedByID != callerID {
		return nil, apperr.Forbidden("Only the job's owner can view applicants.")
	}
	return &job, nil
}

// UpdateStatus overwrites an application's status with Accepted or
// Rejected. Both states stay mutable: a job can be re-decided, so no
// terminal-state lock is applied. The calling recruiter must own the
// job the application targets.
func (s *ApplicationService) UpdateStatus(ctx context.Context, callerID, applicationID uint, status string) error {
	normalized, ok := normalizeStatus(status)
	if !ok {
		return apperr.Validation("Status must be Accepted or Rejected.")
	}

	var application models.Application
	err := s.DB.WithContext(ctx).Preload("Job").First(&application, applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Application not found.")
		}
		return apperr.Internal("failed to look up application", err)
	}
	if application.Job.CreatedByID != callerID {
		return apperr.Forbidden("Only the job's owner can update application status.")
	}

	application.Status = normalized
	if err := s.DB.WithContext(ctx).Model(&application).Update("status", normalized).Error; err != nil {
		return apperr.Internal("failed to update status", err)
	}
	return nil
}

func normalizeStatus(status string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "accepted":
		return models.StatusAccepted, true
	case "rejected":
		return models.StatusRejected, true
	default:
		return "", false
	}
}
