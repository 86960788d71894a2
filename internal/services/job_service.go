package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// PostJob creates a posting owned by the calling recruiter. The
// referenced company must exist; a dangling company id is rejected
// instead of trusted.
func (s *JobService) PostJob(ctx context.Context, callerID uint, req *dtos.PostJobRequest) (*models.Job, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(req.Salary), 64)
	if err != nil {
		return nil, apperr.Validation("Salary must be a number.")
	}

	var company models.Company
	err = s.DB.WithContext(ctx).First(&company, req.CompanyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("Referenced company does not exist.")
		}
		return nil, apperr.Internal("failed to look up company", err)
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    SplitList(req.Requirements, "."),
		Salary:          salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.Experience,
		Position:        req.Position,
		CompanyID:       company.ID,
		CreatedByID:     callerID,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, apperr.Internal("failed to create job", err)
	}
	job.Company = company
	return job, nil
}

// ListJobs returns jobs whose title or description contains keyword
// case-insensitively; an empty keyword matches everything.
func (s *JobService) ListJobs(ctx context.Context, keyword string) ([]models.Job, error) {
	var jobs []models.Job
	query := s.DB.WithContext(ctx).Preload("Company").Order("created_at DESC")
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, apperr.Internal("failed to list jobs", err)
	}
	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Preload("Company", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "logo_url")
		}).
		Preload("Applications").
		First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found.")
		}
		return nil, apperr.Internal("failed to fetch job", err)
	}
	return &job, nil
}

func (s *JobService) ListJobsByOwner(ctx context.Context, callerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("created_by_id = ?", callerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Internal("failed to list jobs", err)
	}
	return jobs, nil
}

// DeleteJob removes a posting. Only the recruiter who created the job
// may delete it.
func (s *JobService) DeleteJob(ctx context.Context, callerID, jobID uint) error {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Job not found.")
		}
		return apperr.Internal("failed to look up job", err)
	}
	if job.CreatedByID != callerID {
		return apperr.Forbidden("Only the job's owner can delete it.")
	}
	if err := s.DB.WithContext(ctx).Delete(&job).Error; err != nil {
		return apperr.Internal("failed to delete job", err)
	}
	return nil
}
