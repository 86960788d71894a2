package services

import (
	"context"
	"errors"

	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/media"
	"github.com/joblane/job-portal/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB      *gorm.DB
	Uploads media.Uploader
}

func NewCompanyService(db *gorm.DB, uploads media.Uploader) *CompanyService {
	return &CompanyService{DB: db, Uploads: uploads}
}

func (s *CompanyService) Register(ctx context.Context, callerID uint, req *dtos.RegisterCompanyRequest) (*models.Company, error) {
	var existing models.Company
	err := s.DB.WithContext(ctx).Where("name = ?", req.CompanyName).First(&existing).Error
	if err == nil {
		return nil, apperr.Duplicate("A company with this name already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to check existing company", err)
	}

	company := &models.Company{
		Name:        req.CompanyName,
		CreatedByID: callerID,
	}
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("A company with this name already exists.")
		}
		return nil, apperr.Internal("failed to create company", err)
	}
	return company, nil
}

func (s *CompanyService) ListByOwner(ctx context.Context, callerID uint) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.WithContext(ctx).
		Where("created_by_id = ?", callerID).
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		return nil, apperr.Internal("failed to list companies", err)
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, companyID uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).First(&company, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Company not found.")
		}
		return nil, apperr.Internal("failed to fetch company", err)
	}
	return &company, nil
}

// Update applies only the supplied fields and replaces the logo when a
// file is attached. The calling recruiter must own the company.
func (s *CompanyService) Update(ctx context.Context, callerID, companyID uint, req *dtos.UpdateCompanyRequest, logo *FileUpload) (*models.Company, error) {
	company, err := s.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.CreatedByID != callerID {
		return nil, apperr.Forbidden("Only the company's owner can update it.")
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Location != "" {
		company.Location = req.Location
	}
	if logo != nil {
		url, err := s.Uploads.Upload(ctx, logo.File, "logos", logo.Filename)
		if err != nil {
			return nil, apperr.Internal("failed to upload logo", err)
		}
		company.LogoURL = url
	}

	if err := s.DB.WithContext(ctx).Save(company).Error; err != nil {
		return nil, apperr.Internal("failed to update company", err)
	}
	return company, nil
}
