package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/media"
	"github.com/joblane/job-portal/internal/models"
	"gorm.io/gorm"
)

// Credential failures share one message so the response never reveals
// which of email, password, or role was wrong.
const badCredentialsMessage = "Incorrect email, password, or role."

// FileUpload carries an optional multipart file from handler to service.
type FileUpload struct {
	File     io.Reader
	Filename string
}

type UserService struct {
	DB      *gorm.DB
	Tokens  *auth.TokenProvider
	Uploads media.Uploader
}

func NewUserService(db *gorm.DB, tokens *auth.TokenProvider, uploads media.Uploader) *UserService {
	return &UserService{DB: db, Tokens: tokens, Uploads: uploads}
}

func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest, resume *FileUpload) error {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return apperr.Duplicate("User already exists with this email.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal("failed to check existing user", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperr.Internal("failed to hash password", err)
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hash,
		Role:        req.Role,
	}
	if resume != nil {
		url, err := s.Uploads.Upload(ctx, resume.File, "resumes", resume.Filename)
		if err != nil {
			return apperr.Internal("failed to upload resume", err)
		}
		user.Profile.ResumeURL = url
		user.Profile.ResumeOriginalName = resume.Filename
	}

	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Duplicate("User already exists with this email.")
		}
		return apperr.Internal("failed to create user", err)
	}
	return nil
}

// Login verifies email, password, and role and issues a session token.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Auth(badCredentialsMessage)
		}
		return nil, "", apperr.Internal("failed to look up user", err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperr.Auth(badCredentialsMessage)
	}
	if user.Role != req.Role {
		return nil, "", apperr.Auth(badCredentialsMessage)
	}

	token, _, err := s.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", apperr.Internal("failed to issue session token", err)
	}
	return &user, token, nil
}

// UpdateProfile applies only the supplied fields; everything absent
// keeps its prior value.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *dtos.UpdateProfileRequest, resume *FileUpload) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, apperr.Internal("failed to look up user", err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" && req.Email != user.Email {
		var taken models.User
		err := s.DB.WithContext(ctx).Where("email = ? AND id <> ?", req.Email, user.ID).First(&taken).Error
		if err == nil {
			return nil, apperr.Duplicate("User already exists with this email.")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Internal("failed to check existing user", err)
		}
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if skills := SplitList(req.Skills, ","); len(skills) > 0 {
		user.Profile.Skills = skills
	}
	if resume != nil {
		url, err := s.Uploads.Upload(ctx, resume.File, "resumes", resume.Filename)
		if err != nil {
			return nil, apperr.Internal("failed to upload resume", err)
		}
		user.Profile.ResumeURL = url
		user.Profile.ResumeOriginalName = resume.Filename
	}

	if err := s.DB.WithContext(ctx).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("User already exists with this email.")
		}
		return nil, apperr.Internal("failed to update profile", err)
	}
	return &user, nil
}

// SplitList decodes a delimiter-joined string into an ordered list,
// trimming whitespace and dropping empty entries.
func SplitList(value, delimiter string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, delimiter) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
