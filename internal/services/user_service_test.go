package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *fakeUploader) {
	t.Helper()
	uploads := &fakeUploader{}
	tokens := auth.NewTokenProvider("test-secret", time.Hour)
	return NewUserService(newTestDB(t), tokens, uploads), uploads
}

func registerRequest(email string) *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		FullName:    "Ada Lovelace",
		Email:       email,
		PhoneNumber: "5550100",
		Password:    "hunter2",
		Role:        models.RoleStudent,
	}
}

func TestRegisterStoresHashedSecret(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))

	var user models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.NotEqual(t, "hunter2", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "hunter2"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))

	err := svc.Register(ctx, registerRequest("ada@example.com"), nil)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))
}

func TestRegisterUploadsResume(t *testing.T) {
	svc, uploads := newUserService(t)
	ctx := context.Background()

	resume := &FileUpload{File: strings.NewReader("pdf bytes"), Filename: "ada-cv.pdf"}
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), resume))

	var user models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.Equal(t, "https://cdn.example.com/resumes/ada-cv.pdf", user.Profile.ResumeURL)
	assert.Equal(t, "ada-cv.pdf", user.Profile.ResumeOriginalName)
	assert.Len(t, uploads.uploaded, 1)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))

	user, token, err := svc.Login(ctx, &dtos.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	claims, err := svc.Tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

// All three credential failures must produce the same message so the
// response never reveals which field was wrong.
func TestLoginUniformFailureMessage(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))

	cases := map[string]*dtos.LoginRequest{
		"unknown email":  {Email: "nobody@example.com", Password: "hunter2", Role: models.RoleStudent},
		"wrong password": {Email: "ada@example.com", Password: "wrong", Role: models.RoleStudent},
		"wrong role":     {Email: "ada@example.com", Password: "hunter2", Role: models.RoleRecruiter},
	}
	var messages []string
	for name, req := range cases {
		_, _, err := svc.Login(ctx, req)
		require.Error(t, err, name)
		assert.True(t, apperr.Is(err, apperr.CodeAuth), name)
		messages = append(messages, apperr.Message(err))
	}
	assert.Equal(t, messages[0], messages[1])
	assert.Equal(t, messages[1], messages[2])
}

func TestUpdateProfilePartialLeavesOtherFields(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	resume := &FileUpload{File: strings.NewReader("pdf bytes"), Filename: "ada-cv.pdf"}
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), resume))
	var before models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@example.com").First(&before).Error)
	before.Profile.Skills = []string{"Go", "SQL"}
	require.NoError(t, svc.DB.Save(&before).Error)

	updated, err := svc.UpdateProfile(ctx, before.ID, &dtos.UpdateProfileRequest{Bio: "Compiler enthusiast"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Compiler enthusiast", updated.Profile.Bio)
	assert.Equal(t, before.FullName, updated.FullName)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.PhoneNumber, updated.PhoneNumber)
	assert.Equal(t, []string{"Go", "SQL"}, []string(updated.Profile.Skills))
	assert.Equal(t, before.Profile.ResumeURL, updated.Profile.ResumeURL)
}

func TestUpdateProfileSplitsSkills(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))
	var user models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@example.com").First(&user).Error)

	updated, err := svc.UpdateProfile(ctx, user.ID, &dtos.UpdateProfileRequest{
		Skills: " Go , SQL ,, Linux ",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL", "Linux"}, []string(updated.Profile.Skills))
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, registerRequest("ada@example.com"), nil))
	require.NoError(t, svc.Register(ctx, registerRequest("grace@example.com"), nil))
	var grace models.User
	require.NoError(t, svc.DB.Where("email = ?", "grace@example.com").First(&grace).Error)

	_, err := svc.UpdateProfile(ctx, grace.ID, &dtos.UpdateProfileRequest{Email: "ada@example.com"}, nil)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))

	// Re-submitting your own email is not a conflict.
	updated, err := svc.UpdateProfile(ctx, grace.ID, &dtos.UpdateProfileRequest{Email: "grace@example.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", updated.Email)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpdateProfile(context.Background(), 9999, &dtos.UpdateProfileRequest{Bio: "x"}, nil)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList("", ","))
	assert.Equal(t, []string{"Go", "SQL", "Linux"}, SplitList("Go.SQL.Linux", "."))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , b , ", ","))
}
