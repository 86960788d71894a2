package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
	CookieTTL   int
}

func NewUserHandler(users *services.UserService, cookieTTLSeconds int) *UserHandler {
	return &UserHandler{UserService: users, CookieTTL: cookieTTLSeconds}
}

// Register is the POST /user/register endpoint (multipart form, may
// carry a resume file).
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c)
		return
	}
	resume, closeUpload := formUpload(c)
	defer closeUpload()

	if err := h.UserService.Register(c.Request.Context(), &req, resume); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully.",
	})
}

// Login issues the session cookie: HTTP-only, SameSite strict, 1 day.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}
	user, token, err := h.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, h.CookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back " + user.FullName,
		"user":    user,
	})
}

// Logout overwrites the cookie with an immediately expiring empty
// value; the token itself stays valid until expiry (stateless scheme).
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully.",
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c)
		return
	}
	resume, closeUpload := formUpload(c)
	defer closeUpload()

	callerID, _ := auth.Identity(c)
	user, err := h.UserService.UpdateProfile(c.Request.Context(), callerID, &req, resume)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully.",
		"user":    user,
	})
}
