package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applications}
}

// Apply is GET /application/apply/:id — the client treats it as a
// fire-and-forget action and appends optimistically.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		return
	}
	callerID, _ := auth.Identity(c)
	if _, err := h.ApplicationService.Apply(c.Request.Context(), callerID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job applied successfully.",
	})
}

// ListApplied returns the caller's applications for the applied-jobs view.
func (h *ApplicationHandler) ListApplied(c *gin.Context) {
	callerID, _ := auth.Identity(c)
	applications, err := h.ApplicationService.ListApplied(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": applications,
	})
}

// ListApplicants returns a job with its applications and applicant
// identities expanded, for the recruiter's review table.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		return
	}
	callerID, _ := auth.Identity(c)
	job, err := h.ApplicationService.ListApplicants(c.Request.Context(), callerID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}
	callerID, _ := auth.Identity(c)
	if err := h.ApplicationService.UpdateStatus(c.Request.Context(), callerID, applicationID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated successfully.",
	})
}
