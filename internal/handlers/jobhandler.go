package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// PostJob is the POST /job/post endpoint (recruiter only).
func (h *JobHandler) PostJob(c *gin.Context) {
	var req dtos.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}
	callerID, _ := auth.Identity(c)
	job, err := h.JobService.PostJob(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "New job created successfully.",
		"job":     job,
	})
}

// ListJobs is the public GET /job/get endpoint with optional ?keyword=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		return
	}
	job, err := h.JobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// ListAdminJobs returns the calling recruiter's own postings.
func (h *JobHandler) ListAdminJobs(c *gin.Context) {
	callerID, _ := auth.Identity(c)
	jobs, err := h.JobService.ListJobsByOwner(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		return
	}
	callerID, _ := auth.Identity(c)
	if err := h.JobService.DeleteJob(c.Request.Context(), callerID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully.",
	})
}
