package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/dtos"
	"github.com/joblane/job-portal/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: companies}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}
	callerID, _ := auth.Identity(c)
	company, err := h.CompanyService.Register(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Company registered successfully.",
		"company": company,
	})
}

// ListOwned returns companies registered by the calling recruiter.
func (h *CompanyHandler) ListOwned(c *gin.Context) {
	callerID, _ := auth.Identity(c)
	companies, err := h.CompanyService.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"companies": companies,
	})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, ok := idParam(c)
	if !ok {
		return
	}
	company, err := h.CompanyService.Get(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": company,
	})
}

// Update is a multipart form endpoint; a "file" part replaces the logo.
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c)
		return
	}
	logo, closeUpload := formUpload(c)
	defer closeUpload()

	callerID, _ := auth.Identity(c)
	company, err := h.CompanyService.Update(c.Request.Context(), callerID, companyID, &req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company information updated.",
		"company": company,
	})
}
