package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joblane/job-portal/internal/apperr"
	"github.com/joblane/job-portal/internal/services"
)

// respondError maps a service error onto the API's uniform error shape.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": apperr.Message(err),
	})
}

func respondBindingError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Something is missing.",
	})
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id.",
		})
		return 0, false
	}
	return uint(id), true
}

// formUpload pulls the optional multipart file out of the request. The
// returned close func must run after the service call completes.
func formUpload(c *gin.Context) (*services.FileUpload, func()) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, func() {}
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}
	}
	return &services.FileUpload{File: file, Filename: header.Filename}, func() { _ = file.Close() }
}
