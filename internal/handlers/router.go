package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joblane/job-portal/internal/auth"
	"github.com/joblane/job-portal/internal/models"
)

type RouterDependencies struct {
	Users          *UserHandler
	Companies      *CompanyHandler
	Jobs           *JobHandler
	Applications   *ApplicationHandler
	Tokens         *auth.TokenProvider
	AllowedOrigins []string
	// Serve local-disk uploads from this directory; empty disables the route.
	UploadDir string
}

// NewRouter wires the full route table under /api/v1. Public reads
// (job list, job detail) need no session; everything else goes through
// Authenticate, with recruiter-only routes additionally role-gated.
func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = deps.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	authenticated := auth.Authenticate(deps.Tokens)
	recruiterOnly := auth.RequireRole(models.RoleRecruiter)
	studentOnly := auth.RequireRole(models.RoleStudent)

	api := r.Group("/api/v1")
	{
		user := api.Group("/user")
		{
			user.POST("/register", deps.Users.Register)
			user.POST("/login", deps.Users.Login)
			user.POST("/logout", deps.Users.Logout)
			// legacy client calls logout with GET
			user.GET("/logout", deps.Users.Logout)
			user.POST("/profile/update", authenticated, deps.Users.UpdateProfile)
		}

		company := api.Group("/company", authenticated)
		{
			company.POST("/register", recruiterOnly, deps.Companies.Register)
			company.GET("/get", recruiterOnly, deps.Companies.ListOwned)
			company.GET("/get/:id", deps.Companies.Get)
			company.POST("/update/:id", recruiterOnly, deps.Companies.Update)
		}

		job := api.Group("/job")
		{
			job.GET("/get", deps.Jobs.ListJobs)
			job.GET("/get/:id", deps.Jobs.GetJob)
			job.POST("/post", authenticated, recruiterOnly, deps.Jobs.PostJob)
			job.GET("/getadminjobs", authenticated, recruiterOnly, deps.Jobs.ListAdminJobs)
			job.DELETE("/delete/:id", authenticated, recruiterOnly, deps.Jobs.DeleteJob)
		}

		application := api.Group("/application", authenticated)
		{
			application.GET("/apply/:id", studentOnly, deps.Applications.Apply)
			application.GET("/get", deps.Applications.ListApplied)
			application.GET("/:id/applicants", recruiterOnly, deps.Applications.ListApplicants)
			application.POST("/status/:id/update", recruiterOnly, deps.Applications.UpdateStatus)
		}
	}
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		c.Next()
		slog.Info("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
