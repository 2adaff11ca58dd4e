package handlers

import (
	"net/http"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/middleware"
	"revhire_backend/internal/models"
	"revhire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobSeekerHandler struct {
	*BaseHandler
	jobSeekerService   services.JobSeekerService
	resumeService      services.ResumeService
	applicationService services.ApplicationService
}

func NewJobSeekerHandler(
	base *BaseHandler,
	jobSeekerService services.JobSeekerService,
	resumeService services.ResumeService,
	applicationService services.ApplicationService,
) *JobSeekerHandler {
	return &JobSeekerHandler{
		BaseHandler:        base,
		jobSeekerService:   jobSeekerService,
		resumeService:      resumeService,
		applicationService: applicationService,
	}
}

func (h *JobSeekerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seekers := rg.Group("/jobseekers")
	seekers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.RoleJobSeeker)))
	{
		seekers.GET("/me", h.GetProfile)
		seekers.PUT("/me", h.UpdateProfile)

		seekers.POST("/me/resume", h.CreateResume)
		seekers.GET("/me/resume", h.GetResume)
		seekers.PUT("/me/resume", h.UpdateResume)
		seekers.DELETE("/me/resume", h.DeleteResume)
		seekers.GET("/me/resume/exists", h.HasResume)

		seekers.GET("/me/applications", h.ListApplications)
	}
}

func (h *JobSeekerHandler) GetProfile(c *gin.Context) {
	resp, err := h.jobSeekerService.GetJobSeeker(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateJobSeekerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobSeekerService.UpdateJobSeeker(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobSeekerHandler) CreateResume(c *gin.Context) {
	var req dto.ResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resumeService.CreateResume(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusCreated, resp)
}

func (h *JobSeekerHandler) GetResume(c *gin.Context) {
	resp, err := h.resumeService.GetResume(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobSeekerHandler) UpdateResume(c *gin.Context) {
	var req dto.ResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resumeService.UpdateResume(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobSeekerHandler) DeleteResume(c *gin.Context) {
	if err := h.resumeService.DeleteResume(middleware.CurrentUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobSeekerHandler) HasResume(c *gin.Context) {
	exists, err := h.resumeService.HasResume(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"exists": exists})
}

func (h *JobSeekerHandler) ListApplications(c *gin.Context) {
	resp, err := h.applicationService.GetApplicationsByJobSeeker(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}
