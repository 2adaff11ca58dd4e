package handlers

import (
	"net/http"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/middleware"
	"revhire_backend/internal/models"
	"revhire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobPostingHandler struct {
	*BaseHandler
	jobPostingService  services.JobPostingService
	applicationService services.ApplicationService
}

func NewJobPostingHandler(
	base *BaseHandler,
	jobPostingService services.JobPostingService,
	applicationService services.ApplicationService,
) *JobPostingHandler {
	return &JobPostingHandler{
		BaseHandler:        base,
		jobPostingService:  jobPostingService,
		applicationService: applicationService,
	}
}

func (h *JobPostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		// Browsing is open to any authenticated user
		jobs.GET("", h.List)
		jobs.GET("/search", h.Search)
		jobs.GET("/:id", h.Get)
		jobs.GET("/:id/applicant-count", h.ApplicantCount)

		employerOnly := jobs.Group("")
		employerOnly.Use(middleware.RequireRoles(string(models.RoleEmployer)))
		{
			employerOnly.POST("", h.Create)
			employerOnly.PUT("/:id", h.Update)
			employerOnly.DELETE("/:id", h.Delete)
			employerOnly.GET("/mine", h.ListMine)
			employerOnly.GET("/:id/applications", h.ListApplications)
			employerOnly.GET("/:id/resumes", h.ListResumes)
		}
	}
}

func (h *JobPostingHandler) Create(c *gin.Context) {
	var req dto.CreateJobPostingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobPostingService.CreateJobPosting(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusCreated, resp)
}

func (h *JobPostingHandler) Get(c *gin.Context) {
	resp, err := h.jobPostingService.GetJobPosting(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobPostingHandler) List(c *gin.Context) {
	page, size, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	resp, err := h.jobPostingService.GetAllJobPostings(page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobPostingHandler) ListMine(c *gin.Context) {
	resp, err := h.jobPostingService.GetJobPostingsByEmployer(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

// Search returns 204 instead of an empty array when nothing matched.
func (h *JobPostingHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.jobPostingService.SearchJobs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(resp) == 0 {
		h.NoContent(c)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobPostingHandler) Update(c *gin.Context) {
	var req dto.UpdateJobPostingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobPostingService.UpdateJobPosting(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobPostingHandler) Delete(c *gin.Context) {
	if err := h.jobPostingService.DeleteJobPosting(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobPostingHandler) ApplicantCount(c *gin.Context) {
	count, err := h.jobPostingService.GetApplicantCount(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"count": count})
}

func (h *JobPostingHandler) ListApplications(c *gin.Context) {
	resp, err := h.applicationService.GetApplicationsByJobPosting(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *JobPostingHandler) ListResumes(c *gin.Context) {
	resp, err := h.jobPostingService.GetResumesForPosting(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}
