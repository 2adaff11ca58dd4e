package handlers

import (
	"net/http"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/middleware"
	"revhire_backend/internal/models"
	"revhire_backend/internal/services"
	"revhire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		seekerOnly := apps.Group("")
		seekerOnly.Use(middleware.RequireRoles(string(models.RoleJobSeeker)))
		{
			seekerOnly.POST("", h.Submit)
			seekerOnly.DELETE("/:id", h.Withdraw)
		}

		apps.GET("/:id", h.Get)

		employerOnly := apps.Group("")
		employerOnly.Use(middleware.RequireRoles(string(models.RoleEmployer)))
		{
			employerOnly.PUT("/:id", h.Update)
			employerOnly.PATCH("/:id/status", h.UpdateStatus)
		}
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.SubmitApplication(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusCreated, resp)
}

// Withdraw maps the service's boolean onto HTTP: 204 when a row was
// deleted, 404 when nothing matched the caller and the id.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	withdrawn, err := h.applicationService.WithdrawApplication(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !withdrawn {
		h.HandleServiceError(c, apperrors.ErrApplicationNotFound)
		return
	}
	h.NoContent(c)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	resp, err := h.applicationService.GetApplication(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateApplication(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

// UpdateStatus is the short form for the employer review flow: only the
// status moves, everything else is carried over.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	existing, err := h.applicationService.GetApplication(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	full := dto.UpdateApplicationRequest{
		JobPostingID: existing.JobPostingID,
		JobSeekerID:  existing.JobSeekerID,
		ResumeID:     existing.ResumeID,
		Status:       req.Status,
	}

	resp, err := h.applicationService.UpdateApplication(middleware.CurrentUserID(c), c.Param("id"), &full)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}
