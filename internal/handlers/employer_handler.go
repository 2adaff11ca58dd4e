package handlers

import (
	"net/http"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/middleware"
	"revhire_backend/internal/models"
	"revhire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	*BaseHandler
	employerService services.EmployerService
}

func NewEmployerHandler(base *BaseHandler, employerService services.EmployerService) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:     base,
		employerService: employerService,
	}
}

func (h *EmployerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employers := rg.Group("/employers")
	employers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.RoleEmployer)))
	{
		employers.GET("/me", h.GetProfile)
		employers.PUT("/me", h.UpdateProfile)
	}
}

func (h *EmployerHandler) GetProfile(c *gin.Context) {
	resp, err := h.employerService.GetEmployer(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateEmployerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.employerService.UpdateEmployer(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}
