package handlers

import (
	"net/http"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/jobseeker/register", h.RegisterJobSeeker)
		auth.POST("/jobseeker/login", h.LoginJobSeeker)
		auth.POST("/jobseeker/forgot-password", h.ResetJobSeekerPassword)
		auth.GET("/jobseeker/email-exists", h.JobSeekerEmailExists)

		auth.POST("/employer/register", h.RegisterEmployer)
		auth.POST("/employer/login", h.LoginEmployer)
		auth.POST("/employer/forgot-password", h.ResetEmployerPassword)
		auth.GET("/employer/email-exists", h.EmployerEmailExists)
	}
}

func (h *AuthHandler) RegisterJobSeeker(c *gin.Context) {
	var req dto.RegisterJobSeekerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.RegisterJobSeeker(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusCreated, resp)
}

func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dto.RegisterEmployerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.RegisterEmployer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusCreated, resp)
}

func (h *AuthHandler) LoginJobSeeker(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginJobSeeker(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *AuthHandler) LoginEmployer(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginEmployer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, resp)
}

func (h *AuthHandler) ResetJobSeekerPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetJobSeekerPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) ResetEmployerPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetEmployerPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) JobSeekerEmailExists(c *gin.Context) {
	exists, err := h.authService.JobSeekerEmailExists(c.Query("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"exists": exists})
}

func (h *AuthHandler) EmployerEmailExists(c *gin.Context) {
	exists, err := h.authService.EmployerEmailExists(c.Query("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.JSON(c, http.StatusOK, gin.H{"exists": exists})
}
