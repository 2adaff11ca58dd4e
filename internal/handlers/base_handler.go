package handlers

import (
	"net/http"
	"strconv"

	"revhire_backend/internal/logger"
	"revhire_backend/internal/validator"
	"revhire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler holds the pieces every handler needs: payload validation and
// uniform error rendering.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{
		validator: validator.New(),
	}
}

// BindAndValidateJSON decodes the JSON body into obj and validates it.
// On failure it writes the 400 response itself and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid JSON payload").WithError(err))
		return false
	}
	return h.validate(c, obj)
}

// BindQuery binds query-string parameters into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid query parameters").WithError(err))
		return false
	}
	return true
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	if vErr, ok := err.(*validator.ValidationError); ok {
		h.HandleServiceError(c, apperrors.ValidationError(vErr.Errors))
		return false
	}

	h.HandleServiceError(c, apperrors.InternalError(err))
	return false
}

// HandleServiceError maps any error onto the normalized status contract:
// not-found to 404, validation and conflict to their own codes, everything
// else to 500.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Request failed", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
	apperrors.HandleError(c, err)
}

// ParsePagination reads page and size, defaulting to page 1 of 10 when the
// parameters are absent. Present but non-positive values are not corrected
// here; the service rejects them.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, size int, ok bool) {
	page, ok = h.parseQueryInt(c, "page", 1)
	if !ok {
		return 0, 0, false
	}
	size, ok = h.parseQueryInt(c, "size", 10)
	if !ok {
		return 0, 0, false
	}
	return page, size, true
}

func (h *BaseHandler) parseQueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError(name+" must be an integer"))
		return 0, false
	}
	return value, true
}

// JSON is a small wrapper so handlers do not repeat gin boilerplate.
func (h *BaseHandler) JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// NoContent writes an empty 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
