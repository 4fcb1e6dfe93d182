package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Client
// errors carry the error text; server errors are logged and hidden.
func HandleServiceError(c *gin.Context, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAuthDisabled):
		RespondError(c, http.StatusNotFound, "Token issuing is not configured")
	case errors.Is(err, ErrCatalogUnavailable):
		log.WithError(err).Error("catalog unavailable", map[string]interface{}{"trace_id": traceID(c)})
		RespondError(c, http.StatusServiceUnavailable, "Catalog is not available, try again later")
	case errors.Is(err, ErrDatabaseError):
		log.WithError(err).Error("database error", map[string]interface{}{"trace_id": traceID(c)})
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.WithError(err).Error("unhandled service error", map[string]interface{}{"trace_id": traceID(c)})
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
