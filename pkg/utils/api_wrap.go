package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelling/pkg/filters"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels onto HTTP status codes. Anything
// unrecognised is logged and reported as a 500 without details.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case isAny(err, notFoundErrors):
		RespondError(c, http.StatusNotFound, err.Error())
	case isAny(err, conflictErrors):
		RespondError(c, http.StatusConflict, err.Error())
	case isAny(err, validationErrors), errors.Is(err, filters.ErrInvalidFilter):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrStorageUnavailable):
		zap.L().Warn("storage error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusServiceUnavailable, "Storage unavailable")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
