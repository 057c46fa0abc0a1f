package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
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

// StatusFor maps a service error to the HTTP status and the message shown
// to the client. Unknown errors are internal.
func StatusFor(err error) (int, string) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrUnresolvedTarget):
		// registry misconfiguration, not a user mistake
		return http.StatusInternalServerError, "Internal server error"
	case errors.As(err, &verr):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, ErrEntityNotFound), errors.Is(err, ErrFeedbackNotFound), errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest, "Unknown feedback status"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := StatusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}

	resp := APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	}
	var verr *ValidationError
	if errors.As(err, &verr) && code == http.StatusBadRequest {
		resp.Errors = verr.Fields
	}
	c.JSON(code, resp)
}
