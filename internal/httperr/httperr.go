package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a typed error from the core onto an HTTP response.
func Respond(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		Internal(c, "internal_error", "internal error")
		return
	}

	switch e.Kind {
	case apperr.KindAuthentication:
		Unauthorized(c, e.Code, e.Message)
	case apperr.KindAuthorization:
		Forbidden(c, e.Code, e.Message)
	case apperr.KindNotFound:
		NotFound(c, e.Code, e.Message)
	case apperr.KindConflict:
		Conflict(c, e.Code, e.Message)
	case apperr.KindValidation:
		BadRequest(c, e.Code, e.Message)
	default:
		Internal(c, e.Code, "internal error")
	}
}
