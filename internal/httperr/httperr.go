package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
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

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ======================================================
// DOMAIN MAPPING
// ======================================================

const (
	CodeCancelled = "cancelled"
	CodeNotFound  = "not_found"
	CodeInternal  = "internal_error"
)

// StatusFor maps a flow outcome to an HTTP status. nil maps to 200.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, form.ErrCancelled), office.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, office.ErrNotFound):
		return http.StatusNotFound
	case office.IsDuplicate(err):
		return http.StatusConflict
	case office.IsReference(err):
		return http.StatusUnprocessableEntity
	case office.IsStorageUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the machine-readable code for err, "" for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var coded interface{ Code() string }
	switch {
	case errors.As(err, &coded):
		return coded.Code()
	case errors.Is(err, form.ErrCancelled):
		return CodeCancelled
	case errors.Is(err, office.ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
