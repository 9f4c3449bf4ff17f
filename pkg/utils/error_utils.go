package utils

import (
	"github.com/gin-gonic/gin"
)

// APIError is the standardized JSON error body. Every failed request
// carries a human-readable detail string plus an application error code.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Detail     string `json:"detail"`
}

// NewAPIError creates a new APIError instance.
func NewAPIError(statusCode int, code string, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Detail:     detail,
	}
}

// RespondWithError sends a standardized JSON error response and stops
// further handler processing.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, err)
	c.Abort()
}

// Application error codes.
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeAmountMismatch      = "AMOUNT_MISMATCH"
	ErrCodeInvalidPeriod       = "INVALID_PERIOD"
	ErrCodeInvalidDateRange    = "INVALID_DATE_RANGE"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)
