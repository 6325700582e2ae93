// Package errors provides structured errors with HTTP context and the
// helpers handlers use to translate them into JSON responses.
package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mantonx/streambase/internal/logger"
)

// AppError represents a structured error with HTTP context
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Context    map[string]interface{} `json:"context,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// FieldError describes a single failed validation rule on a request field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ToGinResponse sends the error as a standardized JSON response
func (e *AppError) ToGinResponse(c *gin.Context) {
	statusCode := e.HTTPStatus
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	response := gin.H{
		"error": e.Message,
		"code":  e.Code,
	}
	if len(e.Context) > 0 {
		response["details"] = e.Context
	}

	logger.Error("HTTP error response",
		logger.Int("status", statusCode),
		logger.String("code", e.Code),
		logger.String("message", e.Message),
		logger.String("path", c.Request.URL.Path),
		logger.String("method", c.Request.Method),
		logger.Err("cause", e.Cause))

	c.JSON(statusCode, response)
}

// Common error constructors

func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Context:    map[string]interface{}{"fields": fields},
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Code:       "DATABASE_ERROR",
		Message:    "Database operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Context:    map[string]interface{}{"operation": operation},
		Cause:      cause,
	}
}

// HTTP helpers to eliminate duplicate error handling

// HandleValidationError sends a 400 response with the structured field errors
func HandleValidationError(c *gin.Context, message string, fields []FieldError) {
	NewValidationError(message, fields).ToGinResponse(c)
}

// HandleNotFound sends a 404 response
func HandleNotFound(c *gin.Context, resource string) {
	NewNotFoundError(resource).ToGinResponse(c)
}

// HandleInternalError sends a 500 response with a generic message.
// The cause is logged but never leaked to the client.
func HandleInternalError(c *gin.Context, message string, err error) {
	NewInternalError(message, err).ToGinResponse(c)
}

// IsNotFound reports whether err carries a 404 status
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus == http.StatusNotFound
	}
	return false
}
