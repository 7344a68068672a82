package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Code    string `json:"errorCode"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// CooldownUntil carries the resume instant for cooldown rejections so
	// the caller needs no second round-trip. The same instant is embedded
	// in Message as "cooldown_until:<RFC3339>".
	CooldownUntil string `json:"cooldownUntil,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	c.JSON(statusCode, response)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
	}

	if len(message) > 0 {
		response.Message = message[0]
	} else {
		response.Message = "Resource created successfully"
	}

	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	errorInfo := ErrorInfo{
		Code:    errors.CodeInternal,
		Message: message,
	}

	response := APIResponse{
		Success: false,
		Error:   &errorInfo,
	}

	c.JSON(statusCode, response)
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	var statusCode int
	var errorInfo ErrorInfo

	switch {
	case isBindingError(err):
		statusCode = http.StatusBadRequest
		errorInfo = ErrorInfo{
			Code:    errors.CodeInvalidArgument,
			Message: "malformed request",
			Details: err.Error(),
		}
	default:
		if appErr := errors.GetAppError(err); appErr != nil {
			statusCode = appErr.Code
			errorInfo = ErrorInfo{
				Code:    appErr.APICode(),
				Message: appErr.Message,
				Details: appErr.Details,
			}
			if until, ok := errors.CooldownUntil(appErr); ok {
				errorInfo.CooldownUntil = until.UTC().Format(time.RFC3339)
			}
		} else {
			// For non-AppError, do not expose internal error details to prevent information leakage
			statusCode = http.StatusInternalServerError
			errorInfo = ErrorInfo{
				Code:    errors.CodeInternal,
				Message: "Internal server error occurred",
			}
		}
	}

	response := APIResponse{
		Success: false,
		Error:   &errorInfo,
	}

	c.JSON(statusCode, response)
}

// isBindingError reports whether err originates from gin request binding
// (validator tag failures on the DTO).
func isBindingError(err error) bool {
	if _, ok := err.(validator.ValidationErrors); ok {
		return true
	}
	return false
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
