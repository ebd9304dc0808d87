package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prio/internal/shared/errors"
)

// JSONResponse writes a payload with the given status code.
func JSONResponse(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// CreatedResponse writes a payload with 201.
func CreatedResponse(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContentResponse sends a no content response.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse sends an error body of the form {"error": message}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithError renders an error based on its AppError classification.
// Validation errors attributed to a field are keyed by the field name, e.g.
// {"assignee_id": "user not found"}; everything else uses {"error": message}.
// Non-AppError values are masked as internal errors to avoid leaking details.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if appErr.Type == errors.ErrorTypeValidation && appErr.Field != "" {
		c.JSON(appErr.Code, gin.H{appErr.Field: appErr.Message})
		return
	}

	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
