package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// SendError writes an AppError as an ErrorResponse with its HTTP status
func SendError(c *gin.Context, err *apperrors.AppError) {
	response := ErrorResponse{
		Status:  StatusError,
		Message: err.Message,
		Error:   string(err.Code),
	}
	if len(err.Details) > 0 {
		response.Details = err.Details
	}
	c.AbortWithStatusJSON(err.GetHTTPCode(), response)
}

// SendInvalidInput sends a 400 for a rejected request value. AppErrors are
// sent as they are; other errors are reported against field.
func SendInvalidInput(c *gin.Context, field string, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.ValidationError(field, err.Error())
	}
	SendError(c, appErr)
}

// SendNotFoundEmpty sends a 404 without a body
func SendNotFoundEmpty(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
