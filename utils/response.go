package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error aborts the request with a JSON error body
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// RespondWithError maps err onto a JSON error response. Not-found errors are
// answered without logging; everything else is logged under operation first.
// Anything that is not an AppError is treated as a 500.
func RespondWithError(c *gin.Context, operation string, err error) {
	if IsNotFoundError(err) {
		NotFound(c, GetAppError(err).Message)
		return
	}

	appErr := GetAppError(err)
	if appErr == nil {
		appErr = NewAppError(http.StatusInternalServerError, ErrInternalServer, err)
	}
	LogFailure(operation, requestID(c), appErr)
	Error(c, appErr.Code, appErr.Message)
}

// Redirect sends a 302 Found pointing at location
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
