package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope every error leaves the API in.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the gin response, wrapping unknown errors as 500s.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
