package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
)

// ErrorResponse defines the JSON envelope for application errors.
// The code field always equals the HTTP status of the response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error sends the JSON error envelope for a known AppError, including any
// error-specific headers (Retry-After on 429).
//
// Anything that is not an AppError is deliberately re-panicked: unknown
// faults must surface through gin.Recovery as a bare 500, never dressed up
// in the envelope.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		panic(err)
	}

	for k, v := range appErr.Headers {
		c.Header(k, v)
	}
	c.JSON(appErr.Code, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
}
