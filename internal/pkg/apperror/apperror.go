package apperror

import "net/http"

// AppError is a custom error type that includes an HTTP status code and
// optional extra response headers (only 429 carries one today).
type AppError struct {
	Code    int               // HTTP Status Code (e.g., 400, 404)
	Message string            // User-facing error message
	Headers map[string]string // Extra response headers, if any
	Err     error             // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewWithHeaders creates a new AppError carrying extra response headers.
func NewWithHeaders(code int, message string, headers map[string]string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Headers: headers,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrBadRequest is shared by every module's input validation.
var ErrBadRequest = New(http.StatusBadRequest, "Bad Request")
