package errors

import "net/http"

// HTTPError is an error that carries the status and error code a delivery
// layer should answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrConflict            = NewHTTPError(http.StatusConflict, "conflict")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
