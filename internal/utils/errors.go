package utils

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a handler should answer with and the
// message that ends up in the {"error": ...} body.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func NewRequestTooLargeError(message string) *AppError {
	return &AppError{StatusCode: http.StatusRequestEntityTooLarge, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}

// NewBadGatewayError reports a failure talking to the upstream summarizer.
func NewBadGatewayError(message string, cause error) *AppError {
	return &AppError{StatusCode: http.StatusBadGateway, Message: message, Err: cause}
}
