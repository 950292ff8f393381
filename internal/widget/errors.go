package widget

import (
	"errors"
	"fmt"
)

// ErrUploadInFlight is returned by triggers while a single-flight widget is
// still waiting on a response.
var ErrUploadInFlight = &UserInputError{Message: "An upload is already in progress."}

// UserInputError is raised before any network activity. The widget has
// already shown it through Presenter.Alert.
type UserInputError struct {
	Message string
}

func (e *UserInputError) Error() string {
	return e.Message
}

// ServerError is a non-2xx answer from the summarizer.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// TransportError means no usable response arrived: the request failed or the
// body could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsUserInput(err error) bool {
	var target *UserInputError
	return errors.As(err, &target)
}
