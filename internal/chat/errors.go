package chat

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidConversation means the history has no turns left to send once the greeting is dropped.
var ErrInvalidConversation = errors.New("cannot process an empty conversation")

// ValidationError indicates a malformed chat request body.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Client-facing error bodies. Internal details never leave the server.
const (
	msgInvalidMessages   = "Messages are required and must be an array"
	msgEmptyConversation = "Cannot process an empty conversation."
	msgGenerationFailed  = "Failed to generate content"
	msgMethodNotAllowed  = "Method Not Allowed"
)

// HTTPStatus maps a chat pipeline error to its status code and public message.
// Anything that is not the caller's fault is reported as a generation failure.
func HTTPStatus(err error) (int, string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, msgInvalidMessages
	case errors.Is(err, ErrInvalidConversation):
		return http.StatusBadRequest, msgEmptyConversation
	default:
		return http.StatusInternalServerError, msgGenerationFailed
	}
}
