package gateway

import (
	"fmt"
	"net/http"
)

// APIError is a transport-level failure from the remote catalog service,
// carrying the HTTP status and the server-supplied message when one was
// present in the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote catalog error: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote catalog error: %d %s", e.Status, http.StatusText(e.Status))
}

// ServerMessage returns the server-supplied message, or the given fallback
// when the server did not send one. Callers use this to render a
// human-readable failure, e.g. on a rejected login.
func (e *APIError) ServerMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
