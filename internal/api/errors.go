package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps network failures; the request never got an answer.
	ErrTransport = errors.New("network error")
	// ErrUnauthenticated is returned after a 401 has forced a logout.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is the only detail a failed login exposes.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// APIError is a non-2xx answer other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

func newAPIError(status int, detail string) *APIError {
	if detail == "" {
		detail = fmt.Sprintf("Error %d", status)
	}
	return &APIError{Status: status, Message: detail}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
