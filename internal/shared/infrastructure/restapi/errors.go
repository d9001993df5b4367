package restapi

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no usable response arrived
var ErrTransport = errors.New("backend unreachable")

const (
	MsgSessionExpired = "Session expired. Please log in again."
	MsgGenericFailure = "Something went wrong. Please try again."
)

// APIError is a non-2xx response carrying the backend's message
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status of an APIError, 0 otherwise
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
