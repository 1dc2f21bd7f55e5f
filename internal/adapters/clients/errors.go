// Package clients provides HTTP client adapters for upstream services.
package clients

import (
	"errors"
	"fmt"
)

// maxErrorBodyLen bounds how much of an upstream body is kept in a StatusError.
const maxErrorBodyLen = 512

// ErrUnexpectedStatus is matched by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// StatusError represents an upstream reply with a non-2xx status.
// It is an infrastructure error; callers translate it into a domain error.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

// NewStatusError builds a StatusError from a received response.
func NewStatusError(service string, resp *Response) *StatusError {
	body := string(resp.Body)
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	return &StatusError{Service: service, StatusCode: resp.StatusCode, Body: body}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected HTTP %d", e.Service, e.StatusCode)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
