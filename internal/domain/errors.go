package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrHostMissing is returned when a request carries no host at all.
	ErrHostMissing = errors.New("host not known")

	// ErrHostNotUnderstood is returned for hosts that are neither an org
	// subdomain nor localhost.
	ErrHostNotUnderstood = errors.New("host not understood")
)

// HostError reports a host that could not be mapped to an org.
// It matches ErrValidation as well as its own sentinel.
type HostError struct {
	Host string
	Err  error // ErrHostMissing or ErrHostNotUnderstood
}

// Error implements the error interface
func (e *HostError) Error() string {
	if e.Host == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Host)
}

// Unwrap exposes the sentinel
func (e *HostError) Unwrap() error { return e.Err }

// Is allows errors.Is() to match against ErrValidation
func (e *HostError) Is(target error) bool {
	return target == ErrValidation
}

// StatusCode implements the HTTPError interface
func (e *HostError) StatusCode() int { return http.StatusBadRequest }
