// Package server provides the HTTP REST API for the RFP responder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arvind/rfp-responder/internal/pricing"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNoDatabase indicates the server is running without persistence and a
// persisted-run endpoint was called.
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "server is running without a database"
}

// ErrRunNotFound indicates a persisted run was not found
type ErrRunNotFound struct {
	ID string
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *pricing.ErrPricingNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrRunNotFound:
		return http.StatusNotFound
	case *ErrNoDatabase:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
