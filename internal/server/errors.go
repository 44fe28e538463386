// Package server provides the HTTP REST API for resume analysis.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a stored resume, job, or analysis does not exist
type ErrNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrGeneratorUnavailable indicates no LLM generator is configured
type ErrGeneratorUnavailable struct{}

func (e *ErrGeneratorUnavailable) Error() string {
	return "rewrite generator is not configured"
}

// ErrFetchFailed indicates a job posting URL could not be fetched
type ErrFetchFailed struct {
	URL   string
	Cause error
}

func (e *ErrFetchFailed) Error() string {
	return fmt.Sprintf("failed to fetch job posting from %s: %v", e.URL, e.Cause)
}

func (e *ErrFetchFailed) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrGeneratorUnavailable:
		return http.StatusServiceUnavailable
	case *ErrFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
