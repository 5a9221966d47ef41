package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

// upstreamError marks a failure of an external AI dependency (embedding,
// generation or transcription). Requests failing with it never persisted
// anything, so the caller may retry.
type upstreamError struct {
	Dependency string
	Err        error
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream dependency '%s' failed: %v", e.Dependency, e.Err)
}

func (e *upstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(dependency string, err error) error {
	return &upstreamError{
		Dependency: dependency,
		Err:        err,
	}
}

func IsUpstreamError(err error) bool {
	if err == nil {
		return false
	}
	var upstreamError *upstreamError
	return errors.As(err, &upstreamError)
}

// persistenceError marks a store write that failed or created no row.
type persistenceError struct {
	EntityType string
	Err        error
}

func (e *persistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.EntityType, e.Err)
}

func (e *persistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(entityType string, err error) error {
	return &persistenceError{
		EntityType: entityType,
		Err:        err,
	}
}

func IsPersistenceError(err error) bool {
	if err == nil {
		return false
	}
	var persistenceError *persistenceError
	return errors.As(err, &persistenceError)
}
