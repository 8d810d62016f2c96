// Package store provides the catalog repository and its in-memory implementation.
package store

import "fmt"

// NotFoundError is returned when a lookup by id, slug or code misses
type NotFoundError struct {
	Entity string
	Key    string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// NewNotFoundError constructs a NotFoundError for the given entity and key
func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ErrNotFound is a comparison target for errors.Is
var ErrNotFound = &NotFoundError{}
