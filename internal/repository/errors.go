package repository

import "errors"

// Domain-level errors I prefer to bubble up from repository implementations.
// Callers match with errors.Is; pkg/response maps them to HTTP statuses.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
