package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Repository lookups translate driver-level "no rows" results into this
// sentinel so callers can treat an absent row as an expected outcome
// rather than a query failure.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
