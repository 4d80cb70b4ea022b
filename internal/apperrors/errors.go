// Package apperrors defines the error categories the HTTP layer knows how
// to translate into status codes. Services wrap these sentinels with %w and
// handlers match them with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation marks a malformed or incomplete request payload.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized covers bad credentials and missing/invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is authenticated but not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means an id did not resolve to a record.
	ErrNotFound = errors.New("not found")
	// ErrConflict covers unique-key collisions (duplicate email, duplicate
	// application).
	ErrConflict = errors.New("conflict")
	// ErrExternal marks a failed downstream call (evaluator, storage).
	ErrExternal = errors.New("external service error")
)
