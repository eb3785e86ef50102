package store

import "errors"

// Sentinel errors returned by store implementations and the business
// services layered on top of them. Callers match with errors.Is.
var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrMissingIdentifier is returned when a request carries neither an
	// id nor an alternate identifier (uuid, username).
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrDuplicateUUID is returned when a create or update would violate
	// a uniqueness constraint.
	ErrDuplicateUUID = errors.New("duplicate identifier")

	// ErrValidation is returned when a request fails a field-level
	// validation rule.
	ErrValidation = errors.New("validation failed")

	// ErrPartialBatch is returned when a batch association names a member
	// that cannot be associated; the whole batch is rejected.
	ErrPartialBatch = errors.New("batch member rejected")
)
