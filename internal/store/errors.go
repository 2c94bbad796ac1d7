package store

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when adding a record whose identity
	// already exists in the collection
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrUnavailable is returned when the underlying storage cannot be
	// opened or reached
	ErrUnavailable = errors.New("store unavailable")
)
