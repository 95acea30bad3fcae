package domain

import "errors"

var (
	// ErrNotFound is returned when a cobro or usable public link does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProviderLookupFailed is returned when the provider cannot resolve a reference.
	// It is transient: the next poll or webhook retry recovers it.
	ErrProviderLookupFailed = errors.New("provider lookup failed")

	// ErrStateConflict is returned when a conditional write keeps losing the race.
	ErrStateConflict = errors.New("state conflict")

	// ErrSlugCollision is returned by stores when a slug is already taken.
	ErrSlugCollision = errors.New("slug collision")

	// ErrInvalidState is returned for unknown state values.
	ErrInvalidState = errors.New("invalid state")
)
