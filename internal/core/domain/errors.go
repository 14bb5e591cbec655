package domain

import "errors"

var (
	// ErrInvalidSortOption is returned for a sort option outside the
	// supported set. A caller asking for an unknown ordering has a
	// programming error that should not be masked by a silent default.
	ErrInvalidSortOption = errors.New("invalid sort option")

	// ErrListingNotFound is returned when no property with the requested
	// composite id exists in the current collection.
	ErrListingNotFound = errors.New("listing not found")
)
