package core

import "errors"

// Common errors.
//
// Note that "not found" is deliberately absent: updating, deleting or
// pinning an unknown ID is a documented no-op, not an error. That tolerates
// a stale caller firing the same command twice.
var (
	// ErrDuplicateName is returned by TagStore.Add and TagStore.Update when
	// another tag already has the same name (case-insensitive).
	ErrDuplicateName = errors.New("a tag with this name already exists")

	// ErrInvalidSortOption is returned by ParseSortOption for anything
	// outside the four known variants.
	ErrInvalidSortOption = errors.New("invalid sort option")
)
