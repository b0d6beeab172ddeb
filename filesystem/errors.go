package filesystem

import "errors"

// Entry operation failures. Returned errors wrap one of these with the
// offending name; match them with errors.Is.
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrAlreadyExists    = errors.New("entry already exists")
	ErrNotFound         = errors.New("entry not found")
	ErrWrongKind        = errors.New("wrong entry kind")
	ErrTableFull        = errors.New("entry table full")
	ErrCapacityExceeded = errors.New("file capacity exceeded")
)
