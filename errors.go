package etag

import "errors"

// Sentinel errors for entity tag parsing and validation.
var (
	// ErrInvalidFormat is returned when input does not match the
	// entity-tag grammar. Failure sites wrap it with a reason; match
	// with errors.Is.
	ErrInvalidFormat = errors.New("etag: invalid entity tag format")
)
