package catalog

import "errors"

var (
	// ErrNotFound is returned when a catalog file does not exist.
	ErrNotFound = errors.New("catalog file not found")
	// ErrUnreadable is returned when a catalog file exists but cannot be read.
	ErrUnreadable = errors.New("failed to read catalog file")
	// ErrMalformed is returned when a catalog file is not valid JSON or has the wrong shape.
	ErrMalformed = errors.New("catalog file is malformed")
	// ErrCountMismatch is returned when the keys document and the default message
	// sequence disagree on the total number of keys.
	ErrCountMismatch = errors.New("key count does not match default message count")
)
