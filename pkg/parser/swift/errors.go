package swift

import "errors"

// Error definitions for swift parser package.
var (
	// ErrInvalidEncoding is returned for files that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("source file is not valid UTF-8")
	// ErrReadSource is returned when a source file cannot be read.
	ErrReadSource = errors.New("failed to read source file")
)
