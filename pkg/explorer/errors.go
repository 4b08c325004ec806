package explorer

import "errors"

// Error definitions for explorer package.
var (
	// ErrNotFound is returned when a build phase is present but its files cannot be read or resolved.
	ErrNotFound = errors.New("files not found")
	// ErrTargetNotFound is returned when the requested target does not exist in the project.
	ErrTargetNotFound = errors.New("target not found")
	// ErrInvalidSourceRoot is returned when exclusion rules cannot be resolved against the source root.
	ErrInvalidSourceRoot = errors.New("invalid source root")
)
