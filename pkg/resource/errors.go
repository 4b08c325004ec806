package resource

import "errors"

// Error definitions for resource package.
var (
	// ErrUnknownKind is returned for kind names other than image and color.
	ErrUnknownKind = errors.New("unknown resource kind")
)
