package collector

import "errors"

// Error definitions for collector package.
var (
	// ErrParseFailure is returned when a source file of the batch cannot be parsed.
	ErrParseFailure = errors.New("failed to parse source file")
	// ErrCatalogGlob is returned when catalog entries cannot be listed.
	ErrCatalogGlob = errors.New("failed to list asset catalog entries")
)
