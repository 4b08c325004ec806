package markup

import "errors"

// Error definitions for markup parser package.
var (
	// ErrReadMarkup is returned when a markup file cannot be read.
	ErrReadMarkup = errors.New("failed to read markup file")
	// ErrMalformedMarkup is returned for markup files that are not well-formed XML.
	ErrMalformedMarkup = errors.New("malformed markup file")
)
