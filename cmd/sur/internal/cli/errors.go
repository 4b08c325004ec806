// Package cli provides common configuration and wiring functions for the SUR CLI.
package cli

import "errors"

// Error definitions for cli package.
var (
	// Project lookup errors.
	ErrProjectNotFound  = errors.New("no .xcodeproj found")
	ErrAmbiguousProject = errors.New("several .xcodeproj found, use --project-path")

	// Configuration errors.
	ErrConfigExists = errors.New("configuration file already exists")
)
