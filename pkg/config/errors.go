// Package config provides loading of the optional sur.yml configuration.
package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrInvalidKinds    = errors.New("invalid kinds")
	ErrEmptySourcePath = errors.New("excluded source path cannot be empty")
)
