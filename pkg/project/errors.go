package project

import "errors"

// Error definitions for project package.
var (
	// ErrProjectLoad is returned when the project descriptor cannot be read or decoded.
	ErrProjectLoad = errors.New("failed to load project")
	// ErrPathUnresolved is returned for file elements whose source tree cannot be resolved.
	ErrPathUnresolved = errors.New("failed to resolve file element path")
	// ErrFilesNotFound is returned when a build phase has no file list.
	ErrFilesNotFound = errors.New("build phase files not found")
)
