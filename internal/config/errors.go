package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrNoExtensions is returned when no document extension is configured.
	ErrNoExtensions = errors.New("no document extensions configured")

	// ErrInvalidSuffix is returned when the report suffix contains a path
	// separator, which would place reports outside the output directory.
	ErrInvalidSuffix = errors.New("invalid suffix: must not contain a path separator")
)
