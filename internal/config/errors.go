package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a settings
// group is invalid. Every field error is wrapped with the sentinel of its
// group.
var (
	// ErrInvalidOutputConfig indicates an unsupported output format.
	ErrInvalidOutputConfig = errors.New("invalid output configuration")
	// ErrInvalidLogConfig indicates an unknown log level.
	ErrInvalidLogConfig = errors.New("invalid log configuration")
	// ErrInvalidResolverConfig indicates a non-positive resolve timeout or a
	// host address that is not an IPv4 address.
	ErrInvalidResolverConfig = errors.New("invalid resolver configuration")
	// ErrInvalidConfig is used for fields outside the groups above.
	ErrInvalidConfig = errors.New("invalid configuration")
)
