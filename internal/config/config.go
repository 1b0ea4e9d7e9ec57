// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source.
const (
	DefaultFormat         = FormatJSON
	DefaultLogLevel       = "info"
	DefaultResolveTimeout = 10 * time.Second
)

// Output formats of the generated configuration.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// dockerEnvEnabled is the only value of MONGODB_DOCKER_ENV that selects the
// Docker-network database host.
const dockerEnvEnabled = "true"

// StructuredConfig is the top-level container of the bootstrap settings. It
// is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Database holds the switch between the Docker-network and the loopback
	// MongoDB host.
	Database Database

	// Resolver holds the settings of the host address self-resolution.
	Resolver Resolver `envPrefix:"OHP_RESOLVER_"`

	// Log holds the level and optional file of the process logger.
	Log Log `envPrefix:"OHP_LOG_"`

	// Output holds the serialization settings of the printed configuration.
	Output Output `envPrefix:"OHP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the OHP_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"OHP_CONFIG"`
}

// Database selects the MongoDB host written into the API configuration.
type Database struct {
	// DockerEnv mirrors MONGODB_DOCKER_ENV, which docker-compose sets to
	// "true" inside the honeypot network.
	// Env: MONGODB_DOCKER_ENV
	DockerEnv string `env:"MONGODB_DOCKER_ENV"`
}

// UseDocker reports whether the Docker-network host must be used. Only the
// literal "true" enables it; any other value, including absence, does not.
func (d Database) UseDocker() bool {
	return d.DockerEnv == dockerEnvEnabled
}

// Resolver holds the settings of the host address self-resolution.
type Resolver struct {
	// Timeout bounds the hostname lookup (e.g. "5s").
	// Env: OHP_RESOLVER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gt=0"`

	// HostAddress skips resolution and uses the given IPv4 address as the
	// real machine address.
	// Env: OHP_RESOLVER_HOST_ADDRESS
	HostAddress string `env:"HOST_ADDRESS" validate:"omitempty,ipv4"`
}

// Log holds the process logger settings.
type Log struct {
	// Level is one of "debug", "info", "warn", "error".
	// Env: OHP_LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=debug info warn error"`

	// File is an optional path of a rotated log file. Entries are still
	// written to stderr.
	// Env: OHP_LOG_FILE
	File string `env:"FILE"`
}

// Output holds the serialization settings of the printed configuration.
type Output struct {
	// Format is "json" or "yaml".
	// Env: OHP_FORMAT
	Format string `env:"FORMAT" validate:"oneof=json yaml"`
}

// defaultConfig returns the built-in defaults layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Resolver: Resolver{Timeout: DefaultResolveTimeout},
		Log:      Log{Level: DefaultLogLevel},
		Output:   Output{Format: DefaultFormat},
	}
}

// GetStructuredConfig loads, merges, and validates the bootstrap settings
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (skipped when flags is nil)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
