// Package config loads and merges the portal configuration from environment
// variables, command-line flags, and an optional JSON file. Later sources
// never overwrite non-zero values from earlier ones; the merged result is
// validated and filled with defaults before use.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds session token parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the persistence settings, i.e. the SQLite file path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds session token lifecycle settings.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session remains valid after login
	// (e.g. "12h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration of the persistence layer.
type Storage struct {
	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the file-backed SQLite database.
type DB struct {
	// Path is the path of the SQLite database file. The file is created on
	// first use if it does not exist.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval controls how often the catalog probe worker checks
	// dashboard embed URLs for reachability. Zero disables the worker.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Defaults applied by validate when the corresponding values are absent
// from every configuration source.
const (
	DefaultHTTPAddress   = "localhost:8080"
	DefaultDBPath        = "portal.db"
	DefaultTokenIssuer   = "dashportal"
	DefaultTokenDuration = 12 * time.Hour
)

// GetStructuredConfig loads, merges, and validates the portal configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
