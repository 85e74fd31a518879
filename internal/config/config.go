// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pathforge application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters used by the server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for both persistence backends: the
	// server users database and the client local store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend base URL and timeout used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Onboarding holds wizard-related intervals: draft autosave period and
	// draft time-to-live.
	Onboarding Onboarding `envPrefix:"ONBOARDING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle settings for the server auth service.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// ClientDB holds the client local SQLite store settings.
	ClientDB ClientDB `envPrefix:"CLIENT_DB_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the SQLite file path or DSN used by the server
	// (e.g. "data/pathforge.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// ClientDB holds connection settings for the client local store.
type ClientDB struct {
	// DSN is the SQLite file path of the client local store
	// (e.g. "~/.pathforge/local.db").
	// Env: STORAGE_CLIENT_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
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

// Adapter holds configuration for the client HTTP adapter.
type Adapter struct {
	// BaseURL is the backend base URL the client talks to
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Onboarding holds wizard timing parameters.
type Onboarding struct {
	// AutosaveInterval is the period of the draft autosave ticker.
	// Zero means the default of 30 seconds.
	// Env: ONBOARDING_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`

	// DraftTTL is how long a saved draft stays resumable.
	// Zero means the default of 24 hours.
	// Env: ONBOARDING_DRAFT_TTL
	DraftTTL time.Duration `env:"DRAFT_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source keeps a field it already set):
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
