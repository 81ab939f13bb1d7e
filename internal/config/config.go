// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// auth client and the reference auth server. It is populated by merging
// values from environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, version and
	// the client log file.
	App App `envPrefix:"APP_"`

	// Storage holds the server's relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the auth server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings for the auth server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the client's bus workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its logs, since the terminal UI
	// owns stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings of the auth server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver as well: a "postgres://" or "postgresql://"
	// URI opens PostgreSQL, anything else is treated as a SQLite path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's settings for reaching the auth server.
type Adapter struct {
	// Address is the auth server's "host:port".
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// Transport is "http" or "ws".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// RequestTimeout bounds a single auth or debug round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration of the client's bus workers.
type Workers struct {
	// QueueSize is the capacity of each worker's job queue and of the bus
	// inbox.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Supported adapter transports.
const (
	TransportHTTP      = "http"
	TransportWebSocket = "ws"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. .env file (loaded into the process environment when present)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
