// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost, version and
	// journal defaults.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Notifier holds the change feed settings.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level settings.
type App struct {
	// PasswordHashCost is the bcrypt cost used for new password hashes.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the value of the "iss" claim in issued tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// DefaultTimezone is the IANA zone used for day and month boundaries
	// when a request does not name one.
	DefaultTimezone string `env:"DEFAULT_TIMEZONE"`

	// LogLevel is the minimum zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds the HTTP server settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of one request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is the connection string (postgres URL or sqlite file path).
	DSN string `env:"DATABASE_URI"`

	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`
}

// Notifier holds the change feed settings.
type Notifier struct {
	// RedisURL enables the redis pub/sub relay when non-empty.
	RedisURL string `env:"REDIS_URL"`

	// ChannelPrefix namespaces the redis channels.
	ChannelPrefix string `env:"CHANNEL_PREFIX"`

	// BufferSize is the per-subscriber event buffer.
	BufferSize int `env:"BUFFER_SIZE"`
}

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// GetStructuredConfig loads, merges and validates the configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withArgs(os.Args[1:]).
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetStorageConfig reads only the storage settings from .env and the
// environment, for tools that run without server or token configuration.
func GetStorageConfig() (Storage, error) {
	b := newConfigBuilder().withDotEnv(".env").withEnv()
	if b.err != nil {
		return Storage{}, fmt.Errorf("error occured during building config: %w", b.err)
	}

	storage := Storage{DB: DB{Driver: DriverPostgres}}
	for _, cfg := range b.configs {
		if err := mergo.Merge(&storage, cfg.Storage, mergo.WithOverride); err != nil {
			return Storage{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return storage, nil
}
