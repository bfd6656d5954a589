// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the DynamoDB item store backing the
	// client and password repositories.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the key material for the credential encryptor.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// ReadTimeout bounds reading of an inbound request, header included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing of a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds the graceful-shutdown drain on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Dynamo holds the DynamoDB connection and table settings.
	Dynamo Dynamo `envPrefix:"DYNAMO_"`
}

// Dynamo holds connection and schema settings for the DynamoDB item store.
type Dynamo struct {
	// Region is the AWS region of the tables (e.g. "eu-central-1").
	// Env: STORAGE_DYNAMO_REGION
	Region string `env:"REGION"`

	// BaseEndpoint optionally overrides the service endpoint, which lets
	// the server talk to a local DynamoDB (e.g. "http://127.0.0.1:8000").
	// Env: STORAGE_DYNAMO_BASE_ENDPOINT
	BaseEndpoint string `env:"BASE_ENDPOINT"`

	// AccessKeyID and SecretAccessKey are the static credentials used when
	// both are set; otherwise the SDK's default credential chain applies.
	// Env: STORAGE_DYNAMO_ACCESS_KEY_ID / STORAGE_DYNAMO_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// ClientsTable and PasswordsTable name the two item tables.
	// Env: STORAGE_DYNAMO_CLIENTS_TABLE / STORAGE_DYNAMO_PASSWORDS_TABLE
	ClientsTable   string `env:"CLIENTS_TABLE"`
	PasswordsTable string `env:"PASSWORDS_TABLE"`

	// LoginIndex is the secondary index on the clients table keyed by login.
	// Env: STORAGE_DYNAMO_LOGIN_INDEX
	LoginIndex string `env:"LOGIN_INDEX"`

	// ClientIDIndex is the secondary index on the passwords table keyed by
	// the owning client's identifier.
	// Env: STORAGE_DYNAMO_CLIENT_ID_INDEX
	ClientIDIndex string `env:"CLIENT_ID_INDEX"`
}

// Crypto holds the key material from which the credential encryptor derives
// its AES key.
type Crypto struct {
	// MasterKey is the secret passphrase the encryption key is derived
	// from. Must be kept confidential.
	// Env: CRYPTO_MASTER_KEY
	MasterKey string `env:"MASTER_KEY"`

	// KeySalt is the argon2id salt used during key derivation. Not secret,
	// but must stay stable for the lifetime of the stored data.
	// Env: CRYPTO_KEY_SALT
	KeySalt string `env:"KEY_SALT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
