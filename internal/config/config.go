// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StoreConfig is the top-level configuration for the config store server.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StoreConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the key-value backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the write-protection settings of the store endpoint.
	Auth Auth `envPrefix:"AUTH_"`

	// CORS holds the browser cross-origin settings of the store endpoint.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// ClientConfig is the top-level configuration shared by the site renderer
// and the dashboard editor.
type ClientConfig struct {
	// Site holds the configuration-document source settings.
	Site Site `envPrefix:"SITE_"`

	// Remote holds the optional config store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Server holds the site renderer's listen settings. Unused by the
	// dashboard.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings for the site renderer.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for an HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8787").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the config store's key-value backend settings.
type Storage struct {
	// DSN selects and configures the backend: a "postgres://" URI opens a
	// Postgres-backed store, anything else is treated as an SQLite file
	// path (created on first use).
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Auth holds the store endpoint's write protection.
type Auth struct {
	// AdminToken is the bearer secret required on PUT. When empty the
	// store fails closed: every write is rejected with 403.
	// Env: AUTH_ADMIN_TOKEN
	AdminToken string `env:"ADMIN_TOKEN"`
}

// CORS holds the store endpoint's cross-origin settings.
type CORS struct {
	// AllowedOrigins is the origin allow-list. A single "*" entry allows
	// any origin; otherwise origins are matched exactly.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Site holds the configuration-document sources for the renderer and the
// dashboard.
type Site struct {
	// BaseSource locates the shipped default configuration: a local file
	// path or an http(s) URL.
	// Env: SITE_BASE_CONFIG
	BaseSource string `env:"BASE_CONFIG"`

	// OverridePath is the file backing the local override slot.
	// Env: SITE_OVERRIDE_PATH
	OverridePath string `env:"OVERRIDE_PATH"`

	// Lang overrides the display locale; empty defers to the document's
	// site.lang field.
	// Env: SITE_LANG
	Lang string `env:"LANG"`
}

// Remote holds the optional config store endpoint used for loading and
// saving the document remotely.
type Remote struct {
	// Endpoint is the config store URL (e.g. "https://cfg.example.com/config").
	// Empty disables the remote source entirely.
	// Env: REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Token is the bearer secret attached to remote saves. Optional.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds background job settings for the site renderer.
type Workers struct {
	// RefreshInterval re-runs the config loader on this period and swaps
	// the served document. Zero disables the refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStoreConfig loads, merges, and validates the store server
// configuration from all available sources in the following priority order
// (an earlier source wins for fields it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StoreConfig or an error if any source fails to
// load or the final config fails validation.
func GetStoreConfig() (*StoreConfig, error) {
	return newStoreConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig loads, merges, and validates the shared site/dashboard
// configuration using the same source priority as GetStoreConfig.
func GetClientConfig() (*ClientConfig, error) {
	return newClientConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
