// Package config loads the process configuration for the siteforge
// binaries. Values come from environment variables, command-line flags and
// an optional JSON file, merged in that priority order (an earlier source
// wins for fields it sets) and validated before use.
//
// This is process configuration only: addresses, file paths, secrets and
// intervals. The site configuration document itself is handled by the
// siteconfig package.
package config
