// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

const (
	defaultStoreAddress   = "0.0.0.0:8787"
	defaultSiteAddress    = "0.0.0.0:8080"
	defaultBaseSource     = "config.json"
	defaultOverridePath   = "siteconfig.override.json"
	defaultRequestTimeout = 30 * time.Second
)

func (cfg *StoreConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultStoreAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

// validate checks that the final merged [StoreConfig] satisfies the store
// server's invariants. An empty AdminToken is allowed: the handler then
// fails closed and rejects every write.
func (cfg *StoreConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Site.BaseSource == "" {
		cfg.Site.BaseSource = defaultBaseSource
	}
	if cfg.Site.OverridePath == "" {
		cfg.Site.OverridePath = defaultOverridePath
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultSiteAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.Endpoint != "" &&
		!strings.HasPrefix(cfg.Remote.Endpoint, "http://") &&
		!strings.HasPrefix(cfg.Remote.Endpoint, "https://") {
		return ErrInvalidRemoteConfigs
	}

	return nil
}
