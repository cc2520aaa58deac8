// SPDX-License-Identifier: Apache-2.0

// Package gateway persists the configuration document to its stores: the
// local override slot, the remote config endpoint, and JSON files for
// export/import. Each operation is independent; callers compose them.
package gateway

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
)

// RemoteConfig configures the remote half of the gateway.
type RemoteConfig struct {
	// Endpoint is the config store URL. Empty means remote saves fail with
	// ErrRemoteNotConfigured.
	Endpoint string

	// Token, when set, is sent as a bearer Authorization header on writes.
	Token string

	// Timeout bounds the remote request. Zero falls back to 15 seconds.
	Timeout time.Duration
}

// OverrideWriter is the writable local override slot.
type OverrideWriter interface {
	Write(data []byte) error
}

// Gateway saves configuration documents. None of its methods mutate the
// document they are given.
type Gateway struct {
	slot   OverrideWriter
	remote RemoteConfig
	client *resty.Client
	logger *logger.Logger
}

// New builds a Gateway. slot may be nil if the caller never saves locally.
func New(slot OverrideWriter, remote RemoteConfig, log *logger.Logger) *Gateway {
	if remote.Timeout <= 0 {
		remote.Timeout = 15 * time.Second
	}

	return &Gateway{
		slot:   slot,
		remote: remote,
		client: resty.New().SetTimeout(remote.Timeout),
		logger: log,
	}
}

// RemoteConfigured reports whether a remote endpoint is set.
func (g *Gateway) RemoteConfigured() bool {
	return g.remote.Endpoint != ""
}

// SaveLocal writes the document to the local override slot, replacing any
// prior value.
func (g *Gateway) SaveLocal(doc siteconfig.Document) error {
	if g.slot == nil {
		return fmt.Errorf("save local: no override slot configured")
	}
	if err := g.slot.Write(doc.Clone()); err != nil {
		return fmt.Errorf("save local: %w", err)
	}
	g.logger.Info().Msg("config saved to local override slot")
	return nil
}

// SaveRemote PUTs the document to the config store endpoint. The bearer
// token is attached only when configured. A transport error or a non-2xx
// response yields a *RemoteSaveError; a missing endpoint yields
// ErrRemoteNotConfigured.
func (g *Gateway) SaveRemote(ctx context.Context, doc siteconfig.Document) error {
	if !g.RemoteConfigured() {
		return ErrRemoteNotConfigured
	}

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(doc))
	if g.remote.Token != "" {
		req.SetAuthToken(g.remote.Token)
	}

	resp, err := req.Put(g.remote.Endpoint)
	if err != nil {
		return &RemoteSaveError{Err: err}
	}
	if !resp.IsSuccess() {
		return &RemoteSaveError{Status: resp.StatusCode()}
	}

	g.logger.Info().Str("endpoint", g.remote.Endpoint).Msg("config saved to remote store")
	return nil
}

// ExportToFile writes the document pretty-printed to filename.
func (g *Gateway) ExportToFile(doc siteconfig.Document, filename string) error {
	if err := os.WriteFile(filename, append(doc.Pretty(), '\n'), 0o644); err != nil {
		return fmt.Errorf("export config: %w", err)
	}
	return nil
}

// ImportFromFile reads filename and parses it as a configuration document.
// The caller is responsible for confirming before replacing a live config.
func (g *Gateway) ImportFromFile(filename string) (siteconfig.Document, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("import config: %w", err)
	}

	doc, err := siteconfig.NewDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("import config %q: %w", filename, ErrInvalidJSON)
	}
	return doc, nil
}
