// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/siteforge-io/siteforge/internal/logger"
)

// OverrideSlot is the locally-persisted override store: a single slot that
// either holds a full serialized configuration or is empty.
type OverrideSlot interface {
	// Read returns the slot content and whether the slot holds anything.
	Read() ([]byte, bool, error)
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// BaseSource locates the shipped default configuration: a local file
	// path, or an http(s) URL fetched with cache-bypassing semantics.
	BaseSource string

	// RemoteEndpoint is the optional config store URL. Empty means no
	// remote source is consulted.
	RemoteEndpoint string

	// Timeout bounds each fetch. Zero falls back to 15 seconds.
	Timeout time.Duration
}

// Loader resolves the effective configuration document for a session by
// layering sources in priority order: shipped base, then either the local
// override slot or the remote store. Every layer is independently fault
// tolerant; Load always produces a document and never returns an error.
type Loader struct {
	cfg    LoaderConfig
	slot   OverrideSlot
	client *resty.Client
	logger *logger.Logger
}

// NewLoader builds a Loader. slot may be nil when no local override store
// exists (the layer is then skipped).
func NewLoader(cfg LoaderConfig, slot OverrideSlot, log *logger.Logger) *Loader {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Loader{
		cfg:    cfg,
		slot:   slot,
		client: resty.New().SetTimeout(cfg.Timeout),
		logger: log,
	}
}

// Load resolves the effective document:
//
//  1. the base configuration is always fetched first, so fields added to
//     newer defaults exist even under older overrides; a failed fetch
//     degrades to an empty base;
//  2. a present, parseable local override is merged onto base and returned
//     immediately — the remote store is not consulted;
//  3. otherwise a configured remote endpoint is fetched cache-busted and,
//     on success, merged onto base;
//  4. otherwise base alone is returned.
func (l *Loader) Load(ctx context.Context) Document {
	base := l.loadBase(ctx)

	if override, ok := l.readLocalOverride(); ok {
		l.logger.Debug().Msg("using local override config")
		return base.Merge(override)
	}

	if l.cfg.RemoteEndpoint != "" {
		if remote, ok := l.fetchJSON(ctx, l.cfg.RemoteEndpoint); ok {
			l.logger.Debug().Str("endpoint", l.cfg.RemoteEndpoint).Msg("using remote config")
			return base.Merge(remote)
		}
	}

	return base
}

func (l *Loader) loadBase(ctx context.Context) Document {
	src := l.cfg.BaseSource
	if src == "" {
		return EmptyDocument()
	}

	if isHTTPSource(src) {
		if doc, ok := l.fetchJSON(ctx, src); ok {
			return doc
		}
		return EmptyDocument()
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", src).Msg("base config unreadable, starting from empty document")
		return EmptyDocument()
	}
	doc, err := NewDocument(raw)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", src).Msg("base config malformed, starting from empty document")
		return EmptyDocument()
	}
	return doc
}

func (l *Loader) readLocalOverride() (Document, bool) {
	if l.slot == nil {
		return nil, false
	}

	raw, present, err := l.slot.Read()
	if err != nil || !present {
		if err != nil {
			l.logger.Warn().Err(err).Msg("local override unreadable, falling through")
		}
		return nil, false
	}

	doc, err := NewDocument(raw)
	if err != nil {
		// A corrupt override is treated as absence, not as a failure.
		l.logger.Warn().Err(err).Msg("local override malformed, falling through")
		return nil, false
	}
	return doc, true
}

// fetchJSON GETs a JSON document with cache-bypassing semantics: a unique
// version query parameter plus a no-cache header.
func (l *Loader) fetchJSON(ctx context.Context, url string) (Document, bool) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("v", fmt.Sprintf("%d", time.Now().UnixNano())).
		SetHeader("Cache-Control", "no-cache").
		Get(url)
	if err != nil {
		l.logger.Warn().Err(err).Str("url", url).Msg("config fetch failed")
		return nil, false
	}
	if !resp.IsSuccess() {
		l.logger.Warn().Int("status", resp.StatusCode()).Str("url", url).Msg("config fetch returned non-ok status")
		return nil, false
	}

	doc, err := NewDocument(resp.Body())
	if err != nil {
		l.logger.Warn().Err(err).Str("url", url).Msg("config fetch returned invalid JSON")
		return nil, false
	}
	return doc, true
}

func isHTTPSource(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
