// Package site serves the rendered marketing page. The effective
// configuration is held behind an atomic pointer and swapped wholesale on
// refresh, so in-flight requests always see one consistent document.
package site

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/models"
)

// Holder owns the current configuration document. It implements
// [service.Refresher] so the refresh job can reload it in the background.
type Holder struct {
	loader  *siteconfig.Loader
	current atomic.Pointer[siteconfig.Document]
	logger  *logger.Logger
}

func NewHolder(loader *siteconfig.Loader, log *logger.Logger) *Holder {
	h := &Holder{loader: loader, logger: log}
	empty := siteconfig.EmptyDocument()
	h.current.Store(&empty)
	return h
}

// Refresh re-runs the loader and swaps in the result. The loader never
// fails outright, so the swap always happens; a degraded load simply
// yields the base document again.
func (h *Holder) Refresh(ctx context.Context) error {
	doc := h.loader.Load(ctx)
	h.current.Store(&doc)
	h.logger.Debug().Msg("configuration document refreshed")
	return nil
}

// Document returns the current effective document.
func (h *Holder) Document() siteconfig.Document {
	return *h.current.Load()
}

// Config decodes the current document into the typed model. A document
// that no longer decodes yields an empty config rather than an error.
func (h *Holder) Config() *models.SiteConfig {
	cfg, err := h.Document().Decode()
	if err != nil {
		h.logger.Warn().Err(err).Msg("stored document does not decode, serving empty config")
		return &models.SiteConfig{}
	}
	return cfg
}

// Locale picks the display locale: an explicit request override wins,
// then the configured override, then the document's own site.lang.
func (h *Holder) Locale(requested string, configured string) (models.Locale, error) {
	pick := requested
	if pick == "" {
		pick = configured
	}
	if pick == "" {
		return h.Config().Site.DefaultLocale(), nil
	}

	for _, l := range models.Locales() {
		if string(l) == pick {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", pick)
}
