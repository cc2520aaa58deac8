// SPDX-License-Identifier: Apache-2.0

// Package render turns a resolved configuration into the site's HTML page.
// Section markup dispatches over the closed SectionKind set, so every kind
// the composer can emit has a renderer by construction.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/siteforge-io/siteforge/internal/compose"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/models"
)

// Renderer renders full pages for a locale. It is stateless apart from the
// parsed templates and safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	logger *logger.Logger
}

// New parses the page templates and returns a ready Renderer.
func New(log *logger.Logger) *Renderer {
	return &Renderer{
		tmpl:   pageTemplates(),
		logger: log,
	}
}

// Page renders the whole site for the given locale: shell (navbar, footer),
// the composed section flow, and the custom blocks at each insertion point.
// Output is deterministic for identical input.
func (r *Renderer) Page(cfg *models.SiteConfig, locale models.Locale) ([]byte, error) {
	if cfg == nil {
		cfg = &models.SiteConfig{}
	}
	if locale == "" {
		locale = cfg.Site.DefaultLocale()
	}

	var flow []template.HTML
	for _, kind := range compose.ResolveSectionOrder(cfg) {
		flow = append(flow, r.blocksAt(cfg, compose.BeforePosition(kind), locale))

		section, err := r.section(cfg, kind, locale)
		if err != nil {
			return nil, err
		}
		flow = append(flow, section)

		flow = append(flow, r.blocksAt(cfg, compose.AfterPosition(kind), locale))
	}

	view := pageView{
		Lang:       string(locale),
		Dir:        locale.Direction(),
		Title:      cfg.Site.Title.Resolve(locale),
		Theme:      themeStyle(cfg.Theme),
		Navbar:     navbarView(cfg, locale),
		Flow:       flow,
		Footer:     footerView(cfg, locale),
		ThemeColor: cfg.Theme.Primary,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", view); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// section renders one section. The switch is exhaustive over the
// composable kinds; the composer guarantees the section is present and not
// disabled, so payload pointers are non-nil here.
func (r *Renderer) section(cfg *models.SiteConfig, kind models.SectionKind, locale models.Locale) (template.HTML, error) {
	theme := cfg.Theme

	switch kind {
	case models.SectionHero:
		return r.exec("hero", heroView(cfg.Sections.Hero, theme, locale))
	case models.SectionMetrics:
		return r.exec("metrics", metricsView(cfg.Sections.Metrics, theme, locale))
	case models.SectionHighlights:
		return r.exec("highlights", highlightsView(cfg.Sections.Highlights, theme, locale))
	case models.SectionAbout:
		return r.exec("about", aboutView(cfg.Sections.About, theme, locale))
	case models.SectionIndustries:
		return r.exec("industries", industriesView(cfg.Sections.Industries, theme, locale))
	case models.SectionServices:
		return r.exec("services", servicesView(cfg.Sections.Services, theme, locale))
	case models.SectionPortfolio:
		return r.exec("portfolio", portfolioView(cfg.Sections.Portfolio, theme, locale))
	case models.SectionTestimonials:
		return r.exec("testimonials", testimonialsView(cfg.Sections.Testimonials, theme, locale))
	case models.SectionTeam:
		return r.exec("team", teamView(cfg.Sections.Team, theme, locale))
	case models.SectionCTA:
		return r.exec("cta", ctaView(cfg.Sections.CTA, theme, locale))
	case models.SectionContact:
		return r.exec("contact", contactView(cfg.Sections.Contact, theme, locale))
	default:
		return "", fmt.Errorf("no renderer for section kind %q", kind)
	}
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render section %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
