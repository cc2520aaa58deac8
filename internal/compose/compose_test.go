// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"testing"

	"github.com/siteforge-io/siteforge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

// fullConfig returns a config with every composable section present and
// enabled, so ordering tests start from the complete canonical flow.
func fullConfig() *models.SiteConfig {
	return &models.SiteConfig{
		Sections: models.Sections{
			Hero:         &models.HeroSection{},
			Metrics:      &models.MetricsSection{},
			Highlights:   &models.HighlightsSection{},
			About:        &models.AboutSection{},
			Industries:   &models.IndustriesSection{},
			Services:     &models.ServicesSection{},
			Portfolio:    &models.PortfolioSection{},
			Testimonials: &models.TestimonialsSection{},
			Team:         &models.TeamSection{},
			CTA:          &models.CTASection{},
			Contact:      &models.ContactSection{},
		},
	}
}

func TestResolveSectionOrder(t *testing.T) {
	t.Run("default canonical order", func(t *testing.T) {
		order := ResolveSectionOrder(fullConfig())

		assert.Equal(t, models.ComposableSectionKinds(), order)
	})

	t.Run("override order wins", func(t *testing.T) {
		cfg := fullConfig()
		cfg.Site.SectionsOrder = []string{"contact", "hero", "about"}

		order := ResolveSectionOrder(cfg)

		assert.Equal(t, []models.SectionKind{
			models.SectionContact,
			models.SectionHero,
			models.SectionAbout,
		}, order)
	})

	t.Run("unknown keys dropped, omitted kinds not re-inserted", func(t *testing.T) {
		cfg := fullConfig()
		cfg.Site.SectionsOrder = []string{"hero", "carousel", "navbar", "team"}

		order := ResolveSectionOrder(cfg)

		assert.Equal(t, []models.SectionKind{models.SectionHero, models.SectionTeam}, order)
	})

	t.Run("absent section hidden", func(t *testing.T) {
		cfg := fullConfig()
		cfg.Sections.Metrics = nil

		order := ResolveSectionOrder(cfg)

		assert.NotContains(t, order, models.SectionMetrics)
		assert.Contains(t, order, models.SectionHero)
	})

	t.Run("explicitly disabled section hidden", func(t *testing.T) {
		cfg := fullConfig()
		cfg.Sections.Team.Enabled = boolPtr(false)

		order := ResolveSectionOrder(cfg)

		assert.NotContains(t, order, models.SectionTeam)
	})

	t.Run("present section without flag shows", func(t *testing.T) {
		cfg := fullConfig()
		require.Nil(t, cfg.Sections.Hero.Enabled)

		assert.Contains(t, ResolveSectionOrder(cfg), models.SectionHero)
	})

	t.Run("nil config", func(t *testing.T) {
		assert.Nil(t, ResolveSectionOrder(nil))
	})

	t.Run("deterministic", func(t *testing.T) {
		cfg := fullConfig()
		cfg.Site.SectionsOrder = []string{"team", "hero", "cta"}

		first := ResolveSectionOrder(cfg)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ResolveSectionOrder(cfg))
		}
	})
}

func TestBlocksAt(t *testing.T) {
	cfg := &models.SiteConfig{
		CustomBlocks: []models.Block{
			{Type: models.BlockText, Position: "afterHero"},
			{Type: models.BlockButton, Position: "beforeContact"},
			{Type: models.BlockSpacer, Position: "afterHero", Enabled: boolPtr(false)},
		},
	}

	t.Run("filters by position in document order", func(t *testing.T) {
		blocks := BlocksAt(cfg, "afterHero")

		require.Len(t, blocks, 2)
		assert.Equal(t, models.BlockText, blocks[0].Type)
		assert.Equal(t, models.BlockSpacer, blocks[1].Type)
	})

	t.Run("disabled blocks kept for the renderer to drop", func(t *testing.T) {
		blocks := BlocksAt(cfg, "afterHero")

		require.Len(t, blocks, 2)
		assert.False(t, blocks[1].IsEnabled())
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, BlocksAt(cfg, "beforeHero"))
	})

	t.Run("nil config", func(t *testing.T) {
		assert.Nil(t, BlocksAt(nil, "afterHero"))
	})
}

func TestInsertionPointNames(t *testing.T) {
	assert.Equal(t, "beforeHero", BeforePosition(models.SectionHero))
	assert.Equal(t, "afterHero", AfterPosition(models.SectionHero))
	assert.Equal(t, "beforeCta", BeforePosition(models.SectionCTA))
	assert.Equal(t, "afterTestimonials", AfterPosition(models.SectionTestimonials))
}

func TestInsertionPoints(t *testing.T) {
	points := InsertionPoints()

	assert.Len(t, points, 2*len(models.ComposableSectionKinds()))
	assert.Contains(t, points, "beforeHero")
	assert.Contains(t, points, "afterContact")
	assert.NotContains(t, points, "beforeNavbar")
}
