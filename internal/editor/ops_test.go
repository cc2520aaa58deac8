// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"testing"

	"github.com/siteforge-io/siteforge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const servicesDoc = `{
	"sections": {
		"services": {
			"items": [
				{"title": {"en": "Design"}, "icon": "pen"},
				{"title": {"en": "Build"}, "icon": "wrench"},
				{"title": {"en": "Ship"}, "icon": "truck"}
			]
		}
	}
}`

const servicesPath = "sections.services.items"

func itemTitles(s *Session) []string {
	var out []string
	for _, item := range s.Config().Sections.Services.Items {
		out = append(out, item.Title.Resolve(models.LocaleEN))
	}
	return out
}

func TestSessionListOps(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		require.NoError(t, session.AppendItem(servicesPath, map[string]any{"icon": "star"}))
		require.NoError(t, session.UpdateItemText(servicesPath, 3, "title", "Support"))

		assert.Equal(t, []string{"Design", "Build", "Ship", "Support"}, itemTitles(session))
	})

	t.Run("update field and url", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		require.NoError(t, session.UpdateItemField(servicesPath, 0, "icon", "brush"))
		require.NoError(t, session.UpdateItemURL(servicesPath, 0, "image", "borked url"))

		cfg := session.Config()
		assert.Equal(t, "brush", cfg.Sections.Services.Items[0].Icon)
		assert.Equal(t, "borked url", cfg.Sections.Services.Items[0].Image)
		assert.NotEmpty(t, session.WarningAt(servicesPath+".0.image"))
	})

	t.Run("move swaps neighbours", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		require.NoError(t, session.MoveItem(servicesPath, 1, MoveUp))
		assert.Equal(t, []string{"Build", "Design", "Ship"}, itemTitles(session))

		require.NoError(t, session.MoveItem(servicesPath, 1, MoveDown))
		assert.Equal(t, []string{"Build", "Ship", "Design"}, itemTitles(session))
	})

	t.Run("boundary moves are no-ops", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		require.NoError(t, session.MoveItem(servicesPath, 0, MoveUp))
		require.NoError(t, session.MoveItem(servicesPath, 2, MoveDown))
		require.NoError(t, session.MoveItem(servicesPath, 9, MoveDown))

		assert.Equal(t, []string{"Design", "Build", "Ship"}, itemTitles(session))
	})

	t.Run("removal requires confirmation", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		removed, err := session.RemoveItem(servicesPath, 1, false)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, itemTitles(session), 3)

		removed, err = session.RemoveItem(servicesPath, 1, true)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []string{"Design", "Ship"}, itemTitles(session))
	})

	t.Run("confirmed removal of bad index is a no-op", func(t *testing.T) {
		session := newTestSession(t, servicesDoc, models.LocaleEN)

		removed, err := session.RemoveItem(servicesPath, 7, true)
		require.NoError(t, err)
		assert.False(t, removed)

		removed, err = session.RemoveItem(servicesPath, -1, true)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestSessionSectionsOrder(t *testing.T) {
	session := newTestSession(t, `{}`, models.LocaleEN)

	require.NoError(t, session.SetSectionsOrder([]string{"contact", "hero"}))
	assert.JSONEq(t, `["contact","hero"]`, session.Document().Get("site.sectionsOrder").Raw)

	// Empty list removes the override entirely.
	require.NoError(t, session.SetSectionsOrder(nil))
	assert.False(t, session.Document().Get("site.sectionsOrder").Exists())
}

func TestSessionSectionToggles(t *testing.T) {
	session := newTestSession(t, `{"sections":{"team":{}}}`, models.LocaleEN)

	require.NoError(t, session.SetSectionEnabled(models.SectionTeam, false))
	assert.True(t, session.Config().Sections.Team.Disabled())

	require.NoError(t, session.SetSectionEnabled(models.SectionTeam, true))
	assert.False(t, session.Config().Sections.Team.Disabled())
}

func TestSessionSectionColors(t *testing.T) {
	session := newTestSession(t, `{}`, models.LocaleEN)

	require.NoError(t, session.SetSectionColor(models.SectionHero, models.RoleHeading, "#fafafa"))
	assert.Equal(t, "#fafafa", session.Document().GetString("sections.hero.colors.heading"))
	assert.Empty(t, session.WarningAt("sections.hero.colors.heading"))

	require.NoError(t, session.SetSectionColor(models.SectionHero, models.RoleBody, "cornflower"))
	assert.NotEmpty(t, session.WarningAt("sections.hero.colors.body"))
}

func TestSessionBlockOps(t *testing.T) {
	t.Run("append starts enabled", func(t *testing.T) {
		session := newTestSession(t, `{}`, models.LocaleEN)

		require.NoError(t, session.AppendBlock(models.BlockText, "afterHero"))

		cfg := session.Config()
		require.Len(t, cfg.CustomBlocks, 1)
		assert.True(t, cfg.CustomBlocks[0].IsEnabled())
		assert.Equal(t, models.BlockText, cfg.CustomBlocks[0].Type)
		assert.Equal(t, "afterHero", cfg.CustomBlocks[0].Position)
	})

	t.Run("props and toggles", func(t *testing.T) {
		session := newTestSession(t, `{}`, models.LocaleEN)
		require.NoError(t, session.AppendBlock(models.BlockButton, "beforeContact"))

		require.NoError(t, session.SetBlockText(0, "text", "Get a quote"))
		require.NoError(t, session.SetBlockURL(0, "link", "/contact"))
		require.NoError(t, session.SetBlockProp(0, "variant", "secondary"))
		require.NoError(t, session.SetBlockEnabled(0, false))
		require.NoError(t, session.SetBlockPosition(0, "afterCta"))

		cfg := session.Config()
		block := cfg.CustomBlocks[0]
		assert.Equal(t, "Get a quote", block.Props.Text.Resolve(models.LocaleEN))
		assert.Equal(t, "/contact", block.Props.Link)
		assert.Equal(t, "secondary", block.Props.Variant)
		assert.False(t, block.IsEnabled())
		assert.Equal(t, "afterCta", block.Position)
	})

	t.Run("move and remove", func(t *testing.T) {
		session := newTestSession(t, `{}`, models.LocaleEN)
		require.NoError(t, session.AppendBlock(models.BlockText, "afterHero"))
		require.NoError(t, session.AppendBlock(models.BlockSpacer, "afterHero"))

		require.NoError(t, session.MoveBlock(1, MoveUp))
		assert.Equal(t, models.BlockSpacer, session.Config().CustomBlocks[0].Type)

		removed, err := session.RemoveBlock(0, true)
		require.NoError(t, err)
		assert.True(t, removed)
		require.Len(t, session.Config().CustomBlocks, 1)
		assert.Equal(t, models.BlockText, session.Config().CustomBlocks[0].Type)
	})
}
