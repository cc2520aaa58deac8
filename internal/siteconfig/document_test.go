// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"testing"

	"github.com/siteforge-io/siteforge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		doc, err := NewDocument([]byte(`{"site":{"title":"Acme"}}`))

		require.NoError(t, err)
		assert.Equal(t, "Acme", doc.GetString("site.title"))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := NewDocument([]byte(`{"broken`))

		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("non-object roots rejected", func(t *testing.T) {
		for _, raw := range []string{`[]`, `"text"`, `42`, `null`} {
			_, err := NewDocument([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidJSON, raw)
		}
	})

	t.Run("does not alias input", func(t *testing.T) {
		raw := []byte(`{"a":1}`)
		doc, err := NewDocument(raw)
		require.NoError(t, err)

		raw[2] = 'x'
		assert.Equal(t, int64(1), doc.Get("a").Int())
	})
}

func TestDocumentSetAndDelete(t *testing.T) {
	doc := EmptyDocument()

	doc, err := doc.Set("theme.primary", "#4f46e5")
	require.NoError(t, err)
	assert.Equal(t, "#4f46e5", doc.GetString("theme.primary"))

	updated, err := doc.Set("theme.primary", "#111111")
	require.NoError(t, err)

	// The original document is untouched.
	assert.Equal(t, "#4f46e5", doc.GetString("theme.primary"))
	assert.Equal(t, "#111111", updated.GetString("theme.primary"))

	deleted, err := updated.Delete("theme.primary")
	require.NoError(t, err)
	assert.False(t, deleted.Get("theme.primary").Exists())

	// Deleting an absent path is a no-op.
	again, err := deleted.Delete("theme.primary")
	require.NoError(t, err)
	assert.JSONEq(t, string(deleted), string(again))
}

func TestDocumentMerge(t *testing.T) {
	base, err := NewDocument([]byte(`{"site":{"title":"Acme","lang":"en"},"order":["hero","contact"]}`))
	require.NoError(t, err)
	override, err := NewDocument([]byte(`{"site":{"lang":"ar"},"order":["contact"]}`))
	require.NoError(t, err)

	merged := base.Merge(override)

	assert.Equal(t, "Acme", merged.GetString("site.title"))
	assert.Equal(t, "ar", merged.GetString("site.lang"))
	assert.JSONEq(t, `["contact"]`, merged.Get("order").Raw)
}

func TestDocumentDecode(t *testing.T) {
	doc, err := NewDocument([]byte(`{
		"site": {"title": {"en": "Acme", "ar": "أكمي"}, "lang": "ar"},
		"theme": {"primary": "#4f46e5"},
		"unknownField": true
	}`))
	require.NoError(t, err)

	cfg, err := doc.Decode()
	require.NoError(t, err)

	assert.Equal(t, "أكمي", cfg.Site.Title.Resolve(models.LocaleAR))
	assert.Equal(t, models.LocaleAR, cfg.Site.Lang)
	assert.Equal(t, "#4f46e5", cfg.Theme.Primary)
}

func TestDocumentMapMalformed(t *testing.T) {
	assert.Empty(t, Document(`not json`).Map())
	assert.Empty(t, Document(nil).Map())
}
