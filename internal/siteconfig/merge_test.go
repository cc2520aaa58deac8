// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	t.Run("override wins on shared scalar keys", func(t *testing.T) {
		base := map[string]any{"site": map[string]any{"title": "Acme", "lang": "en"}}
		override := map[string]any{"site": map[string]any{"title": "Acme Rebrand"}}

		merged := DeepMerge(base, override)

		site := merged["site"].(map[string]any)
		assert.Equal(t, "Acme Rebrand", site["title"])
		assert.Equal(t, "en", site["lang"])
	})

	t.Run("keys only in base survive", func(t *testing.T) {
		base := map[string]any{"theme": map[string]any{"primary": "#111"}}
		merged := DeepMerge(base, map[string]any{})

		assert.Equal(t, base, merged)
	})

	t.Run("keys only in override are added", func(t *testing.T) {
		merged := DeepMerge(map[string]any{}, map[string]any{"extra": true})

		assert.Equal(t, true, merged["extra"])
	})

	t.Run("arrays replace wholesale", func(t *testing.T) {
		base := map[string]any{"order": []any{"hero", "about", "contact"}}
		override := map[string]any{"order": []any{"about"}}

		merged := DeepMerge(base, override)

		assert.Equal(t, []any{"about"}, merged["order"])
	})

	t.Run("object kept when override has non-object at same key", func(t *testing.T) {
		base := map[string]any{"sections": map[string]any{"hero": map[string]any{}}}
		override := map[string]any{"sections": "broken"}

		merged := DeepMerge(base, override)

		assert.Equal(t, base["sections"], merged["sections"])
	})

	t.Run("non-object base replaced by override", func(t *testing.T) {
		base := map[string]any{"title": "plain"}
		override := map[string]any{"title": map[string]any{"en": "Hello"}}

		merged := DeepMerge(base, override)

		assert.Equal(t, override["title"], merged["title"])
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		base := map[string]any{"nested": map[string]any{"a": "base", "keep": "yes"}}
		override := map[string]any{"nested": map[string]any{"a": "override"}}

		merged := DeepMerge(base, override)
		merged["nested"].(map[string]any)["a"] = "mutated after merge"

		assert.Equal(t, "base", base["nested"].(map[string]any)["a"])
		assert.Equal(t, "override", override["nested"].(map[string]any)["a"])
	})

	t.Run("merging a document onto itself is idempotent", func(t *testing.T) {
		doc := map[string]any{
			"site":  map[string]any{"title": "Acme"},
			"order": []any{"hero"},
		}

		assert.Equal(t, doc, DeepMerge(doc, doc))
	})
}
