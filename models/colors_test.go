package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOverridesResolve(t *testing.T) {
	theme := Theme{
		Primary:    "#4f46e5",
		Secondary:  "#06b6d4",
		Background: "#ffffff",
		Text:       "#111827",
	}

	t.Run("empty overrides fall back to theme", func(t *testing.T) {
		var overrides ColorOverrides

		assert.Equal(t, "#4f46e5", overrides.Resolve(RolePrimary, theme))
		assert.Equal(t, "#06b6d4", overrides.Resolve(RoleSecondary, theme))
		assert.Equal(t, "#ffffff", overrides.Resolve(RoleBackground, theme))
		assert.Equal(t, "#111827", overrides.Resolve(RoleText, theme))
	})

	t.Run("section override wins", func(t *testing.T) {
		overrides := ColorOverrides{Primary: "#f97316"}

		assert.Equal(t, "#f97316", overrides.Resolve(RolePrimary, theme))
		assert.Equal(t, "#06b6d4", overrides.Resolve(RoleSecondary, theme))
	})

	t.Run("body and heading chain through section text", func(t *testing.T) {
		overrides := ColorOverrides{Text: "#0f172a"}

		assert.Equal(t, "#0f172a", overrides.Resolve(RoleBody, theme))
		assert.Equal(t, "#0f172a", overrides.Resolve(RoleHeading, theme))

		overrides.Heading = "#334155"
		assert.Equal(t, "#334155", overrides.Resolve(RoleHeading, theme))
		assert.Equal(t, "#0f172a", overrides.Resolve(RoleBody, theme))
	})

	t.Run("body falls back to theme text when nothing is set", func(t *testing.T) {
		var overrides ColorOverrides

		assert.Equal(t, "#111827", overrides.Resolve(RoleBody, theme))
	})
}
