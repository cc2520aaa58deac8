package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockIsEnabled(t *testing.T) {
	enabled := true
	disabled := false

	assert.True(t, Block{}.IsEnabled())
	assert.True(t, Block{Enabled: &enabled}.IsEnabled())
	assert.False(t, Block{Enabled: &disabled}.IsEnabled())
}

func TestDimensionJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var d Dimension
		require.NoError(t, json.Unmarshal([]byte(`320`), &d))

		n, ok := d.Number()
		require.True(t, ok)
		assert.Equal(t, 320.0, n)
		assert.False(t, d.IsZero())
	})

	t.Run("string passes through", func(t *testing.T) {
		var d Dimension
		require.NoError(t, json.Unmarshal([]byte(`"50%"`), &d))

		_, ok := d.Number()
		assert.False(t, ok)
		assert.Equal(t, "50%", d.Text())
	})

	t.Run("empty string is zero", func(t *testing.T) {
		var d Dimension
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))

		assert.True(t, d.IsZero())
	})

	t.Run("unexpected shape is zero", func(t *testing.T) {
		var d Dimension
		require.NoError(t, json.Unmarshal([]byte(`{"px":10}`), &d))

		assert.True(t, d.IsZero())
	})

	t.Run("marshal keeps shape", func(t *testing.T) {
		num, err := json.Marshal(NumberDimension(24))
		require.NoError(t, err)
		assert.Equal(t, "24", string(num))

		text, err := json.Marshal(StringDimension("10rem"))
		require.NoError(t, err)
		assert.Equal(t, `"10rem"`, string(text))

		zero, err := json.Marshal(Dimension{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(zero))
	})
}

func TestBlockPropsDecode(t *testing.T) {
	raw := `{
		"type": "image",
		"position": "afterHero",
		"props": {
			"src": "/img/team.jpg",
			"alt": {"en": "The team", "ar": "الفريق"},
			"width": 640,
			"height": "20rem",
			"objectFit": "contain",
			"overlayText": "Est. 2019",
			"overlayPosition": "center"
		}
	}`

	var b Block
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, BlockImage, b.Type)
	assert.Equal(t, "afterHero", b.Position)
	assert.Equal(t, "/img/team.jpg", b.Props.Src)
	assert.Equal(t, "الفريق", b.Props.Alt.Resolve(LocaleAR))

	width, ok := b.Props.Width.Number()
	require.True(t, ok)
	assert.Equal(t, 640.0, width)
	assert.Equal(t, "20rem", b.Props.Height.Text())
	assert.Equal(t, OverlayCenter, b.Props.OverlayPosition)
}
