package models

import "encoding/json"

// BlockType is the kind of a custom content block. Unknown types are kept
// in the document but render nothing.
type BlockType string

const (
	BlockText   BlockType = "text"
	BlockButton BlockType = "button"
	BlockImage  BlockType = "image"
	BlockSpacer BlockType = "spacer"
)

// OverlayPosition places an image block's caption overlay.
type OverlayPosition string

const (
	OverlayTopLeft     OverlayPosition = "top-left"
	OverlayTopRight    OverlayPosition = "top-right"
	OverlayBottomLeft  OverlayPosition = "bottom-left"
	OverlayBottomRight OverlayPosition = "bottom-right"
	OverlayCenter      OverlayPosition = "center"
)

// Block is a user-defined content unit rendered at a named insertion point.
type Block struct {
	// Enabled defaults to true when absent. A disabled block is still
	// returned by position filtering; the renderer is what drops it.
	Enabled *bool `json:"enabled,omitempty"`

	Type BlockType `json:"type"`

	// Position names the insertion point, e.g. "afterHero".
	Position string `json:"position"`

	Props BlockProps `json:"props,omitempty"`
}

// IsEnabled reports whether the block should render. Only an explicit
// enabled=false suppresses it.
func (b Block) IsEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// BlockProps is the union of the per-type block properties. Fields not used
// by the block's type are simply ignored at render time.
type BlockProps struct {
	// Shared.
	Align string        `json:"align,omitempty"`
	Text  LocalizedText `json:"text,omitempty"`

	// Button.
	Link    string `json:"link,omitempty"`
	Variant string `json:"variant,omitempty"`

	// Image. Width and Height accept a number (pixels), a numeric string
	// (pixels) or any other string passed through verbatim.
	Src             string          `json:"src,omitempty"`
	Alt             LocalizedText   `json:"alt,omitempty"`
	Width           Dimension       `json:"width,omitempty"`
	Height          Dimension       `json:"height,omitempty"`
	ObjectFit       string          `json:"objectFit,omitempty"`
	OverlayText     LocalizedText   `json:"overlayText,omitempty"`
	OverlayBg       string          `json:"overlayBg,omitempty"`
	OverlayColor    string          `json:"overlayColor,omitempty"`
	OverlayPadding  *float64        `json:"overlayPadding,omitempty"`
	OverlayRadius   *float64        `json:"overlayRadius,omitempty"`
	OverlayPosition OverlayPosition `json:"overlayPosition,omitempty"`
}

// Dimension is a CSS size that may arrive as a JSON number or string.
type Dimension struct {
	set      bool
	isNumber bool
	number   float64
	text     string
}

// NumberDimension returns a pixel dimension.
func NumberDimension(v float64) Dimension {
	return Dimension{set: true, isNumber: true, number: v}
}

// StringDimension returns a dimension given as raw text.
func StringDimension(s string) Dimension {
	return Dimension{set: true, text: s}
}

// IsZero reports whether no dimension was supplied.
func (d Dimension) IsZero() bool { return !d.set }

// Number returns the numeric value and whether the dimension is numeric.
func (d Dimension) Number() (float64, bool) { return d.number, d.isNumber }

// Text returns the raw string form for non-numeric dimensions.
func (d Dimension) Text() string { return d.text }

func (d *Dimension) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = NumberDimension(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*d = Dimension{}
			return nil
		}
		*d = StringDimension(s)
		return nil
	}
	*d = Dimension{}
	return nil
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	if d.isNumber {
		return json.Marshal(d.number)
	}
	return json.Marshal(d.text)
}
