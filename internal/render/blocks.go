// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/siteforge-io/siteforge/internal/compose"
	"github.com/siteforge-io/siteforge/models"
)

const (
	defaultSpacerHeight   = 24.0
	defaultOverlayPadding = 8.0
)

type textBlockData struct {
	Align string
	Text  string
}

type buttonBlockData struct {
	Align   string
	Text    string
	Link    string
	Variant string
}

type imageBlockData struct {
	Align        string
	Src          string
	Alt          string
	Width        string
	Height       string
	ObjectFit    string
	OverlayText  string
	OverlayStyle template.CSS
}

type spacerBlockData struct {
	Height string
}

// blocksAt renders every enabled block bound to pos, in document order.
// Disabled and unknown-typed blocks render nothing but stay in the
// document untouched.
func (r *Renderer) blocksAt(cfg *models.SiteConfig, pos string, locale models.Locale) template.HTML {
	var buf bytes.Buffer
	for _, block := range compose.BlocksAt(cfg, pos) {
		if !block.IsEnabled() {
			continue
		}
		html, err := r.block(block, locale)
		if err != nil {
			r.logger.Warn().Err(err).Str("position", pos).Msg("skipping block")
			continue
		}
		buf.WriteString(string(html))
	}
	return template.HTML(buf.String())
}

func (r *Renderer) block(b models.Block, locale models.Locale) (template.HTML, error) {
	p := b.Props

	switch b.Type {
	case models.BlockText:
		return r.exec("block-text", textBlockData{
			Align: align(p.Align),
			Text:  p.Text.Resolve(locale),
		})

	case models.BlockButton:
		link := p.Link
		if link == "" {
			link = "#"
		}
		variant := p.Variant
		if variant != "secondary" {
			variant = "primary"
		}
		return r.exec("block-button", buttonBlockData{
			Align:   align(p.Align),
			Text:    p.Text.Resolve(locale),
			Link:    link,
			Variant: variant,
		})

	case models.BlockImage:
		// No source, no markup.
		if p.Src == "" {
			return "", nil
		}
		fit := p.ObjectFit
		if fit == "" {
			fit = "contain"
		}
		return r.exec("block-image", imageBlockData{
			Align:        align(p.Align),
			Src:          p.Src,
			Alt:          p.Alt.Resolve(locale),
			Width:        cssSize(p.Width, "100%"),
			Height:       cssSize(p.Height, "auto"),
			ObjectFit:    fit,
			OverlayText:  p.OverlayText.Resolve(locale),
			OverlayStyle: overlayStyle(p),
		})

	case models.BlockSpacer:
		height := spacerHeight(p.Height)
		if height < 0 {
			height = 0
		}
		return r.exec("block-spacer", spacerBlockData{Height: pixels(height)})

	default:
		return "", nil
	}
}

func align(a string) string {
	switch a {
	case "left", "right", "center":
		return a
	default:
		return "center"
	}
}

// cssSize turns a dimension into a CSS length. Numbers and numeric
// strings mean pixels, any other string passes through verbatim.
func cssSize(d models.Dimension, fallback string) string {
	if d.IsZero() {
		return fallback
	}
	if n, ok := d.Number(); ok {
		return pixels(n)
	}
	text := d.Text()
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return strings.TrimSpace(text) + "px"
	}
	return text
}

func pixels(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}

// spacerHeight coerces the height prop to a pixel count. Numbers and
// numeric strings both count; anything else falls back to the default.
func spacerHeight(d models.Dimension) float64 {
	if n, ok := d.Number(); ok {
		return n
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(d.Text()), 64); err == nil {
		return n
	}
	return defaultSpacerHeight
}

// overlayStyle builds the inline style of the caption overlay on an image
// block. Position defaults to the bottom-right corner.
func overlayStyle(p models.BlockProps) template.CSS {
	bg := p.OverlayBg
	if bg == "" {
		bg = "rgba(0,0,0,0.35)"
	}
	color := p.OverlayColor
	if color == "" {
		color = "#ffffff"
	}
	padding := defaultOverlayPadding
	if p.OverlayPadding != nil && *p.OverlayPadding >= 0 {
		padding = *p.OverlayPadding
	}
	radius := 0.0
	if p.OverlayRadius != nil && *p.OverlayRadius >= 0 {
		radius = *p.OverlayRadius
	}

	var placement string
	switch p.OverlayPosition {
	case models.OverlayTopLeft:
		placement = "top:8px;left:8px"
	case models.OverlayTopRight:
		placement = "top:8px;right:8px"
	case models.OverlayBottomLeft:
		placement = "bottom:8px;left:8px"
	case models.OverlayCenter:
		placement = "top:50%;left:50%;transform:translate(-50%,-50%)"
	default:
		placement = "bottom:8px;right:8px"
	}

	return template.CSS(fmt.Sprintf(
		"position:absolute;%s;background:%s;color:%s;padding:%s;border-radius:%s",
		placement, bg, color, pixels(padding), pixels(radius)))
}
