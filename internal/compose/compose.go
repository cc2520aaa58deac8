// SPDX-License-Identifier: Apache-2.0

// Package compose decides which sections of the page render and in what
// order, and selects the custom blocks attached to each insertion point.
package compose

import (
	"strings"

	"github.com/siteforge-io/siteforge/models"
)

// ResolveSectionOrder returns the ordered list of section kinds to render.
//
// When site.sectionsOrder is a non-empty list it is filtered to known
// composable kinds, preserving the override's order and dropping unknown
// keys; kinds the override omits are NOT re-inserted. Otherwise the
// canonical default order is used unfiltered. The result then drops every
// section that is absent from the document or explicitly disabled.
//
// The output is deterministic for identical input.
func ResolveSectionOrder(cfg *models.SiteConfig) []models.SectionKind {
	if cfg == nil {
		return nil
	}

	known := models.ComposableSectionKinds()

	var resolved []models.SectionKind
	if len(cfg.Site.SectionsOrder) > 0 {
		for _, key := range cfg.Site.SectionsOrder {
			if kind, ok := composableKind(known, key); ok {
				resolved = append(resolved, kind)
			}
		}
	} else {
		resolved = known
	}

	out := make([]models.SectionKind, 0, len(resolved))
	for _, kind := range resolved {
		meta, present := cfg.Sections.Lookup(kind)
		// An absent section and an explicitly disabled one are the same
		// hidden state; a present section without an enabled flag shows.
		if !present || meta.Disabled() {
			continue
		}
		out = append(out, kind)
	}

	return out
}

func composableKind(known []models.SectionKind, key string) (models.SectionKind, bool) {
	for _, kind := range known {
		if string(kind) == key {
			return kind, true
		}
	}
	return "", false
}

// BlocksAt returns the custom blocks whose position equals positionName, in
// document order. Disabled blocks are included: dropping them is the block
// renderer's responsibility, so enable toggling never reorders siblings.
func BlocksAt(cfg *models.SiteConfig, positionName string) []models.Block {
	if cfg == nil {
		return nil
	}

	var out []models.Block
	for _, block := range cfg.CustomBlocks {
		if block.Position == positionName {
			out = append(out, block)
		}
	}
	return out
}

// BeforePosition and AfterPosition derive the conventional insertion point
// names surrounding a section, e.g. "beforeHero" and "afterHero".
func BeforePosition(kind models.SectionKind) string {
	return "before" + capitalize(string(kind))
}

func AfterPosition(kind models.SectionKind) string {
	return "after" + capitalize(string(kind))
}

// InsertionPoints lists every conventional insertion point name, two per
// composable section.
func InsertionPoints() []string {
	kinds := models.ComposableSectionKinds()
	out := make([]string, 0, 2*len(kinds))
	for _, kind := range kinds {
		out = append(out, BeforePosition(kind), AfterPosition(kind))
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
