// SPDX-License-Identifier: Apache-2.0

package models

// SiteConfig is the root configuration document: the single source of truth
// for everything the site renders. It is produced by the loader (base merged
// with overrides) and consumed read-only by the rendering pipeline; the
// dashboard mutates a cloned copy and replaces the whole document on save.
type SiteConfig struct {
	// Theme holds the four global colors.
	Theme Theme `json:"theme"`

	// Site holds page-level settings: title, navigation, footer text,
	// section ordering and the default language.
	Site Site `json:"site"`

	// Sections maps each known section key to its content and enable state.
	Sections Sections `json:"sections"`

	// CustomBlocks are user-defined content blocks rendered at named
	// insertion points around sections. Order in the slice is render order.
	CustomBlocks []Block `json:"customBlocks,omitempty"`
}

// Site holds the page-level settings of the configuration document.
type Site struct {
	Title      LocalizedText `json:"title"`
	FooterText LocalizedText `json:"footerText"`

	// Menu is the ordered navigation bar item list.
	Menu []NavItem `json:"menu,omitempty"`

	// SectionsOrder, when non-empty, overrides the canonical section order.
	// Unknown keys are dropped at composition time.
	SectionsOrder []string `json:"sectionsOrder,omitempty"`

	// LogoNavbar is an optional logo image URL shown in the navbar.
	LogoNavbar string `json:"logoNavbar,omitempty"`

	// Lang is the default display locale.
	Lang Locale `json:"lang,omitempty"`
}

// NavItem is a single navigation menu entry.
type NavItem struct {
	Label LocalizedText `json:"label"`
	Href  string        `json:"href"`
}

// DefaultLocale returns the site's configured default locale, falling back
// to English when unset.
func (s Site) DefaultLocale() Locale {
	if s.Lang != "" {
		return s.Lang
	}
	return LocaleEN
}
