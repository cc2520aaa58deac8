// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// Locale identifies one of the display languages supported by the site.
type Locale string

const (
	// LocaleEN is English, the default display language.
	LocaleEN Locale = "en"

	// LocaleAR is Arabic.
	LocaleAR Locale = "ar"
)

// Locales lists every supported locale in presentation order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleAR}
}

// Direction returns the text direction attribute for the locale:
// "rtl" for Arabic, "ltr" otherwise.
func (l Locale) Direction() string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// LocalizedText is a bilingual text value. In the JSON document it is either
// a plain string (locale-independent) or an object mapping locale codes to
// strings. The zero value resolves to "" for every locale.
type LocalizedText struct {
	plain    string
	isPlain  bool
	byLocale map[Locale]string
}

// PlainText returns a locale-independent LocalizedText.
func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s, isPlain: true}
}

// TextIn returns a LocalizedText carrying per-locale values.
func TextIn(values map[Locale]string) LocalizedText {
	byLocale := make(map[Locale]string, len(values))
	for locale, v := range values {
		byLocale[locale] = v
	}
	return LocalizedText{byLocale: byLocale}
}

// Resolve returns the display string for the given locale. Plain values are
// returned unchanged regardless of locale; a missing locale entry resolves
// to the empty string. Resolve never panics, including on the zero value.
func (t LocalizedText) Resolve(locale Locale) string {
	if t.isPlain {
		return t.plain
	}
	if t.byLocale == nil {
		return ""
	}
	return t.byLocale[locale]
}

// IsZero reports whether the value carries no text at all.
func (t LocalizedText) IsZero() bool {
	return !t.isPlain && len(t.byLocale) == 0
}

// With returns a copy with the given locale's value replaced. The receiver
// is not modified. Setting a locale on a plain value converts it to a
// per-locale map, keeping the plain string for every other supported locale.
func (t LocalizedText) With(locale Locale, value string) LocalizedText {
	byLocale := make(map[Locale]string, len(t.byLocale)+1)
	if t.isPlain {
		for _, l := range Locales() {
			byLocale[l] = t.plain
		}
	} else {
		for l, v := range t.byLocale {
			byLocale[l] = v
		}
	}
	byLocale[locale] = value
	return LocalizedText{byLocale: byLocale}
}

// UnmarshalJSON accepts either a JSON string or a locale map. null and any
// other shape decode to the zero value rather than failing, matching the
// tolerant reads the rendering pipeline relies on.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = LocalizedText{plain: plain, isPlain: true}
		return nil
	}

	var byLocale map[Locale]string
	if err := json.Unmarshal(data, &byLocale); err == nil {
		*t = LocalizedText{byLocale: byLocale}
		return nil
	}

	*t = LocalizedText{}
	return nil
}

// MarshalJSON writes back the same shape that was read: a string for plain
// values, an object for per-locale values, null for the zero value.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.isPlain {
		return json.Marshal(t.plain)
	}
	if len(t.byLocale) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(t.byLocale)
}
