package editor

import (
	"regexp"
	"strings"
)

// Validation here is advisory UI feedback, not a save-blocking gate:
// a violating value is stored in the working copy and flagged, never
// rejected.

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	// Absolute http(s), protocol-relative, root-relative, fragment,
	// mailto: and tel: shapes all count as plausible link targets.
	urlPattern = regexp.MustCompile(`^(https?://\S+|//\S+|/\S*|#\S*|mailto:\S+|tel:\S+)$`)
)

func (s *Session) checkColor(path, value string) {
	if value != "" && !hexColorPattern.MatchString(value) {
		s.warnings[path] = "expected a 6-digit hex color like #1a2b3c"
		return
	}
	delete(s.warnings, path)
}

func (s *Session) checkURL(path, value string) {
	if value != "" && !urlPattern.MatchString(value) {
		s.warnings[path] = "does not look like a URL"
		return
	}
	delete(s.warnings, path)
}

func (s *Session) checkRequired(path, value string) {
	if strings.TrimSpace(value) == "" {
		s.warnings[path] = "should not be empty"
		return
	}
	delete(s.warnings, path)
}
