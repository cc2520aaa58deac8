package models

// Theme holds the four global colors applied to the whole page.
type Theme struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// ColorRole names a color slot a section renderer may ask for.
type ColorRole string

const (
	RolePrimary    ColorRole = "primary"
	RoleSecondary  ColorRole = "secondary"
	RoleBackground ColorRole = "background"
	RoleText       ColorRole = "text"
	RoleBody       ColorRole = "body"
	RoleHeading    ColorRole = "heading"
)

// ColorOverrides are per-section color overrides. Every field is optional;
// empty fields fall back per Resolve.
type ColorOverrides struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Body       string `json:"body,omitempty"`
	Heading    string `json:"heading,omitempty"`
}

// Resolve returns the effective color for role. The fallback chain is:
// specific role override → section text override (for body/heading) →
// the matching theme color.
func (c ColorOverrides) Resolve(role ColorRole, theme Theme) string {
	switch role {
	case RolePrimary:
		return firstNonEmpty(c.Primary, theme.Primary)
	case RoleSecondary:
		return firstNonEmpty(c.Secondary, theme.Secondary)
	case RoleBackground:
		return firstNonEmpty(c.Background, theme.Background)
	case RoleText:
		return firstNonEmpty(c.Text, theme.Text)
	case RoleBody:
		return firstNonEmpty(c.Body, c.Text, theme.Text)
	case RoleHeading:
		return firstNonEmpty(c.Heading, c.Text, theme.Text)
	default:
		return theme.Text
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
