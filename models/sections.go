package models

// SectionKind identifies one of the fixed section types the page template
// supports. The set is closed: rendering dispatches over it exhaustively,
// so an unknown key in a document can never reach a renderer.
type SectionKind string

const (
	SectionHero         SectionKind = "hero"
	SectionMetrics      SectionKind = "metrics"
	SectionHighlights   SectionKind = "highlights"
	SectionAbout        SectionKind = "about"
	SectionIndustries   SectionKind = "industries"
	SectionServices     SectionKind = "services"
	SectionPortfolio    SectionKind = "portfolio"
	SectionTestimonials SectionKind = "testimonials"
	SectionTeam         SectionKind = "team"
	SectionCTA          SectionKind = "cta"
	SectionContact      SectionKind = "contact"

	// Navbar and Footer are page chrome: they carry colors in the document
	// but are never part of the composed section flow.
	SectionNavbar SectionKind = "navbar"
	SectionFooter SectionKind = "footer"
)

// ComposableSectionKinds returns the fixed list of sections that take part
// in page composition. Slice order is the canonical default render order.
func ComposableSectionKinds() []SectionKind {
	return []SectionKind{
		SectionHero,
		SectionMetrics,
		SectionHighlights,
		SectionAbout,
		SectionIndustries,
		SectionServices,
		SectionPortfolio,
		SectionTestimonials,
		SectionTeam,
		SectionCTA,
		SectionContact,
	}
}

// SectionMeta is the part every section shares: the enable flag and the
// per-section color overrides.
type SectionMeta struct {
	// Enabled is a tri-state flag: nil means "not specified", which counts
	// as enabled for a section that is present in the document.
	Enabled *bool `json:"enabled,omitempty"`

	Colors ColorOverrides `json:"colors,omitempty"`
}

// Disabled reports whether the section explicitly carries enabled=false.
// An absent flag does not disable a present section.
func (m SectionMeta) Disabled() bool {
	return m.Enabled != nil && !*m.Enabled
}

// Sections holds one optional entry per known section kind. A nil entry
// means the section is absent from the document, which hides it.
type Sections struct {
	Hero         *HeroSection         `json:"hero,omitempty"`
	Metrics      *MetricsSection      `json:"metrics,omitempty"`
	Highlights   *HighlightsSection   `json:"highlights,omitempty"`
	About        *AboutSection        `json:"about,omitempty"`
	Industries   *IndustriesSection   `json:"industries,omitempty"`
	Services     *ServicesSection     `json:"services,omitempty"`
	Portfolio    *PortfolioSection    `json:"portfolio,omitempty"`
	Testimonials *TestimonialsSection `json:"testimonials,omitempty"`
	Team         *TeamSection         `json:"team,omitempty"`
	CTA          *CTASection          `json:"cta,omitempty"`
	Contact      *ContactSection      `json:"contact,omitempty"`
	Navbar       *ChromeSection       `json:"navbar,omitempty"`
	Footer       *ChromeSection       `json:"footer,omitempty"`
}

// Lookup returns the shared meta of the section of the given kind and
// whether that section is present in the document at all.
func (s Sections) Lookup(kind SectionKind) (SectionMeta, bool) {
	switch kind {
	case SectionHero:
		if s.Hero != nil {
			return s.Hero.SectionMeta, true
		}
	case SectionMetrics:
		if s.Metrics != nil {
			return s.Metrics.SectionMeta, true
		}
	case SectionHighlights:
		if s.Highlights != nil {
			return s.Highlights.SectionMeta, true
		}
	case SectionAbout:
		if s.About != nil {
			return s.About.SectionMeta, true
		}
	case SectionIndustries:
		if s.Industries != nil {
			return s.Industries.SectionMeta, true
		}
	case SectionServices:
		if s.Services != nil {
			return s.Services.SectionMeta, true
		}
	case SectionPortfolio:
		if s.Portfolio != nil {
			return s.Portfolio.SectionMeta, true
		}
	case SectionTestimonials:
		if s.Testimonials != nil {
			return s.Testimonials.SectionMeta, true
		}
	case SectionTeam:
		if s.Team != nil {
			return s.Team.SectionMeta, true
		}
	case SectionCTA:
		if s.CTA != nil {
			return s.CTA.SectionMeta, true
		}
	case SectionContact:
		if s.Contact != nil {
			return s.Contact.SectionMeta, true
		}
	case SectionNavbar:
		if s.Navbar != nil {
			return s.Navbar.SectionMeta, true
		}
	case SectionFooter:
		if s.Footer != nil {
			return s.Footer.SectionMeta, true
		}
	}
	return SectionMeta{}, false
}

// CallToAction is a button with localized text and a target link.
type CallToAction struct {
	Text LocalizedText `json:"text"`
	Link string        `json:"link,omitempty"`
}

// HeroSection is the page opener: heading, subheading and a call to action.
type HeroSection struct {
	SectionMeta
	Heading         LocalizedText `json:"heading"`
	Subheading      LocalizedText `json:"subheading,omitempty"`
	BackgroundImage string        `json:"backgroundImage,omitempty"`
	CTA             CallToAction  `json:"cta,omitempty"`
}

// MetricsSection shows a row of headline numbers.
type MetricsSection struct {
	SectionMeta
	Items []MetricItem `json:"items,omitempty"`
}

type MetricItem struct {
	Value string        `json:"value"`
	Label LocalizedText `json:"label"`
}

// HighlightsSection lists short title/description pairs.
type HighlightsSection struct {
	SectionMeta
	Heading LocalizedText   `json:"heading,omitempty"`
	Items   []HighlightItem `json:"items,omitempty"`
}

type HighlightItem struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
}

// AboutSection carries free paragraphs and an optional image.
type AboutSection struct {
	SectionMeta
	Heading    LocalizedText   `json:"heading,omitempty"`
	Paragraphs []LocalizedText `json:"paragraphs,omitempty"`
	Image      string          `json:"image,omitempty"`
}

// IndustriesSection lists the industries served.
type IndustriesSection struct {
	SectionMeta
	Heading LocalizedText  `json:"heading,omitempty"`
	Items   []IndustryItem `json:"items,omitempty"`
}

type IndustryItem struct {
	Title   LocalizedText `json:"title"`
	Tagline LocalizedText `json:"tagline,omitempty"`
}

// ServicesSection lists the offered services.
type ServicesSection struct {
	SectionMeta
	Heading LocalizedText `json:"heading,omitempty"`
	Items   []ServiceItem `json:"items,omitempty"`
}

type ServiceItem struct {
	Icon        string        `json:"icon,omitempty"`
	Image       string        `json:"image,omitempty"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
}

// PortfolioSection shows completed projects with optional outcome metrics.
type PortfolioSection struct {
	SectionMeta
	Heading LocalizedText   `json:"heading,omitempty"`
	Items   []PortfolioItem `json:"items,omitempty"`
}

type PortfolioItem struct {
	Title       LocalizedText    `json:"title"`
	Description LocalizedText    `json:"description,omitempty"`
	Image       string           `json:"image,omitempty"`
	Link        string           `json:"link,omitempty"`
	Metrics     PortfolioMetrics `json:"metrics,omitempty"`
}

type PortfolioMetrics struct {
	Clients      string `json:"clients,omitempty"`
	Revenue      string `json:"revenue,omitempty"`
	Satisfaction string `json:"satisfaction,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// TestimonialsSection carries client quotes.
type TestimonialsSection struct {
	SectionMeta
	Heading LocalizedText     `json:"heading,omitempty"`
	Items   []TestimonialItem `json:"items,omitempty"`
}

type TestimonialItem struct {
	Quote   LocalizedText `json:"quote"`
	Name    LocalizedText `json:"name,omitempty"`
	Role    LocalizedText `json:"role,omitempty"`
	Company LocalizedText `json:"company,omitempty"`
	Country LocalizedText `json:"country,omitempty"`
	Project LocalizedText `json:"project,omitempty"`
}

// TeamSection lists team members.
type TeamSection struct {
	SectionMeta
	Heading LocalizedText `json:"heading,omitempty"`
	Members []TeamMember  `json:"members,omitempty"`
}

type TeamMember struct {
	Name  LocalizedText `json:"name"`
	Role  LocalizedText `json:"role,omitempty"`
	Bio   LocalizedText `json:"bio,omitempty"`
	Photo string        `json:"photo,omitempty"`
}

// CTASection is a closing call-to-action banner.
type CTASection struct {
	SectionMeta
	Heading    LocalizedText `json:"heading,omitempty"`
	Subheading LocalizedText `json:"subheading,omitempty"`
	CTA        CallToAction  `json:"cta,omitempty"`
}

// ContactSection carries contact channels and external links.
type ContactSection struct {
	SectionMeta
	Heading LocalizedText `json:"heading,omitempty"`
	Email   string        `json:"email,omitempty"`
	Phone   string        `json:"phone,omitempty"`
	Address LocalizedText `json:"address,omitempty"`
	Links   []ContactLink `json:"links,omitempty"`
}

type ContactLink struct {
	Label LocalizedText `json:"label"`
	URL   string        `json:"url"`
}

// ChromeSection is the payload for navbar and footer: colors only, the
// content comes from Site.Menu and Site.FooterText.
type ChromeSection struct {
	SectionMeta
}
