package render

import (
	"fmt"
	"html/template"

	"github.com/siteforge-io/siteforge/models"
)

// View models: every string is resolved for the target locale and every
// color is resolved through the override→theme fallback chain before the
// templates run, so the templates stay dumb.

type pageView struct {
	Lang       string
	Dir        string
	Title      string
	Theme      template.CSS
	ThemeColor string
	Navbar     navData
	Flow       []template.HTML
	Footer     footData
}

type navData struct {
	Title string
	Logo  string
	Items []navLink
	Style template.CSS
}

type navLink struct {
	Label string
	Href  string
}

type footData struct {
	Title string
	Text  string
	Style template.CSS
}

// themeStyle emits the whole :root rule as one CSS value. Interpolating
// the declarations into a rule written in the template trips the
// sanitizer, which replaces the braces with ZgotmplZ.
func themeStyle(t models.Theme) template.CSS {
	return template.CSS(fmt.Sprintf(
		":root{--color-primary:%s;--color-secondary:%s;--color-bg:%s;--color-text:%s}",
		t.Primary, t.Secondary, t.Background, t.Text))
}

// sectionStyle emits the per-section CSS custom properties with every role
// resolved through the fallback chain.
func sectionStyle(c models.ColorOverrides, theme models.Theme) template.CSS {
	return template.CSS(fmt.Sprintf(
		"--section-primary:%s;--section-secondary:%s;--section-bg:%s;--section-text:%s;--section-body:%s;--section-heading:%s",
		c.Resolve(models.RolePrimary, theme),
		c.Resolve(models.RoleSecondary, theme),
		c.Resolve(models.RoleBackground, theme),
		c.Resolve(models.RoleText, theme),
		c.Resolve(models.RoleBody, theme),
		c.Resolve(models.RoleHeading, theme)))
}

func navbarView(cfg *models.SiteConfig, locale models.Locale) navData {
	var colors models.ColorOverrides
	if cfg.Sections.Navbar != nil {
		colors = cfg.Sections.Navbar.Colors
	}

	items := make([]navLink, 0, len(cfg.Site.Menu))
	for _, item := range cfg.Site.Menu {
		items = append(items, navLink{Label: item.Label.Resolve(locale), Href: item.Href})
	}

	return navData{
		Title: cfg.Site.Title.Resolve(locale),
		Logo:  cfg.Site.LogoNavbar,
		Items: items,
		Style: sectionStyle(colors, cfg.Theme),
	}
}

func footerView(cfg *models.SiteConfig, locale models.Locale) footData {
	var colors models.ColorOverrides
	if cfg.Sections.Footer != nil {
		colors = cfg.Sections.Footer.Colors
	}

	return footData{
		Title: cfg.Site.Title.Resolve(locale),
		Text:  cfg.Site.FooterText.Resolve(locale),
		Style: sectionStyle(colors, cfg.Theme),
	}
}

type heroData struct {
	Style           template.CSS
	BackgroundImage string
	Heading         string
	Subheading      string
	CTAText         string
	CTALink         string
}

func heroView(s *models.HeroSection, theme models.Theme, locale models.Locale) heroData {
	link := s.CTA.Link
	if link == "" {
		link = "#"
	}
	return heroData{
		Style:           sectionStyle(s.Colors, theme),
		BackgroundImage: s.BackgroundImage,
		Heading:         s.Heading.Resolve(locale),
		Subheading:      s.Subheading.Resolve(locale),
		CTAText:         s.CTA.Text.Resolve(locale),
		CTALink:         link,
	}
}

type metricsData struct {
	Style template.CSS
	Items []metricItem
}

type metricItem struct {
	Value string
	Label string
}

func metricsView(s *models.MetricsSection, theme models.Theme, locale models.Locale) metricsData {
	items := make([]metricItem, 0, len(s.Items))
	for _, m := range s.Items {
		items = append(items, metricItem{Value: m.Value, Label: m.Label.Resolve(locale)})
	}
	return metricsData{Style: sectionStyle(s.Colors, theme), Items: items}
}

type pairsData struct {
	Style   template.CSS
	Heading string
	Items   []pairItem
}

type pairItem struct {
	Title       string
	Description string
}

func highlightsView(s *models.HighlightsSection, theme models.Theme, locale models.Locale) pairsData {
	items := make([]pairItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, pairItem{
			Title:       it.Title.Resolve(locale),
			Description: it.Description.Resolve(locale),
		})
	}
	return pairsData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Items: items}
}

func industriesView(s *models.IndustriesSection, theme models.Theme, locale models.Locale) pairsData {
	items := make([]pairItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, pairItem{
			Title:       it.Title.Resolve(locale),
			Description: it.Tagline.Resolve(locale),
		})
	}
	return pairsData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Items: items}
}

type aboutData struct {
	Style      template.CSS
	Heading    string
	Paragraphs []string
	Image      string
}

func aboutView(s *models.AboutSection, theme models.Theme, locale models.Locale) aboutData {
	paragraphs := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		paragraphs = append(paragraphs, p.Resolve(locale))
	}
	return aboutData{
		Style:      sectionStyle(s.Colors, theme),
		Heading:    s.Heading.Resolve(locale),
		Paragraphs: paragraphs,
		Image:      s.Image,
	}
}

type servicesData struct {
	Style   template.CSS
	Heading string
	Items   []serviceItem
}

type serviceItem struct {
	Icon        string
	Image       string
	Title       string
	Description string
}

func servicesView(s *models.ServicesSection, theme models.Theme, locale models.Locale) servicesData {
	items := make([]serviceItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, serviceItem{
			Icon:        it.Icon,
			Image:       it.Image,
			Title:       it.Title.Resolve(locale),
			Description: it.Description.Resolve(locale),
		})
	}
	return servicesData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Items: items}
}

type portfolioData struct {
	Style   template.CSS
	Heading string
	Items   []portfolioItem
}

type portfolioItem struct {
	Title       string
	Description string
	Image       string
	Link        string
	Metrics     []string
}

func portfolioView(s *models.PortfolioSection, theme models.Theme, locale models.Locale) portfolioData {
	items := make([]portfolioItem, 0, len(s.Items))
	for _, it := range s.Items {
		var metrics []string
		for _, m := range []string{it.Metrics.Clients, it.Metrics.Revenue, it.Metrics.Satisfaction, it.Metrics.Duration} {
			if m != "" {
				metrics = append(metrics, m)
			}
		}
		items = append(items, portfolioItem{
			Title:       it.Title.Resolve(locale),
			Description: it.Description.Resolve(locale),
			Image:       it.Image,
			Link:        it.Link,
			Metrics:     metrics,
		})
	}
	return portfolioData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Items: items}
}

type testimonialsData struct {
	Style   template.CSS
	Heading string
	Items   []testimonialItem
}

type testimonialItem struct {
	Quote       string
	Attribution string
}

func testimonialsView(s *models.TestimonialsSection, theme models.Theme, locale models.Locale) testimonialsData {
	items := make([]testimonialItem, 0, len(s.Items))
	for _, it := range s.Items {
		attribution := joinNonEmpty(" • ",
			it.Name.Resolve(locale),
			it.Role.Resolve(locale),
			it.Company.Resolve(locale),
			it.Country.Resolve(locale),
			it.Project.Resolve(locale))
		items = append(items, testimonialItem{
			Quote:       it.Quote.Resolve(locale),
			Attribution: attribution,
		})
	}
	return testimonialsData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Items: items}
}

type teamData struct {
	Style   template.CSS
	Heading string
	Members []teamMember
}

type teamMember struct {
	Name  string
	Role  string
	Bio   string
	Photo string
}

func teamView(s *models.TeamSection, theme models.Theme, locale models.Locale) teamData {
	members := make([]teamMember, 0, len(s.Members))
	for _, m := range s.Members {
		members = append(members, teamMember{
			Name:  m.Name.Resolve(locale),
			Role:  m.Role.Resolve(locale),
			Bio:   m.Bio.Resolve(locale),
			Photo: m.Photo,
		})
	}
	return teamData{Style: sectionStyle(s.Colors, theme), Heading: s.Heading.Resolve(locale), Members: members}
}

type ctaData struct {
	Style      template.CSS
	Heading    string
	Subheading string
	CTAText    string
	CTALink    string
}

func ctaView(s *models.CTASection, theme models.Theme, locale models.Locale) ctaData {
	link := s.CTA.Link
	if link == "" {
		link = "#"
	}
	return ctaData{
		Style:      sectionStyle(s.Colors, theme),
		Heading:    s.Heading.Resolve(locale),
		Subheading: s.Subheading.Resolve(locale),
		CTAText:    s.CTA.Text.Resolve(locale),
		CTALink:    link,
	}
}

type contactData struct {
	Style   template.CSS
	Heading string
	Email   string
	Phone   string
	Address string
	Links   []navLink
}

func contactView(s *models.ContactSection, theme models.Theme, locale models.Locale) contactData {
	links := make([]navLink, 0, len(s.Links))
	for _, l := range s.Links {
		links = append(links, navLink{Label: l.Label.Resolve(locale), Href: l.URL})
	}
	return contactData{
		Style:   sectionStyle(s.Colors, theme),
		Heading: s.Heading.Resolve(locale),
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address.Resolve(locale),
		Links:   links,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
