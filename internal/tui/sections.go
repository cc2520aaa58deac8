package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/models"
)

// sectionsModel lists every composable section in its effective order,
// with page chrome (navbar, footer) appended for color editing only.
type sectionsModel struct {
	order  []models.SectionKind
	chrome []models.SectionKind
	idx    int
}

func newSectionsModel(session *editor.Session) sectionsModel {
	cfg := session.Config()

	known := models.ComposableSectionKinds()
	seen := make(map[models.SectionKind]bool, len(known))

	var order []models.SectionKind
	for _, raw := range cfg.Site.SectionsOrder {
		kind := models.SectionKind(raw)
		for _, k := range known {
			if k == kind && !seen[kind] {
				order = append(order, kind)
				seen[kind] = true
			}
		}
	}
	for _, k := range known {
		if !seen[k] {
			order = append(order, k)
		}
	}

	return sectionsModel{
		order:  order,
		chrome: []models.SectionKind{models.SectionNavbar, models.SectionFooter},
	}
}

func (m sectionsModel) rows() []models.SectionKind {
	return append(append([]models.SectionKind{}, m.order...), m.chrome...)
}

func (m sectionsModel) selected() models.SectionKind {
	return m.rows()[m.idx]
}

func (m sectionsModel) orderStrings() []string {
	out := make([]string, len(m.order))
	for i, k := range m.order {
		out[i] = string(k)
	}
	return out
}

func (m appModel) updateSections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.sections.rows()

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil

	case key.Matches(msg, keys.up):
		if m.sections.idx > 0 {
			m.sections.idx--
		}

	case key.Matches(msg, keys.down):
		if m.sections.idx < len(rows)-1 {
			m.sections.idx++
		}

	case key.Matches(msg, keys.toggle):
		kind := m.sections.selected()
		meta, present := m.session.Config().Sections.Lookup(kind)
		enabled := present && !meta.Disabled()
		if err := m.session.SetSectionEnabled(kind, !enabled); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true

	case key.Matches(msg, keys.moveUp):
		if m.sections.idx > 0 && m.sections.idx < len(m.sections.order) {
			i := m.sections.idx
			m.sections.order[i-1], m.sections.order[i] = m.sections.order[i], m.sections.order[i-1]
			m.sections.idx--
			if err := m.session.SetSectionsOrder(m.sections.orderStrings()); err != nil {
				return m.withError(err.Error()), nil
			}
			m.dirty = true
		}

	case key.Matches(msg, keys.moveDown):
		if m.sections.idx < len(m.sections.order)-1 {
			i := m.sections.idx
			m.sections.order[i], m.sections.order[i+1] = m.sections.order[i+1], m.sections.order[i]
			m.sections.idx++
			if err := m.session.SetSectionsOrder(m.sections.orderStrings()); err != nil {
				return m.withError(err.Error()), nil
			}
			m.dirty = true
		}

	case key.Matches(msg, keys.enter):
		m.sectionColors = newSectionColorsModel(m.session, m.sections.selected())
		m.currentScreen = screenSectionColors
	}

	return m, nil
}

func (m sectionsModel) View(session *editor.Session) string {
	cfg := session.Config()

	data := ""
	for i, kind := range m.rows() {
		meta, present := cfg.Sections.Lookup(kind)
		enabled := present && !meta.Disabled()

		line := cursorFor(i == m.idx) + onOff(enabled) + " " + string(kind)
		if !present {
			line += helpStyle.Render("  (absent)")
		}
		if i >= len(m.order) {
			line += helpStyle.Render("  (chrome)")
		}
		data += line + "\n"
	}

	return renderPage("Sections", data,
		"space toggle  J/K reorder  enter colors  esc back")
}
