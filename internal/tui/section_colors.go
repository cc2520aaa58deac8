package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/models"
)

var colorRoles = []models.ColorRole{
	models.RolePrimary,
	models.RoleSecondary,
	models.RoleBackground,
	models.RoleText,
	models.RoleBody,
	models.RoleHeading,
}

type sectionColorsModel struct {
	kind   models.SectionKind
	inputs []textinput.Model
	focus  int
}

func newSectionColorsModel(session *editor.Session, kind models.SectionKind) sectionColorsModel {
	meta, _ := session.Config().Sections.Lookup(kind)
	values := []string{
		meta.Colors.Primary,
		meta.Colors.Secondary,
		meta.Colors.Background,
		meta.Colors.Text,
		meta.Colors.Body,
		meta.Colors.Heading,
	}

	inputs := make([]textinput.Model, len(colorRoles))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 20
		inputs[i].Placeholder = "theme default"
		inputs[i].SetValue(values[i])
	}
	inputs[0].Focus()

	return sectionColorsModel{kind: kind, inputs: inputs}
}

func (m appModel) updateSectionColors(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenSections
		return m, nil

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.sectionColors = m.sectionColors.moveFocus(1)
		return m, nil

	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.sectionColors = m.sectionColors.moveFocus(-1)
		return m, nil

	case key.Matches(msg, keys.enter):
		for i, role := range colorRoles {
			value := m.sectionColors.inputs[i].Value()
			if value == "" {
				continue
			}
			if err := m.session.SetSectionColor(m.sectionColors.kind, role, value); err != nil {
				return m.withError(err.Error()), nil
			}
		}
		m.dirty = true
		m.status = "colors applied"
		return m, clearStatusLater()
	}

	var cmd tea.Cmd
	m.sectionColors.inputs[m.sectionColors.focus], cmd = m.sectionColors.inputs[m.sectionColors.focus].Update(msg)
	return m, cmd
}

func (m sectionColorsModel) moveFocus(delta int) sectionColorsModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m sectionColorsModel) View(session *editor.Session) string {
	data := ""
	for i, role := range colorRoles {
		path := "sections." + string(m.kind) + ".colors." + string(role)
		data += string(role) + ": [" + m.inputs[i].View() + "]"
		if warning := session.WarningAt(path); warning != "" {
			data += "  " + warnStyle.Render("! "+warning)
		}
		data += "\n"
	}

	return renderPage("Colors: "+string(m.kind), data,
		"tab next field  enter apply  esc back")
}
