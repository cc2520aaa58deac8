package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
)

var themeKeys = []string{"primary", "secondary", "background", "text"}

type themeModel struct {
	inputs []textinput.Model
	focus  int
}

func newThemeModel(session *editor.Session) themeModel {
	cfg := session.Config()
	values := []string{
		cfg.Theme.Primary,
		cfg.Theme.Secondary,
		cfg.Theme.Background,
		cfg.Theme.Text,
	}

	inputs := make([]textinput.Model, len(themeKeys))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 20
		inputs[i].Placeholder = "#000000"
		inputs[i].SetValue(values[i])
	}
	inputs[0].Focus()

	return themeModel{inputs: inputs}
}

func (m appModel) updateTheme(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.theme = m.theme.moveFocus(1)
		return m, nil

	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.theme = m.theme.moveFocus(-1)
		return m, nil

	case key.Matches(msg, keys.enter):
		for i, themeKey := range themeKeys {
			if err := m.session.SetThemeColor(themeKey, m.theme.inputs[i].Value()); err != nil {
				return m.withError(err.Error()), nil
			}
		}
		m.dirty = true
		m.status = "theme applied"
		return m, clearStatusLater()
	}

	var cmd tea.Cmd
	m.theme.inputs[m.theme.focus], cmd = m.theme.inputs[m.theme.focus].Update(msg)
	return m, cmd
}

func (m themeModel) moveFocus(delta int) themeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m themeModel) View(session *editor.Session) string {
	data := ""
	for i, themeKey := range themeKeys {
		data += themeKey + ": [" + m.inputs[i].View() + "]"
		if warning := session.WarningAt("theme." + themeKey); warning != "" {
			data += "  " + warnStyle.Render("! "+warning)
		}
		data += "\n"
	}

	return renderPage("Theme colors", data, "tab next field  enter apply  esc back")
}
