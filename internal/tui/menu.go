package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
)

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []string{
			"Theme colors",
			"Sections",
			"Service items",
			"Contact links",
			"Custom blocks",
			"Save & export",
		},
	}
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(msg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(msg, keys.lang):
		return m.toggleEditLocale(), nil
	case key.Matches(msg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.theme = newThemeModel(m.session)
			m.currentScreen = screenTheme
		case 1:
			m.sections = newSectionsModel(m.session)
			m.currentScreen = screenSections
		case 2:
			m.services = m.services.clampCursor(m.session)
			m.currentScreen = screenServices
		case 3:
			m.links = m.links.clampCursor(m.session)
			m.currentScreen = screenLinks
		case 4:
			m.blocks = m.blocks.clampCursor(m.session)
			m.currentScreen = screenBlocks
		case 5:
			m.save = newSaveModel()
			m.currentScreen = screenSave
		}
	case key.Matches(msg, keys.esc):
		if m.dirty {
			m.showConfirm = true
			m.confirm = confirmModel{message: "Quit without saving?"}
			m.pending = pendingConfirm{kind: confirmQuit}
			return m, nil
		}
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View(session *editor.Session, dirty bool) string {
	data := ""
	for i, item := range m.items {
		data += cursorFor(i == m.idx) + item + "\n"
	}

	state := fmt.Sprintf("editing locale: %s", session.EditLocale())
	if dirty {
		state += "  (unsaved changes)"
	}
	data += "\n" + helpStyle.Render(state)

	return renderPage("Site Dashboard", data, "enter open  L switch locale  esc quit")
}
