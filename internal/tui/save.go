package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
)

type saveMode int

const (
	saveModeList saveMode = iota
	saveModeExportPath
	saveModeImportPath
)

type saveModel struct {
	options []string
	idx     int
	mode    saveMode
	path    textinput.Model
}

func newSaveModel() saveModel {
	path := textinput.New()
	path.Width = 50
	path.Placeholder = "siteconfig.json"

	return saveModel{
		options: []string{
			"Save (local override + remote store)",
			"Export to file",
			"Import from file",
			"Copy JSON to clipboard",
		},
		path: path,
	}
}

func (m appModel) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.save.mode != saveModeList {
		switch {
		case key.Matches(msg, keys.esc):
			m.save.mode = saveModeList
			return m, nil

		case key.Matches(msg, keys.enter):
			filename := m.save.path.Value()
			if filename == "" {
				return m, nil
			}
			mode := m.save.mode
			m.save.mode = saveModeList
			if mode == saveModeExportPath {
				return m, cmdExport(m.session, filename)
			}
			return m, cmdImport(m.session, filename)
		}

		var cmd tea.Cmd
		m.save.path, cmd = m.save.path.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu

	case key.Matches(msg, keys.up):
		if m.save.idx > 0 {
			m.save.idx--
		}

	case key.Matches(msg, keys.down):
		if m.save.idx < len(m.save.options)-1 {
			m.save.idx++
		}

	case key.Matches(msg, keys.enter):
		switch m.save.idx {
		case 0:
			return m, cmdCommit(m.ctx, m.session)
		case 1:
			m.save.mode = saveModeExportPath
			m.save.path.SetValue("")
			m.save.path.Focus()
		case 2:
			m.save.mode = saveModeImportPath
			m.save.path.SetValue("")
			m.save.path.Focus()
		case 3:
			return m, cmdCopy(m.session)
		}
	}

	return m, nil
}

func cmdCommit(ctx context.Context, session *editor.Session) tea.Cmd {
	return func() tea.Msg {
		return committedMsg{result: session.Commit(ctx)}
	}
}

func cmdExport(session *editor.Session, filename string) tea.Cmd {
	return func() tea.Msg {
		return exportedMsg{filename: filename, err: session.Export(filename)}
	}
}

func cmdImport(session *editor.Session, filename string) tea.Cmd {
	return func() tea.Msg {
		doc, err := session.Import(filename)
		return importedMsg{doc: doc, err: err}
	}
}

func cmdCopy(session *editor.Session) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(string(session.Document().Pretty()))}
	}
}

func (m saveModel) View(session *editor.Session, status string) string {
	if m.mode != saveModeList {
		prompt := "Export path"
		if m.mode == saveModeImportPath {
			prompt = "Import path"
		}
		data := prompt + ": [" + m.path.View() + "]"
		return renderPage("Save & export", data, "enter confirm  esc cancel")
	}

	data := ""
	for i, option := range m.options {
		data += cursorFor(i == m.idx) + option + "\n"
	}

	if warnings := session.Warnings(); len(warnings) > 0 {
		data += "\n" + warnStyle.Render("advisory warnings:") + "\n"
		for path, msg := range warnings {
			data += "  " + path + ": " + msg + "\n"
		}
	}

	if status != "" {
		data += "\n" + helpStyle.Render(status)
	}

	return renderPage("Save & export", data, "enter run  esc back")
}
