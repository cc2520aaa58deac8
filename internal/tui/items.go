package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota // localized, written in the edit locale
	fieldURL
	fieldPlain
)

type itemField struct {
	label string
	name  string
	kind  fieldKind
}

// itemEditorModel is a list-of-items editor parameterized over the list
// path and its fields. It backs both the services and the contact links
// screens.
type itemEditorModel struct {
	title    string
	listPath string
	fields   []itemField
	rowLabel func(cfg *models.SiteConfig, locale models.Locale, i int) string
	rowCount func(cfg *models.SiteConfig) int

	idx     int
	editing bool
	editIdx int
	inputs  []textinput.Model
	focus   int
}

func newServicesEditor(session *editor.Session) itemEditorModel {
	_ = session
	return itemEditorModel{
		title:    "Service items",
		listPath: "sections.services.items",
		fields: []itemField{
			{label: "Title", name: "title", kind: fieldText},
			{label: "Description", name: "description", kind: fieldText},
			{label: "Icon", name: "icon", kind: fieldPlain},
			{label: "Image", name: "image", kind: fieldURL},
		},
		rowLabel: func(cfg *models.SiteConfig, locale models.Locale, i int) string {
			if cfg.Sections.Services == nil || i >= len(cfg.Sections.Services.Items) {
				return "(new item)"
			}
			return cfg.Sections.Services.Items[i].Title.Resolve(locale)
		},
		rowCount: func(cfg *models.SiteConfig) int {
			if cfg.Sections.Services == nil {
				return 0
			}
			return len(cfg.Sections.Services.Items)
		},
	}
}

func newLinksEditor(session *editor.Session) itemEditorModel {
	_ = session
	return itemEditorModel{
		title:    "Contact links",
		listPath: "sections.contact.links",
		fields: []itemField{
			{label: "Label", name: "label", kind: fieldText},
			{label: "URL", name: "url", kind: fieldURL},
		},
		rowLabel: func(cfg *models.SiteConfig, locale models.Locale, i int) string {
			if cfg.Sections.Contact == nil || i >= len(cfg.Sections.Contact.Links) {
				return "(new link)"
			}
			return cfg.Sections.Contact.Links[i].Label.Resolve(locale)
		},
		rowCount: func(cfg *models.SiteConfig) int {
			if cfg.Sections.Contact == nil {
				return 0
			}
			return len(cfg.Sections.Contact.Links)
		},
	}
}

func (m itemEditorModel) clampCursor(session *editor.Session) itemEditorModel {
	count := m.rowCount(session.Config())
	if m.idx >= count {
		m.idx = count - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

// openForm prefills the per-field inputs from the working copy. Localized
// fields show the edit-locale value; plain-string values show as-is.
func (m itemEditorModel) openForm(session *editor.Session, index int) itemEditorModel {
	m.editing = true
	m.editIdx = index
	m.focus = 0

	itemBase := fmt.Sprintf("%s.%d", m.listPath, index)
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 50
		m.inputs[i].SetValue(prefillValue(session, itemBase+"."+f.name, f.kind))
	}
	m.inputs[0].Focus()
	return m
}

func prefillValue(session *editor.Session, path string, kind fieldKind) string {
	doc := session.Document()
	value := doc.Get(path)

	if kind == fieldText && value.IsObject() {
		return value.Get(string(session.EditLocale())).String()
	}
	return value.String()
}

func (m itemEditorModel) applyForm(session *editor.Session) error {
	for i, f := range m.fields {
		value := m.inputs[i].Value()
		switch f.kind {
		case fieldText:
			if err := session.UpdateItemText(m.listPath, m.editIdx, f.name, value); err != nil {
				return err
			}
		case fieldURL:
			if err := session.UpdateItemURL(m.listPath, m.editIdx, f.name, value); err != nil {
				return err
			}
		default:
			if err := session.UpdateItemField(m.listPath, m.editIdx, f.name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m appModel) updateItems(msg tea.KeyMsg, which screen) (tea.Model, tea.Cmd) {
	ed := m.services
	if which == screenLinks {
		ed = m.links
	}

	store := func(m appModel, ed itemEditorModel) appModel {
		if which == screenLinks {
			m.links = ed
		} else {
			m.services = ed
		}
		return m
	}

	if ed.editing {
		switch {
		case key.Matches(msg, keys.esc):
			ed.editing = false
			return store(m, ed), nil

		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			ed = ed.moveFocus(1)
			return store(m, ed), nil

		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			ed = ed.moveFocus(-1)
			return store(m, ed), nil

		case key.Matches(msg, keys.enter):
			if err := ed.applyForm(m.session); err != nil {
				return m.withError(err.Error()), nil
			}
			ed.editing = false
			m.dirty = true
			m.status = "item saved"
			return store(m, ed), clearStatusLater()
		}

		var cmd tea.Cmd
		ed.inputs[ed.focus], cmd = ed.inputs[ed.focus].Update(msg)
		return store(m, ed), cmd
	}

	count := ed.rowCount(m.session.Config())

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu

	case key.Matches(msg, keys.up):
		if ed.idx > 0 {
			ed.idx--
		}

	case key.Matches(msg, keys.down):
		if ed.idx < count-1 {
			ed.idx++
		}

	case key.Matches(msg, keys.newItem):
		if err := m.session.AppendItem(ed.listPath, map[string]any{}); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true
		ed.idx = count
		ed = ed.openForm(m.session, count)

	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		if count > 0 {
			ed = ed.openForm(m.session, ed.idx)
		}

	case key.Matches(msg, keys.delete):
		if count > 0 {
			label := ed.rowLabel(m.session.Config(), m.session.EditLocale(), ed.idx)
			m.showConfirm = true
			m.confirm = confirmModel{message: "Remove \"" + label + "\"?"}
			m.pending = pendingConfirm{kind: confirmRemoveItem, listPath: ed.listPath, index: ed.idx}
		}

	case key.Matches(msg, keys.moveUp):
		if ed.idx > 0 {
			if err := m.session.MoveItem(ed.listPath, ed.idx, editor.MoveUp); err != nil {
				return m.withError(err.Error()), nil
			}
			ed.idx--
			m.dirty = true
		}

	case key.Matches(msg, keys.moveDown):
		if ed.idx < count-1 {
			if err := m.session.MoveItem(ed.listPath, ed.idx, editor.MoveDown); err != nil {
				return m.withError(err.Error()), nil
			}
			ed.idx++
			m.dirty = true
		}
	}

	return store(m, ed), nil
}

func (m itemEditorModel) moveFocus(delta int) itemEditorModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m itemEditorModel) View(session *editor.Session) string {
	if m.editing {
		data := ""
		for i, f := range m.fields {
			data += f.label + ": [" + m.inputs[i].View() + "]"
			path := fmt.Sprintf("%s.%d.%s", m.listPath, m.editIdx, f.name)
			if warning := session.WarningAt(path); warning != "" {
				data += "  " + warnStyle.Render("! "+warning)
			}
			data += "\n"
		}
		return renderPage(m.title+" — edit", data, "tab next field  enter save  esc cancel")
	}

	cfg := session.Config()
	count := m.rowCount(cfg)

	data := ""
	if count == 0 {
		data = helpStyle.Render("no items")
	}
	for i := 0; i < count; i++ {
		label := m.rowLabel(cfg, session.EditLocale(), i)
		if label == "" {
			label = "(untitled)"
		}
		data += cursorFor(i == m.idx) + fitText(label, 48) + "\n"
	}

	return renderPage(m.title, data,
		"n new  enter edit  d remove  J/K reorder  esc back")
}
