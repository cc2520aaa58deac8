package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/models"
)

type screen int

const (
	screenMenu screen = iota
	screenTheme
	screenSections
	screenSectionColors
	screenServices
	screenLinks
	screenBlocks
	screenBlockForm
	screenSave
)

// confirmKind names the destructive action waiting behind the confirm
// overlay.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmQuit
	confirmRemoveItem
	confirmRemoveBlock
	confirmImport
)

type pendingConfirm struct {
	kind     confirmKind
	listPath string
	index    int
	doc      siteconfig.Document
}

type appModel struct {
	ctx     context.Context
	session *editor.Session

	currentScreen screen

	menu          menuModel
	theme         themeModel
	sections      sectionsModel
	sectionColors sectionColorsModel
	services      itemEditorModel
	links         itemEditorModel
	blocks        blocksModel
	blockForm     blockFormModel
	save          saveModel

	showConfirm bool
	confirm     confirmModel
	pending     pendingConfirm

	showError    bool
	errorOverlay errorOverlayModel

	status     string
	dirty      bool
	quitByUser bool
}

func newAppModel(ctx context.Context, session *editor.Session) appModel {
	return appModel{
		ctx:           ctx,
		session:       session,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		theme:         newThemeModel(session),
		sections:      newSectionsModel(session),
		services:      newServicesEditor(session),
		links:         newLinksEditor(session),
		blocks:        newBlocksModel(),
		save:          newSaveModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateScreen(msg)

	case committedMsg:
		if msg.result.Ok() {
			m.dirty = false
			m.status = "saved"
			if msg.result.RemoteAttempted {
				m.status = "saved locally and remotely"
			}
			return m, clearStatusLater()
		}
		return m.withError(commitError(msg.result)), nil

	case exportedMsg:
		if msg.err != nil {
			return m.withError("export failed: " + msg.err.Error()), nil
		}
		m.status = "exported to " + msg.filename
		return m, clearStatusLater()

	case importedMsg:
		if msg.err != nil {
			return m.withError("import failed: " + msg.err.Error()), nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: "Replace the working copy with the imported file?"}
		m.pending = pendingConfirm{kind: confirmImport, doc: msg.doc}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.withError("copy failed: " + msg.err.Error()), nil
		}
		m.status = "copied to clipboard"
		return m, clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		return m.runPending()
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pending = pendingConfirm{}
	}
	return m, nil
}

func (m appModel) runPending() (tea.Model, tea.Cmd) {
	pending := m.pending
	m.pending = pendingConfirm{}

	switch pending.kind {
	case confirmQuit:
		m.quitByUser = true
		return m, tea.Quit

	case confirmRemoveItem:
		if _, err := m.session.RemoveItem(pending.listPath, pending.index, true); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true
		m.services = m.services.clampCursor(m.session)
		m.links = m.links.clampCursor(m.session)

	case confirmRemoveBlock:
		if _, err := m.session.RemoveBlock(pending.index, true); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true
		m.blocks = m.blocks.clampCursor(m.session)

	case confirmImport:
		m.session.Replace(pending.doc)
		m.dirty = true
		m.theme = newThemeModel(m.session)
		m.sections = newSectionsModel(m.session)
		m.status = "imported"
		return m, clearStatusLater()
	}

	return m, nil
}

func (m appModel) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenTheme:
		return m.updateTheme(msg)
	case screenSections:
		return m.updateSections(msg)
	case screenSectionColors:
		return m.updateSectionColors(msg)
	case screenServices:
		return m.updateItems(msg, screenServices)
	case screenLinks:
		return m.updateItems(msg, screenLinks)
	case screenBlocks:
		return m.updateBlocks(msg)
	case screenBlockForm:
		return m.updateBlockForm(msg)
	case screenSave:
		return m.updateSave(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View(m.session, m.dirty)
	case screenTheme:
		body = m.theme.View(m.session)
	case screenSections:
		body = m.sections.View(m.session)
	case screenSectionColors:
		body = m.sectionColors.View(m.session)
	case screenServices:
		body = m.services.View(m.session)
	case screenLinks:
		body = m.links.View(m.session)
	case screenBlocks:
		body = m.blocks.View(m.session)
	case screenBlockForm:
		body = m.blockForm.View(m.session)
	case screenSave:
		body = m.save.View(m.session, m.status)
	}

	if m.status != "" && m.currentScreen != screenSave {
		body += "\n\n" + helpStyle.Render(m.status)
	}
	return appStyle.Render(body)
}

func (m appModel) withError(message string) appModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
	return m
}

// toggleEditLocale flips the locale text edits apply to.
func (m appModel) toggleEditLocale() appModel {
	if m.session.EditLocale() == models.LocaleEN {
		m.session.SetEditLocale(models.LocaleAR)
	} else {
		m.session.SetEditLocale(models.LocaleEN)
	}
	return m
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func commitError(result editor.CommitResult) string {
	if result.LocalErr != nil {
		return "local save failed: " + result.LocalErr.Error()
	}
	if result.RemoteErr != nil {
		return "remote save failed: " + result.RemoteErr.Error()
	}
	return "save failed"
}
