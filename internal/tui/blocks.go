package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/compose"
	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/models"
)

type blocksModel struct {
	idx int
}

func newBlocksModel() blocksModel {
	return blocksModel{}
}

func (m blocksModel) clampCursor(session *editor.Session) blocksModel {
	count := len(session.Config().CustomBlocks)
	if m.idx >= count {
		m.idx = count - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m appModel) updateBlocks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	blocks := m.session.Config().CustomBlocks
	count := len(blocks)

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu

	case key.Matches(msg, keys.up):
		if m.blocks.idx > 0 {
			m.blocks.idx--
		}

	case key.Matches(msg, keys.down):
		if m.blocks.idx < count-1 {
			m.blocks.idx++
		}

	case key.Matches(msg, keys.newItem):
		if err := m.session.AppendBlock(models.BlockText, compose.AfterPosition(models.SectionHero)); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true
		m.blocks.idx = count
		m.blockForm = newBlockFormModel(m.session, count)
		m.currentScreen = screenBlockForm

	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		if count > 0 {
			m.blockForm = newBlockFormModel(m.session, m.blocks.idx)
			m.currentScreen = screenBlockForm
		}

	case key.Matches(msg, keys.toggle):
		if count > 0 {
			enabled := blocks[m.blocks.idx].IsEnabled()
			if err := m.session.SetBlockEnabled(m.blocks.idx, !enabled); err != nil {
				return m.withError(err.Error()), nil
			}
			m.dirty = true
		}

	case key.Matches(msg, keys.delete):
		if count > 0 {
			m.showConfirm = true
			m.confirm = confirmModel{message: fmt.Sprintf("Remove block %d (%s)?", m.blocks.idx+1, blocks[m.blocks.idx].Type)}
			m.pending = pendingConfirm{kind: confirmRemoveBlock, index: m.blocks.idx}
		}

	case key.Matches(msg, keys.moveUp):
		if m.blocks.idx > 0 {
			if err := m.session.MoveBlock(m.blocks.idx, editor.MoveUp); err != nil {
				return m.withError(err.Error()), nil
			}
			m.blocks.idx--
			m.dirty = true
		}

	case key.Matches(msg, keys.moveDown):
		if m.blocks.idx < count-1 {
			if err := m.session.MoveBlock(m.blocks.idx, editor.MoveDown); err != nil {
				return m.withError(err.Error()), nil
			}
			m.blocks.idx++
			m.dirty = true
		}
	}

	return m, nil
}

func (m blocksModel) View(session *editor.Session) string {
	blocks := session.Config().CustomBlocks

	data := ""
	if len(blocks) == 0 {
		data = helpStyle.Render("no custom blocks")
	}
	for i, b := range blocks {
		label := fmt.Sprintf("%s %-7s @ %s", onOff(b.IsEnabled()), b.Type, b.Position)
		if text := b.Props.Text.Resolve(session.EditLocale()); text != "" {
			label += "  " + fitText(text, 24)
		}
		data += cursorFor(i == m.idx) + label + "\n"
	}

	return renderPage("Custom blocks", data,
		"n new  enter edit  space toggle  d remove  J/K reorder  esc back")
}
