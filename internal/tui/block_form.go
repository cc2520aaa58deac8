package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/models"
)

var blockFormFields = []string{"type", "position", "text", "link", "src", "align"}

type blockFormModel struct {
	index  int
	inputs []textinput.Model
	focus  int
}

func newBlockFormModel(session *editor.Session, index int) blockFormModel {
	cfg := session.Config()

	var block models.Block
	if index >= 0 && index < len(cfg.CustomBlocks) {
		block = cfg.CustomBlocks[index]
	}

	values := []string{
		string(block.Type),
		block.Position,
		block.Props.Text.Resolve(session.EditLocale()),
		block.Props.Link,
		block.Props.Src,
		block.Props.Align,
	}

	inputs := make([]textinput.Model, len(blockFormFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].SetValue(values[i])
	}
	inputs[0].Placeholder = "text | button | image | spacer"
	inputs[1].Placeholder = "e.g. afterHero"
	inputs[0].Focus()

	return blockFormModel{index: index, inputs: inputs}
}

func (m appModel) updateBlockForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenBlocks
		return m, nil

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.blockForm = m.blockForm.moveFocus(1)
		return m, nil

	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.blockForm = m.blockForm.moveFocus(-1)
		return m, nil

	case key.Matches(msg, keys.enter):
		if err := m.blockForm.apply(m.session); err != nil {
			return m.withError(err.Error()), nil
		}
		m.dirty = true
		m.currentScreen = screenBlocks
		m.status = "block saved"
		return m, clearStatusLater()
	}

	var cmd tea.Cmd
	m.blockForm.inputs[m.blockForm.focus], cmd = m.blockForm.inputs[m.blockForm.focus].Update(msg)
	return m, cmd
}

func (m blockFormModel) moveFocus(delta int) blockFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m blockFormModel) apply(session *editor.Session) error {
	if blockType := strings.TrimSpace(m.inputs[0].Value()); blockType != "" {
		if err := session.UpdateItemField("customBlocks", m.index, "type", blockType); err != nil {
			return err
		}
	}

	if position := strings.TrimSpace(m.inputs[1].Value()); position != "" {
		if err := session.SetBlockPosition(m.index, position); err != nil {
			return err
		}
	}

	if err := session.SetBlockText(m.index, "text", m.inputs[2].Value()); err != nil {
		return err
	}
	if err := session.SetBlockURL(m.index, "link", m.inputs[3].Value()); err != nil {
		return err
	}
	if err := session.SetBlockURL(m.index, "src", m.inputs[4].Value()); err != nil {
		return err
	}
	if err := session.SetBlockProp(m.index, "align", m.inputs[5].Value()); err != nil {
		return err
	}

	return nil
}

func (m blockFormModel) View(session *editor.Session) string {
	labels := []string{"Type", "Position", "Text", "Link", "Image URL", "Align"}

	data := ""
	for i := range m.inputs {
		data += labels[i] + ": [" + m.inputs[i].View() + "]"
		if i == 3 || i == 4 {
			path := blockPropPath(m.index, blockFormFields[i])
			if warning := session.WarningAt(path); warning != "" {
				data += "  " + warnStyle.Render("! "+warning)
			}
		}
		data += "\n"
	}

	return renderPage("Block", data, "tab next field  enter save  esc cancel")
}

func blockPropPath(index int, prop string) string {
	return "customBlocks." + strconv.Itoa(index) + ".props." + prop
}
