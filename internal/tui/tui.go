// Package tui implements the dashboard: a terminal editor over the site
// configuration working copy. Edits accumulate in the editing session and
// reach disk or the remote store only through the save screen.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	session *editor.Session
	logger  *logger.Logger
}

func New(session *editor.Session, log *logger.Logger) (*TUI, error) {
	if session == nil {
		return nil, errors.New("no editing session")
	}
	return &TUI{session: session, logger: log}, nil
}

// Run drives the dashboard until the user quits. Unsaved edits are
// confirmed before exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
