package tui

import (
	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
)

type committedMsg struct {
	result editor.CommitResult
}

type exportedMsg struct {
	filename string
	err      error
}

type importedMsg struct {
	doc siteconfig.Document
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
