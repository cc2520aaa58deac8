// SPDX-License-Identifier: Apache-2.0

// Package editor implements the dashboard's mutation layer: a working copy
// of the configuration document, path-scoped update operations with
// advisory validation, and the commit path through the persistence gateway.
package editor

import (
	"context"

	"github.com/siteforge-io/siteforge/internal/gateway"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/models"
)

// Session owns an editing working copy of the configuration. The copy is
// cloned once from the live document when the session opens and never
// aliases it, so in-progress edits cannot leak into the rendered site
// before an explicit commit.
//
// A Session is exclusively owned by one editor instance; it is not safe
// for concurrent use.
type Session struct {
	doc        siteconfig.Document
	editLocale models.Locale
	warnings   map[string]string
	gw         *gateway.Gateway
	logger     *logger.Logger
}

// NewSession clones live into a fresh working copy.
func NewSession(live siteconfig.Document, editLocale models.Locale, gw *gateway.Gateway, log *logger.Logger) *Session {
	if editLocale == "" {
		editLocale = models.LocaleEN
	}

	return &Session{
		doc:        live.Clone(),
		editLocale: editLocale,
		warnings:   make(map[string]string),
		gw:         gw,
		logger:     log,
	}
}

// Document returns the current working copy.
func (s *Session) Document() siteconfig.Document {
	return s.doc
}

// Config returns the working copy decoded into the typed model, for
// display. A decode failure yields an empty config rather than an error:
// the editor never dead-ends on a partially malformed document.
func (s *Session) Config() *models.SiteConfig {
	cfg, err := s.doc.Decode()
	if err != nil {
		s.logger.Warn().Err(err).Msg("working copy failed to decode")
		return &models.SiteConfig{}
	}
	return cfg
}

// EditLocale returns the locale text edits are scoped to.
func (s *Session) EditLocale() models.Locale {
	return s.editLocale
}

// SetEditLocale switches the locale text edits are scoped to. Values in
// the other locale are left untouched by subsequent edits.
func (s *Session) SetEditLocale(locale models.Locale) {
	s.editLocale = locale
}

// Replace swaps the entire working copy, e.g. after a confirmed import.
// Pending warnings are discarded with the replaced content.
func (s *Session) Replace(doc siteconfig.Document) {
	s.doc = doc.Clone()
	s.warnings = make(map[string]string)
}

// Warnings returns the current advisory validation warnings keyed by
// document path. Warnings never block a value from being stored.
func (s *Session) Warnings() map[string]string {
	out := make(map[string]string, len(s.warnings))
	for path, msg := range s.warnings {
		out[path] = msg
	}
	return out
}

// WarningAt returns the warning for a path, "" when the value is clean.
func (s *Session) WarningAt(path string) string {
	return s.warnings[path]
}

// CommitResult reports the outcome of a commit. The local and remote saves
// are independent: a remote failure neither rolls back nor blocks the
// local save.
type CommitResult struct {
	LocalErr        error
	RemoteAttempted bool
	RemoteErr       error
}

// Ok reports whether every attempted save succeeded.
func (r CommitResult) Ok() bool {
	return r.LocalErr == nil && r.RemoteErr == nil
}

// Commit persists the working copy: always to the local override slot, and
// additionally to the remote store when an endpoint is configured. The
// working copy is left intact either way, so a failed save loses nothing.
func (s *Session) Commit(ctx context.Context) CommitResult {
	var res CommitResult

	res.LocalErr = s.gw.SaveLocal(s.doc)
	if res.LocalErr != nil {
		s.logger.Err(res.LocalErr).Msg("local save failed")
	}

	if s.gw.RemoteConfigured() {
		res.RemoteAttempted = true
		res.RemoteErr = s.gw.SaveRemote(ctx, s.doc)
		if res.RemoteErr != nil {
			s.logger.Err(res.RemoteErr).Msg("remote save failed")
		}
	}

	return res
}

// Export writes the working copy, pretty-printed, to filename.
func (s *Session) Export(filename string) error {
	return s.gw.ExportToFile(s.doc, filename)
}

// Import parses filename as a configuration document and returns it
// without touching the working copy. Callers confirm, then Replace.
func (s *Session) Import(filename string) (siteconfig.Document, error) {
	return s.gw.ImportFromFile(filename)
}
