// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"fmt"
	"strconv"

	"github.com/siteforge-io/siteforge/models"
)

// Direction selects which neighbour a list item is swapped with.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// SetThemeColor stores a global theme color. The value is stored even when
// it fails the hex pattern; the violation is recorded as a warning.
func (s *Session) SetThemeColor(key, value string) error {
	path := "theme." + key
	s.checkColor(path, value)
	return s.setString(path, value)
}

// SetSiteText stores a site-level localized text field (e.g. "title",
// "footerText") in the current edit locale only.
func (s *Session) SetSiteText(field, value string) error {
	path := "site." + field + "." + string(s.editLocale)
	s.checkRequired(path, value)
	return s.setString(path, value)
}

// SetSiteField stores a non-localized site-level field such as logoNavbar.
func (s *Session) SetSiteField(field, value string) error {
	return s.setString("site."+field, value)
}

// SetSectionsOrder replaces the section ordering override wholesale. An
// empty list removes the override, restoring the canonical default order.
func (s *Session) SetSectionsOrder(keys []string) error {
	if len(keys) == 0 {
		doc, err := s.doc.Delete("site.sectionsOrder")
		if err != nil {
			return err
		}
		s.doc = doc
		return nil
	}

	doc, err := s.doc.Set("site.sectionsOrder", keys)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// SetSectionEnabled toggles a section's enabled flag.
func (s *Session) SetSectionEnabled(section models.SectionKind, enabled bool) error {
	doc, err := s.doc.Set("sections."+string(section)+".enabled", enabled)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// SetSectionColor stores a per-section color override for the given role.
func (s *Session) SetSectionColor(section models.SectionKind, role models.ColorRole, value string) error {
	path := "sections." + string(section) + ".colors." + string(role)
	s.checkColor(path, value)
	return s.setString(path, value)
}

// SetSectionText stores a section-level localized text field in the
// current edit locale only, e.g. SetSectionText(hero, "heading", v).
func (s *Session) SetSectionText(section models.SectionKind, field, value string) error {
	path := "sections." + string(section) + "." + field + "." + string(s.editLocale)
	return s.setString(path, value)
}

// SetSectionField stores a non-localized section field such as an image
// URL, e.g. SetSectionField(about, "image", v).
func (s *Session) SetSectionField(section models.SectionKind, field, value string) error {
	path := "sections." + string(section) + "." + field
	return s.setString(path, value)
}

// SetSectionURL stores a section link field with URL-shape validation.
func (s *Session) SetSectionURL(section models.SectionKind, field, value string) error {
	path := "sections." + string(section) + "." + field
	s.checkURL(path, value)
	return s.setString(path, value)
}

// AppendItem appends item to the list at listPath, e.g.
// AppendItem("sections.services.items", item).
func (s *Session) AppendItem(listPath string, item any) error {
	doc, err := s.doc.Set(listPath+".-1", item)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// UpdateItemText stores a localized text field of a list item in the
// current edit locale only.
func (s *Session) UpdateItemText(listPath string, index int, field, value string) error {
	path := itemPath(listPath, index) + "." + field + "." + string(s.editLocale)
	return s.setString(path, value)
}

// UpdateItemField stores a non-localized field of a list item.
func (s *Session) UpdateItemField(listPath string, index int, field string, value any) error {
	doc, err := s.doc.Set(itemPath(listPath, index)+"."+field, value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// UpdateItemURL stores a list item link field with URL-shape validation.
func (s *Session) UpdateItemURL(listPath string, index int, field, value string) error {
	path := itemPath(listPath, index) + "." + field
	s.checkURL(path, value)
	return s.setString(path, value)
}

// RemoveItem deletes the list item at index. Removal is destructive, so it
// runs only with the caller's confirmation; once confirmed it is
// unconditional. Returns whether the item was removed.
func (s *Session) RemoveItem(listPath string, index int, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if index < 0 || index >= s.listLen(listPath) {
		return false, nil
	}

	doc, err := s.doc.Delete(itemPath(listPath, index))
	if err != nil {
		return false, err
	}
	s.doc = doc
	return true, nil
}

// MoveItem swaps the item at index with its neighbour in the given
// direction. Moving the first item up or the last item down is a no-op:
// the list is left unchanged and no error is reported.
func (s *Session) MoveItem(listPath string, index int, dir Direction) error {
	j := index - 1
	if dir == MoveDown {
		j = index + 1
	}

	length := s.listLen(listPath)
	if index < 0 || index >= length || j < 0 || j >= length {
		return nil
	}

	a := s.doc.Get(itemPath(listPath, index)).Raw
	b := s.doc.Get(itemPath(listPath, j)).Raw

	doc, err := s.doc.SetRaw(itemPath(listPath, index), b)
	if err != nil {
		return err
	}
	doc, err = doc.SetRaw(itemPath(listPath, j), a)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// AppendBlock appends a custom block. New blocks start enabled, matching
// the dashboard's default insertion.
func (s *Session) AppendBlock(blockType models.BlockType, position string) error {
	block := map[string]any{
		"enabled":  true,
		"type":     string(blockType),
		"position": position,
		"props":    map[string]any{},
	}
	return s.AppendItem("customBlocks", block)
}

// SetBlockEnabled toggles a custom block's enabled flag.
func (s *Session) SetBlockEnabled(index int, enabled bool) error {
	return s.UpdateItemField("customBlocks", index, "enabled", enabled)
}

// SetBlockPosition moves a block to another insertion point.
func (s *Session) SetBlockPosition(index int, position string) error {
	return s.UpdateItemField("customBlocks", index, "position", position)
}

// SetBlockText stores a block's localized text prop in the current edit
// locale only.
func (s *Session) SetBlockText(index int, prop, value string) error {
	path := itemPath("customBlocks", index) + ".props." + prop + "." + string(s.editLocale)
	return s.setString(path, value)
}

// SetBlockProp stores a non-localized block prop.
func (s *Session) SetBlockProp(index int, prop string, value any) error {
	doc, err := s.doc.Set(itemPath("customBlocks", index)+".props."+prop, value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// SetBlockURL stores a block link prop with URL-shape validation.
func (s *Session) SetBlockURL(index int, prop, value string) error {
	path := itemPath("customBlocks", index) + ".props." + prop
	s.checkURL(path, value)
	return s.setString(path, value)
}

// MoveBlock swaps a block with its neighbour; boundary moves are no-ops.
func (s *Session) MoveBlock(index int, dir Direction) error {
	return s.MoveItem("customBlocks", index, dir)
}

// RemoveBlock deletes a block with the caller's confirmation.
func (s *Session) RemoveBlock(index int, confirmed bool) (bool, error) {
	return s.RemoveItem("customBlocks", index, confirmed)
}

func (s *Session) setString(path, value string) error {
	doc, err := s.doc.Set(path, value)
	if err != nil {
		return fmt.Errorf("update %q: %w", path, err)
	}
	s.doc = doc
	return nil
}

func (s *Session) listLen(listPath string) int {
	return int(s.doc.Get(listPath + ".#").Int())
}

func itemPath(listPath string, index int) string {
	return listPath + "." + strconv.Itoa(index)
}
