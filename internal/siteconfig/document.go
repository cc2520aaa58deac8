// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"encoding/json"
	"fmt"

	"github.com/siteforge-io/siteforge/models"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is a site configuration document in its raw JSON form. All
// mutating operations return a new Document and leave the receiver intact,
// so holders of an old value never observe a half-applied edit.
type Document []byte

// EmptyDocument returns the empty configuration document.
func EmptyDocument() Document {
	return Document("{}")
}

// NewDocument validates raw as a JSON object and returns it as a Document.
func NewDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	if parsed := gjson.ParseBytes(raw); !parsed.IsObject() {
		return nil, ErrInvalidJSON
	}
	return Document(append([]byte(nil), raw...)), nil
}

// FromMap serializes a generic map form back into a Document.
func FromMap(m map[string]any) Document {
	raw, err := json.Marshal(m)
	if err != nil {
		return EmptyDocument()
	}
	return Document(raw)
}

// Map returns the document decoded into its generic map form, the shape the
// merge engine operates on. A malformed document decodes to an empty map.
func (d Document) Map() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(d, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// Get returns the value at a gjson path.
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d, path)
}

// GetString returns the string value at path, "" when absent.
func (d Document) GetString(path string) string {
	return d.Get(path).String()
}

// Set returns a new Document with value stored at path.
func (d Document) Set(path string, value any) (Document, error) {
	raw, err := sjson.SetBytes(d, path, value)
	if err != nil {
		return d, fmt.Errorf("set %q: %w", path, err)
	}
	return Document(raw), nil
}

// SetRaw returns a new Document with the raw JSON fragment stored at path.
func (d Document) SetRaw(path string, rawJSON string) (Document, error) {
	raw, err := sjson.SetRawBytes(d, path, []byte(rawJSON))
	if err != nil {
		return d, fmt.Errorf("set raw %q: %w", path, err)
	}
	return Document(raw), nil
}

// Delete returns a new Document with the value at path removed. Deleting a
// path that does not exist is a no-op, not an error.
func (d Document) Delete(path string) (Document, error) {
	raw, err := sjson.DeleteBytes(d, path)
	if err != nil {
		return d, fmt.Errorf("delete %q: %w", path, err)
	}
	return Document(raw), nil
}

// Clone returns an independent copy of the document.
func (d Document) Clone() Document {
	return Document(append([]byte(nil), d...))
}

// Pretty returns the document re-indented for export.
func (d Document) Pretty() []byte {
	var buf map[string]any
	if err := json.Unmarshal(d, &buf); err != nil {
		return append([]byte(nil), d...)
	}
	out, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return append([]byte(nil), d...)
	}
	return out
}

// Decode unmarshals the document into the typed model. Unknown fields are
// ignored; missing fields come back as zero values, so callers downstream
// of the loader never re-guard individual reads.
func (d Document) Decode() (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := json.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("decode site config: %w", err)
	}
	return &cfg, nil
}

// Merge deep-merges override onto the receiver per DeepMerge and returns
// the merged document.
func (d Document) Merge(override Document) Document {
	return FromMap(DeepMerge(d.Map(), override.Map()))
}
