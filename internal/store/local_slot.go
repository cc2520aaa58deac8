package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalSlot is the locally-persisted override store: one file holding the
// full serialized configuration document. Presence of the file means an
// override exists and takes priority over the remote and base sources.
type LocalSlot struct {
	path string
	mu   sync.Mutex
}

// NewLocalSlot returns a slot backed by the given file path.
func NewLocalSlot(path string) *LocalSlot {
	return &LocalSlot{path: path}
}

// Read returns the slot content and whether the slot holds anything.
// A missing file is an empty slot, not an error.
func (s *LocalSlot) Read() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read override slot: %w", err)
	}
	return data, true, nil
}

// Write replaces the slot content. The write goes through a temp file and
// rename so a concurrent Read never observes a torn document.
func (s *LocalSlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create override slot dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".siteconfig-*")
	if err != nil {
		return fmt.Errorf("create override slot temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write override slot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close override slot temp file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace override slot: %w", err)
	}
	return nil
}

// Clear removes the override, making the slot empty. Clearing an already
// empty slot is a no-op.
func (s *LocalSlot) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear override slot: %w", err)
	}
	return nil
}
