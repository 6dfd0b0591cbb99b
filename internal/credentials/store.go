package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes one credential blob per source under a directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name)+".json")
}

// Load decodes the named blob into v. A missing file is reported as
// os.ErrNotExist via the wrapped error.
func (s *Store) Load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read credential %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse credential %s: %w", name, err)
	}
	return nil
}

// Save rewrites the named blob atomically so a crash mid-write never leaves a
// truncated credential behind.
func (s *Store) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credential %s: %w", name, err)
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credential %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("replace credential %s: %w", name, err)
	}
	return nil
}
