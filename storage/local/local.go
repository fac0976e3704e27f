// Package local serves templates from a directory on disk.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/charsheet/core"
)

// Store reads templates from Dir. An id names a file directly inside Dir,
// with or without its ".md" extension.
type Store struct {
	Dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Template returns the contents of the template file named id.
func (s *Store) Template(_ context.Context, id string) (string, error) {
	path, err := s.resolve(id)
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	return string(data), nil
}

// Revision reports the file's modification time and size.
func (s *Store) Revision(_ context.Context, id string) (string, error) {
	path, err := s.resolve(id)
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	return fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size()), nil
}

func (s *Store) resolve(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid template id %q", id)
	}
	for _, name := range []string{id, id + ".md"} {
		path := filepath.Join(s.Dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("template %q: %w", id, os.ErrNotExist)
}
