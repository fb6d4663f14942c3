// Package store maps user identifiers onto image files in a flat directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("image not found")

type Store struct {
	dir string
	ext string
}

func New(dir, ext string) *Store {
	return &Store{dir: dir, ext: ext}
}

// NormalizeID trims the surrounding whitespace a user tends to type.
func NormalizeID(raw string) string {
	return strings.TrimSpace(raw)
}

// Path builds the candidate file for id without touching the filesystem.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id+s.ext)
}

// Lookup returns the path of the record for id, or ErrNotFound.
func (s *Store) Lookup(id string) (string, error) {
	if id == "" || filepath.Base(id) != id || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	path := s.Path(id)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return path, nil
}
