// Package store persists ciphertext blobs to the private directory and
// journals non-sensitive metadata about them in SQLite.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// filenameFormat is the second-resolution timestamp embedded in stored
// filenames. Two saves within the same second produce the same name and the
// second write overwrites the first.
const filenameFormat = "20060102150405"

// FileStore writes ciphertext blobs into a dedicated directory, one file per
// private thought.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create private dir: %w", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string { return s.dir }

// Save writes blob to private_thought_<YYYYMMDDHHMMSS>.enc and returns the
// path. An existing file with the same name is silently overwritten.
func (s *FileStore) Save(blob []byte) (string, error) {
	name := fmt.Sprintf("private_thought_%s.enc", s.now().Format(filenameFormat))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// List returns the paths of all stored .enc files. Order is not guaranteed.
func (s *FileStore) List() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.enc"))
	if err != nil {
		return nil, fmt.Errorf("list private dir: %w", err)
	}
	return paths, nil
}
