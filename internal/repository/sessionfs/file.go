// Package sessionfs persists session records, one JSON file per identifier.
package sessionfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	_dirPerm  = 0o700
	_filePerm = 0o600
)

// FileStore keeps one <id>.json file per session under a fixed directory.
// Writes are synchronous and unlocked: concurrent requests for the same
// identifier are last-write-wins, a known limitation carried over from the
// original design.
type FileStore struct {
	dir string
}

// NewFileStore creates the session directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, _dirPerm); err != nil {
		return nil, err
	}

	return &FileStore{dir: dir}, nil
}

// Load -.
func (s *FileStore) Load(id string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return raw, true, nil
}

// Save -.
func (s *FileStore) Save(id string, data []byte) error {
	return os.WriteFile(s.path(id), data, _filePerm)
}

// Delete -.
func (s *FileStore) Delete(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func (s *FileStore) path(id string) string {
	// filepath.Base strips any path separators a hostile cookie could carry
	return filepath.Join(s.dir, filepath.Base(id)+".json")
}
