// Package jsonfile implements store.KV as one JSON file per key.
package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validKey = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Store keeps each key in <dir>/<key>.json.
type Store struct {
	dir string
}

// New creates dir (mode 0700) if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("jsonfile mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get implements store.KV.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if !validKey.MatchString(key) {
		return nil, false, fmt.Errorf("invalid key: %q", key)
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put implements store.KV. The write goes to a temp file in the same
// directory and is renamed over the target.
func (s *Store) Put(key string, data []byte) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid key: %q", key)
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Close implements store.KV.
func (s *Store) Close() error { return nil }
