package kvstore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store with one file per key under a root directory.
// Writes go through a temp file and rename so a crashed write never leaves a
// torn value behind.
type FileStore struct {
	root string
}

// NewFileStore creates a file-backed store rooted at dir.
// The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{root: dir}, nil
}

// Get retrieves the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return data, nil
}

// Set stores value under key. The write is atomic: the value lands in a temp
// file first and is renamed into place.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	target := s.path(key)
	tmp, err := os.CreateTemp(s.root, ".tmp-*")
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWrite, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}

// Delete removes the value stored under key. Absent keys are a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}

// path maps a key to a filename, keeping readable keys readable while making
// arbitrary keys filesystem-safe.
func (s *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)

	// Suffix with a hash so distinct keys never collide after sanitization
	h := fnv.New32a()
	h.Write([]byte(key))
	name := safe + "-" + hex.EncodeToString(h.Sum(nil)) + ".json"
	return filepath.Join(s.root, name)
}
