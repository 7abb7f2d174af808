// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FileStore keeps one JSON document per key in a directory.
type FileStore struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, &DatabaseError{Op: "open", Err: fmt.Errorf("mkdir %s: %w", dir, err)}
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// NewMemoryStore returns a FileStore backed by an in-memory filesystem.
func NewMemoryStore() *FileStore {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/kv", 0o755)
	return &FileStore{fs: fs, dir: "/kv"}
}

func (s *FileStore) Close() error {
	return nil
}

// Get implements Store.
func (s *FileStore) Get(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &DatabaseError{Op: "get", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, &DecodeError{Key: key, Err: err}
	}
	return true, nil
}

// Put implements Store. The document is written to a temporary file and
// renamed over the old one.
func (s *FileStore) Put(_ context.Context, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("kv encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return &DatabaseError{Op: "put", Key: key, Err: err}
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return &DatabaseError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
