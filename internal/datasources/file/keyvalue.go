// Package file implements a key-value store persisted as a single JSON document on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

// corruptSuffix names the copy an undecodable document is moved to before it is replaced.
const corruptSuffix = ".corrupt"

var _ datasources.KeyValueStore = (*KeyValueStore)(nil)

type KeyValueStore struct {
	mu   sync.Mutex
	path string
}

func NewKeyValueStore(path string) *KeyValueStore {
	return &KeyValueStore{path: path}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, _, err := s.read(ctx)
	if err != nil {
		return "", false, err
	}

	v, ok := values[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, corrupt, err := s.read(ctx)
	if err != nil {
		return err
	}
	if corrupt {
		if err := os.Rename(s.path, s.path+corruptSuffix); err != nil {
			return fmt.Errorf("setting aside unreadable key-value file: %w", err)
		}
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "moved unreadable key-value file aside",
			"path", s.path, "moved_to", s.path+corruptSuffix)
	}
	values[key] = value

	return s.write(values)
}

// read loads the document. A missing or empty file is an empty store, and so is
// one that does not decode: it reads as empty with corrupt set, and the next
// write moves it aside rather than failing every call.
func (s *KeyValueStore) read(ctx context.Context) (map[string]string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key-value file: %w", err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, false, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "key-value file unreadable, treating as empty",
			"path", s.path, "error", err)
		return map[string]string{}, true, nil
	}
	return values, false, nil
}

// write replaces the file atomically so a crash mid-write never truncates other keys.
func (s *KeyValueStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding key-value file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating key-value directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing key-value file: %w", err)
	}
	return nil
}
