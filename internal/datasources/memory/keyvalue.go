package memory

import (
	"context"
	"sync"

	"github.com/jbeshir/newspulse/internal/datasources"
)

var _ datasources.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore keeps values in process memory. Contents are lost on restart.
type KeyValueStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{values: make(map[string]string)}
}

func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
