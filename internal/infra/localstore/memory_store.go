package localstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
)

// memoryStore is an in-memory Store used by tests and the seed tool's dry
// runs. It round-trips values through JSON so behavior matches the file store.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemory creates an empty in-memory store.
func NewMemory() Store {
	return &memoryStore{values: make(map[string]json.RawMessage)}
}

func (s *memoryStore) Get(ctx context.Context, key string, out any) error {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return ErrKeyNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode store key %s", key)
	}

	return nil
}

func (s *memoryStore) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode store key %s", key)
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return nil
}
