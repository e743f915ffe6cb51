package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is an in-process backend used in tests and for running
// without external storage. Contents are lost on restart, which the seed
// fallback turns into a fresh default state.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, name string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs[name] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, name)
	return nil
}
