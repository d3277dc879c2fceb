package store

import "sync"

// MemoryStore is a map-backed Blobs implementation for tests and local
// experiments. FailWrites simulates a store that is out of quota.
type MemoryStore struct {
	mu         sync.RWMutex
	docs       map[string][]byte
	failWrites bool
}

func NewMemory() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// FailWrites makes every subsequent Put return ErrUnavailable.
func (s *MemoryStore) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrUnavailable
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.docs[key] = stored
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
