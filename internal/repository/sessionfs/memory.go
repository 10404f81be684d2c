package sessionfs

import "sync"

// MemoryStore is an in-process Store used by tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore -.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string][]byte{}}
}

// Load -.
func (s *MemoryStore) Load(id string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.records[id]
	if !ok {
		return nil, false, nil
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)

	return cp, true, nil
}

// Save -.
func (s *MemoryStore) Save(id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.records[id] = cp

	return nil
}

// Delete -.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)

	return nil
}
