package slot

import (
	"context"
	"sync"
)

// MemorySlot keeps blobs in process memory. Nothing survives the process.
type MemorySlot struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemory() *MemorySlot {
	return &MemorySlot{blobs: make(map[string][]byte)}
}

func (s *MemorySlot) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemorySlot) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemorySlot) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
