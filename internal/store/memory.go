package store

import (
	"sync"

	"github.com/moktak128bit/gagyebu/internal/models"
)

// MemoryStore is an in-memory LedgerStore used in tests and dry runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.Entry
}

// NewMemoryStore creates a MemoryStore seeded with the given entries.
func NewMemoryStore(entries []models.Entry) *MemoryStore {
	return &MemoryStore{entries: append([]models.Entry(nil), entries...)}
}

// Load returns a copy of the current snapshot.
func (s *MemoryStore) Load() ([]models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Entry(nil), s.entries...), nil
}

// Replace swaps in a new snapshot.
func (s *MemoryStore) Replace(entries []models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.Entry(nil), entries...)
	return nil
}
