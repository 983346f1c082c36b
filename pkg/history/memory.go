package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-memory slice. State is lost on
// restart; intended for tests and deployments without persistence.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists a record.
func (m *MemoryStore) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

// Get retrieves one record by ID. Returns nil if not found.
func (m *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

// List returns records matching the filter, newest first.
func (m *MemoryStore) List(_ context.Context, filter Filter) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Record
	for i := len(m.records) - 1; i >= 0; i-- {
		rec := m.records[i]
		if filter.ObjectType != "" && rec.ObjectType != filter.ObjectType {
			continue
		}
		if filter.OnlyInvalid && rec.IsValid {
			continue
		}
		cp := *rec
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// Prune removes records created before the cutoff.
func (m *MemoryStore) Prune(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0]
	pruned := 0
	for _, rec := range m.records {
		if rec.CreatedAt.Before(olderThan) {
			pruned++
			continue
		}
		kept = append(kept, rec)
	}
	m.records = kept
	return pruned, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
