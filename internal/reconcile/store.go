// Package reconcile merges fresh authoritative events with a bounded cache
// of completed games, so finals survive the provider's rolling scoreboard
// window.
package reconcile

import (
	"context"
	"sync"

	"github.com/fortuna/courtside/internal/model"
)

// CachedEvent wraps a completed event with its capture time in epoch
// milliseconds. One entry per event id; re-saving overwrites.
type CachedEvent struct {
	Game    model.Event `json:"game"`
	SavedAt int64       `json:"savedAt"`
}

// Store persists the completed-event cache as one id-keyed map.
type Store interface {
	Load(ctx context.Context) (map[string]CachedEvent, error)
	Save(ctx context.Context, entries map[string]CachedEvent) error
}

// MemoryStore keeps the cache in process. Used when Redis is not
// configured, and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]CachedEvent
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]CachedEvent{}}
}

// Load returns a copy of the stored entries.
func (m *MemoryStore) Load(_ context.Context) (map[string]CachedEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]CachedEvent, len(m.entries))
	for id, entry := range m.entries {
		out[id] = entry
	}
	return out, nil
}

// Save replaces the stored entries.
func (m *MemoryStore) Save(_ context.Context, entries map[string]CachedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]CachedEvent, len(entries))
	for id, entry := range entries {
		m.entries[id] = entry
	}
	return nil
}
