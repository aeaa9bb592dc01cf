package recent

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNoPath is returned when a persistent store is opened without a path.
var ErrNoPath = errors.New("recent: store path is required")

// Store persists the recent list.
type Store interface {
	// Load returns the stored entries, most recent first. A store that has
	// never been saved returns no entries and no error.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the stored entries.
	Save(ctx context.Context, entries []Entry) error
	Close() error
}

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: slices.Clone(entries)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries), nil
}

func (s *MemoryStore) Save(ctx context.Context, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = slices.Clone(entries)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
