package store

import (
	"context"
	"sync"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// MemoryStore is an in-process plot store for development and tests.
// Plots are copied on the way in and on the way out, so callers can
// never mutate stored state through a returned pointer.
type MemoryStore struct {
	mu    sync.RWMutex
	plots map[string]*Plot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plots: make(map[string]*Plot)}
}

func (s *MemoryStore) Create(ctx context.Context, p *Plot) error {
	if err := normalize(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plots[p.ID]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "plot %q already exists", p.ID)
	}
	s.plots[p.ID] = p.Clone()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plots[id]
	if !ok {
		return nil, notFound(id)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Plot, 0, len(s.plots))
	for _, p := range s.plots {
		out = append(out, p.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plots[id]; !ok {
		return notFound(id)
	}
	delete(s.plots, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
