// Package memory provides in-process stores for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"federation-payments/internal/core/domain"

	"github.com/samber/lo"
)

// CobroStore implements ports.CobroRepository in memory. Conditional writes
// are atomic under the store mutex, matching the SQL adapter's guarantees.
type CobroStore struct {
	mu     sync.RWMutex
	cobros map[int64]*domain.Cobro
	nextID int64
}

// NewCobroStore creates an empty store.
func NewCobroStore() *CobroStore {
	return &CobroStore{cobros: make(map[int64]*domain.Cobro)}
}

func (s *CobroStore) Create(_ context.Context, cobro *domain.Cobro) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cobro.ID == 0 {
		s.nextID++
		cobro.ID = s.nextID
	} else if cobro.ID > s.nextID {
		s.nextID = cobro.ID
	}
	now := time.Now().UTC()
	if cobro.CreatedAt.IsZero() {
		cobro.CreatedAt = now
	}
	cobro.UpdatedAt = now

	c := *cobro
	s.cobros[c.ID] = &c
	return nil
}

func (s *CobroStore) GetByID(_ context.Context, id int64) (*domain.Cobro, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cobros[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *CobroStore) ListByState(_ context.Context, states []domain.CobroState) ([]domain.Cobro, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Cobro, 0)
	for _, c := range s.cobros {
		if lo.Contains(states, c.State) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CobroStore) ListOverdue(_ context.Context, now time.Time) ([]domain.Cobro, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Cobro, 0)
	for _, c := range s.cobros {
		if c.IsOverdue(now) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CobroStore) ConditionalSetState(_ context.Context, id int64, expected, next domain.CobroState) (domain.CobroState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cobros[id]
	if !ok {
		return "", false, domain.ErrNotFound
	}
	if c.State != expected {
		return c.State, false, nil
	}
	c.State = next
	c.UpdatedAt = time.Now().UTC()
	return next, true, nil
}

func (s *CobroStore) SetProviderRef(_ context.Context, id int64, ref string) error {
	return s.update(id, func(c *domain.Cobro) { c.ProviderRef = &ref })
}

func (s *CobroStore) SetPreferenceID(_ context.Context, id int64, preferenceID string) error {
	return s.update(id, func(c *domain.Cobro) { c.PreferenceID = &preferenceID })
}

func (s *CobroStore) update(id int64, fn func(c *domain.Cobro)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cobros[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(c)
	c.UpdatedAt = time.Now().UTC()
	return nil
}
