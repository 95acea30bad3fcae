package memory

import (
	"context"
	"sort"
	"sync"

	"federation-payments/internal/core/domain"

	"github.com/google/uuid"
)

// LinkStore implements ports.PublicLinkRepository in memory.
type LinkStore struct {
	mu     sync.RWMutex
	links  map[uuid.UUID]*domain.PublicLink
	bySlug map[string]uuid.UUID
}

// NewLinkStore creates an empty store.
func NewLinkStore() *LinkStore {
	return &LinkStore{
		links:  make(map[uuid.UUID]*domain.PublicLink),
		bySlug: make(map[string]uuid.UUID),
	}
}

func (s *LinkStore) Create(_ context.Context, link *domain.PublicLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.bySlug[link.Slug]; taken {
		return domain.ErrSlugCollision
	}
	l := *link
	s.links[l.ID] = &l
	s.bySlug[l.Slug] = l.ID
	return nil
}

func (s *LinkStore) GetByID(_ context.Context, id uuid.UUID) (*domain.PublicLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.links[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *LinkStore) GetBySlug(ctx context.Context, slug string) (*domain.PublicLink, error) {
	s.mu.RLock()
	id, ok := s.bySlug[slug]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *LinkStore) SlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bySlug[slug]
	return ok, nil
}

func (s *LinkStore) ListByCobro(_ context.Context, cobroID int64) ([]domain.PublicLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PublicLink, 0)
	for _, l := range s.links {
		if l.CobroID == cobroID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *LinkStore) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Active = active
	return nil
}

func (s *LinkStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.bySlug, l.Slug)
	delete(s.links, id)
	return nil
}

func (s *LinkStore) IncrementAccess(_ context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.bySlug[slug]
	if !ok {
		return domain.ErrNotFound
	}
	s.links[id].AccessCount++
	return nil
}
