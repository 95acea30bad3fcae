package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxSlugAttempts = 4

// LinkServiceImpl implements ports.LinkService.
type LinkServiceImpl struct {
	links  ports.PublicLinkRepository
	cobros ports.CobroRepository
	log    zerolog.Logger
	now    func() time.Time
}

// NewLinkService creates a new LinkServiceImpl.
func NewLinkService(links ports.PublicLinkRepository, cobros ports.CobroRepository, log zerolog.Logger) *LinkServiceImpl {
	return &LinkServiceImpl{
		links:  links,
		cobros: cobros,
		log:    log,
		now:    time.Now,
	}
}

// GenerateLink creates a public link for a cobro. An empty concept falls back
// to the cobro's own concept. A taken slug is never overwritten: a timestamp
// suffix is appended instead, and a unique violation on insert is retried the
// same way.
func (s *LinkServiceImpl) GenerateLink(ctx context.Context, cobroID int64, concept string, expiresAt *time.Time) (*domain.PublicLink, error) {
	cobro, err := s.cobros.GetByID(ctx, cobroID)
	if err != nil {
		return nil, fmt.Errorf("load cobro %d: %w", cobroID, err)
	}
	if strings.TrimSpace(concept) == "" {
		concept = cobro.Concept
	}

	base := BaseSlug(concept, cobroID)
	slug := base

	taken, err := s.links.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check slug %q: %w", slug, err)
	}
	if taken {
		slug = disambiguate(base, s.now())
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		link := &domain.PublicLink{
			ID:        uuid.New(),
			CobroID:   cobroID,
			Slug:      slug,
			Active:    true,
			ExpiresAt: expiresAt,
			CreatedAt: s.now().UTC(),
		}

		err := s.links.Create(ctx, link)
		if err == nil {
			s.log.Info().Int64("cobro_id", cobroID).Str("slug", slug).Msg("public link generated")
			return link, nil
		}
		if !errors.Is(err, domain.ErrSlugCollision) {
			return nil, fmt.Errorf("create link: %w", err)
		}

		s.log.Debug().Str("slug", slug).Int("attempt", attempt+1).Msg("slug taken, retrying with suffix")
		slug = disambiguate(base, s.now().Add(time.Duration(attempt+1)*time.Millisecond))
	}

	return nil, fmt.Errorf("cobro %d: %w", cobroID, domain.ErrSlugCollision)
}

// GetBySlug returns the link and its cobro when the link is usable. Missing,
// inactive and expired links all yield domain.ErrNotFound.
func (s *LinkServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.PublicLink, *domain.Cobro, error) {
	link, err := s.links.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if !link.IsUsable(s.now()) {
		return nil, nil, domain.ErrNotFound
	}

	cobro, err := s.cobros.GetByID(ctx, link.CobroID)
	if err != nil {
		return nil, nil, fmt.Errorf("load cobro %d: %w", link.CobroID, err)
	}
	return link, cobro, nil
}

// ListByCobro returns every link of a cobro, usable or not.
func (s *LinkServiceImpl) ListByCobro(ctx context.Context, cobroID int64) ([]domain.PublicLink, error) {
	return s.links.ListByCobro(ctx, cobroID)
}

// Toggle activates or deactivates a link.
func (s *LinkServiceImpl) Toggle(ctx context.Context, id uuid.UUID, active bool) (*domain.PublicLink, error) {
	if err := s.links.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.links.GetByID(ctx, id)
}

// Delete removes a link.
func (s *LinkServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.links.Delete(ctx, id)
}

// RegisterAccess counts a visit. Failures are logged and swallowed.
func (s *LinkServiceImpl) RegisterAccess(ctx context.Context, slug string) {
	if err := s.links.IncrementAccess(ctx, slug); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("failed to register link access")
	}
}
