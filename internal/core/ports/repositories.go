package ports

import (
	"context"
	"time"

	"federation-payments/internal/core/domain"

	"github.com/google/uuid"
)

// CobroRepository defines persistence operations for cobros.
// ConditionalSetState is the only way state changes are written: the store
// applies next only if the stored state still equals expected.
type CobroRepository interface {
	Create(ctx context.Context, cobro *domain.Cobro) error
	GetByID(ctx context.Context, id int64) (*domain.Cobro, error)
	ListByState(ctx context.Context, states []domain.CobroState) ([]domain.Cobro, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Cobro, error)
	// ConditionalSetState returns the state observed at write time and
	// whether the write was applied. A missing cobro yields domain.ErrNotFound.
	ConditionalSetState(ctx context.Context, id int64, expected, next domain.CobroState) (domain.CobroState, bool, error)
	SetProviderRef(ctx context.Context, id int64, ref string) error
	SetPreferenceID(ctx context.Context, id int64, preferenceID string) error
}

// PublicLinkRepository defines persistence operations for public payment links.
// Create returns domain.ErrSlugCollision when the slug is already taken.
type PublicLinkRepository interface {
	Create(ctx context.Context, link *domain.PublicLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PublicLink, error)
	GetBySlug(ctx context.Context, slug string) (*domain.PublicLink, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListByCobro(ctx context.Context, cobroID int64) ([]domain.PublicLink, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementAccess(ctx context.Context, slug string) error
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
