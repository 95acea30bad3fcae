package postgres

import (
	"context"
	"errors"
	"fmt"

	"federation-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const linkColumns = `id, cobro_id, slug, active, expires_at, access_count, created_at`

// LinkRepo implements ports.PublicLinkRepository.
type LinkRepo struct {
	pool Pool
}

// NewLinkRepo creates a new LinkRepo.
func NewLinkRepo(pool Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

// Create inserts a link. A slug already present yields domain.ErrSlugCollision.
func (r *LinkRepo) Create(ctx context.Context, l *domain.PublicLink) error {
	query := `INSERT INTO public_links (id, cobro_id, slug, active, expires_at, access_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.CobroID, l.Slug, l.Active, l.ExpiresAt, l.AccessCount, l.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %q: %w", l.Slug, domain.ErrSlugCollision)
		}
		return fmt.Errorf("insert public link: %w", err)
	}
	return nil
}

// GetByID fetches a link by id.
func (r *LinkRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PublicLink, error) {
	return r.getOne(ctx, `SELECT `+linkColumns+` FROM public_links WHERE id = $1`, id)
}

// GetBySlug fetches a link by slug, whatever its active flag.
func (r *LinkRepo) GetBySlug(ctx context.Context, slug string) (*domain.PublicLink, error) {
	return r.getOne(ctx, `SELECT `+linkColumns+` FROM public_links WHERE slug = $1`, slug)
}

// SlugExists reports whether any link, active or not, uses slug.
func (r *LinkRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM public_links WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// ListByCobro returns the links of a cobro, oldest first.
func (r *LinkRepo) ListByCobro(ctx context.Context, cobroID int64) ([]domain.PublicLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+linkColumns+` FROM public_links WHERE cobro_id = $1 ORDER BY created_at`, cobroID)
	if err != nil {
		return nil, fmt.Errorf("list public links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.PublicLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan public link: %w", err)
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

// SetActive flips the active flag.
func (r *LinkRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE public_links SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update public link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a link.
func (r *LinkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM public_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete public link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementAccess bumps the visit counter in a single statement.
func (r *LinkRepo) IncrementAccess(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE public_links SET access_count = access_count + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("increment link access: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LinkRepo) getOne(ctx context.Context, query string, arg any) (*domain.PublicLink, error) {
	l, err := scanLink(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get public link: %w", err)
	}
	return l, nil
}

func scanLink(row scanner) (*domain.PublicLink, error) {
	l := &domain.PublicLink{}
	err := row.Scan(&l.ID, &l.CobroID, &l.Slug, &l.Active, &l.ExpiresAt, &l.AccessCount, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
