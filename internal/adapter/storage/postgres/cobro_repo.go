package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"federation-payments/internal/core/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var cobroColumns = []string{
	"id", "club_id", "amount", "concept", "due_date", "state",
	"provider_ref", "preference_id", "created_at", "updated_at",
}

// CobroRepo implements ports.CobroRepository.
type CobroRepo struct {
	pool Pool
}

// NewCobroRepo creates a new CobroRepo.
func NewCobroRepo(pool Pool) *CobroRepo {
	return &CobroRepo{pool: pool}
}

// Create inserts a cobro and assigns its id.
func (r *CobroRepo) Create(ctx context.Context, c *domain.Cobro) error {
	query := `INSERT INTO cobros (club_id, amount, concept, due_date, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		c.ClubID, c.Amount, c.Concept, c.DueDate, string(c.State), c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert cobro: %w", err)
	}
	return nil
}

// GetByID fetches a cobro. A missing row yields domain.ErrNotFound.
func (r *CobroRepo) GetByID(ctx context.Context, id int64) (*domain.Cobro, error) {
	query, args, err := psql.Select(cobroColumns...).From("cobros").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cobro query: %w", err)
	}

	c, err := scanCobro(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cobro %d: %w", id, err)
	}
	return c, nil
}

// ListByState returns cobros whose state is one of states, oldest first.
func (r *CobroRepo) ListByState(ctx context.Context, states []domain.CobroState) ([]domain.Cobro, error) {
	names := lo.Map(states, func(s domain.CobroState, _ int) string { return string(s) })

	query, args, err := psql.Select(cobroColumns...).
		From("cobros").
		Where(sq.Eq{"state": names}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cobro list query: %w", err)
	}
	return r.list(ctx, query, args...)
}

// ListOverdue returns Pendiente cobros whose due date is before now.
func (r *CobroRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Cobro, error) {
	query, args, err := psql.Select(cobroColumns...).
		From("cobros").
		Where(sq.Eq{"state": string(domain.CobroStatePendiente)}).
		Where(sq.Lt{"due_date": now}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overdue query: %w", err)
	}
	return r.list(ctx, query, args...)
}

// ConditionalSetState writes next only if the stored state still equals
// expected. When the write does not apply, the state actually stored is
// returned so the caller can re-evaluate.
func (r *CobroRepo) ConditionalSetState(ctx context.Context, id int64, expected, next domain.CobroState) (domain.CobroState, bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cobros SET state = $1, updated_at = $2 WHERE id = $3 AND state = $4`,
		string(next), time.Now().UTC(), id, string(expected),
	)
	if err != nil {
		return "", false, fmt.Errorf("conditional update cobro %d: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return next, true, nil
	}

	var current string
	err = r.pool.QueryRow(ctx, `SELECT state FROM cobros WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, domain.ErrNotFound
		}
		return "", false, fmt.Errorf("read cobro %d state: %w", id, err)
	}
	return domain.CobroState(current), false, nil
}

// SetProviderRef records the provider payment id that resolved to the cobro.
func (r *CobroRepo) SetProviderRef(ctx context.Context, id int64, ref string) error {
	return r.setColumn(ctx, id, "provider_ref", ref)
}

// SetPreferenceID records the last checkout preference created for the cobro.
func (r *CobroRepo) SetPreferenceID(ctx context.Context, id int64, preferenceID string) error {
	return r.setColumn(ctx, id, "preference_id", preferenceID)
}

func (r *CobroRepo) setColumn(ctx context.Context, id int64, column, value string) error {
	query, args, err := psql.Update("cobros").
		Set(column, value).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", column, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cobro %d %s: %w", id, column, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CobroRepo) list(ctx context.Context, query string, args ...any) ([]domain.Cobro, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cobros: %w", err)
	}
	defer rows.Close()

	cobros := make([]domain.Cobro, 0)
	for rows.Next() {
		c, err := scanCobro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cobro: %w", err)
		}
		cobros = append(cobros, *c)
	}
	return cobros, rows.Err()
}

func scanCobro(row scanner) (*domain.Cobro, error) {
	c := &domain.Cobro{}
	err := row.Scan(
		&c.ID, &c.ClubID, &c.Amount, &c.Concept, &c.DueDate, &c.State,
		&c.ProviderRef, &c.PreferenceID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
