// Package category implements Category persistence using PostgreSQL.
// Names are matched case-insensitively through the lower(name) unique index.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/timelog-bot/internal/adapter/postgres"
	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Repo provides category persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// GetByName returns the category whose name matches case-insensitively.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := postgres.Builder().
		Select("id", "name", "created_at").
		From("categories").
		Where(squirrel.Expr("lower(name) = lower(?)", name))

	c, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "category", name)
	}
	return c, nil
}

// Create inserts a new category. A case-insensitive duplicate yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	query := postgres.Builder().
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name, created_at")

	c, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "category", name)
	}
	return c, nil
}

// FindOrCreate returns the category named name, creating it when absent.
// Concurrent callers with the same name all receive the same row.
func (r *Repo) FindOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	insert := postgres.Builder().
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT ((lower(name))) DO NOTHING RETURNING id, name, created_at")

	c, err := r.getOne(ctx, insert)
	if err == nil {
		return c, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "category", name)
	}

	return r.GetByName(ctx, name)
}

// ListNames returns every category name in case-insensitive order.
func (r *Repo) ListNames(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder().
		Select("name").
		From("categories").
		OrderBy("lower(name) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	var names []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}
