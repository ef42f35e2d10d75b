// Package actor implements Actor persistence using PostgreSQL.
package actor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/timelog-bot/internal/adapter/postgres"
	"github.com/heartmarshall/timelog-bot/internal/domain"
)

var columns = []string{
	"id", "external_id", "display_name", "timezone", "is_bot",
	"refreshed_at", "created_at", "updated_at",
}

// Repo provides actor persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new actor repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type actorRow struct {
	ID          uuid.UUID `db:"id"`
	ExternalID  string    `db:"external_id"`
	DisplayName *string   `db:"display_name"`
	Timezone    string    `db:"timezone"`
	IsBot       bool      `db:"is_bot"`
	RefreshedAt time.Time `db:"refreshed_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r actorRow) toDomain() *domain.Actor {
	return &domain.Actor{
		ID:          r.ID,
		ExternalID:  r.ExternalID,
		DisplayName: r.DisplayName,
		Timezone:    r.Timezone,
		IsBot:       r.IsBot,
		RefreshedAt: r.RefreshedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByExternalID returns the actor with the platform id or domain.ErrNotFound.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.Actor, error) {
	query := postgres.Builder().
		Select(columns...).
		From("actors").
		Where(squirrel.Eq{"external_id": externalID})

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "actor", externalID)
	}
	return a, nil
}

// Upsert inserts the actor or overwrites its directory fields, stamping
// refreshed_at. Concurrent first references converge on one row.
func (r *Repo) Upsert(ctx context.Context, a domain.Actor) (*domain.Actor, error) {
	refreshed := a.RefreshedAt
	if refreshed.IsZero() {
		refreshed = time.Now()
	}

	query := postgres.Builder().
		Insert("actors").
		Columns("external_id", "display_name", "timezone", "is_bot", "refreshed_at").
		Values(a.ExternalID, a.DisplayName, a.Timezone, a.IsBot, refreshed).
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			display_name = COALESCE(EXCLUDED.display_name, actors.display_name),
			timezone = EXCLUDED.timezone,
			is_bot = EXCLUDED.is_bot,
			refreshed_at = EXCLUDED.refreshed_at,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", "))

	out, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "actor", a.ExternalID)
	}
	return out, nil
}

// MarkBot flags the actor as an automated account, creating it if needed.
func (r *Repo) MarkBot(ctx context.Context, externalID, timezone string) error {
	sql, args, err := postgres.Builder().
		Insert("actors").
		Columns("external_id", "timezone", "is_bot").
		Values(externalID, timezone, true).
		Suffix("ON CONFLICT (external_id) DO UPDATE SET is_bot = true, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark bot query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "actor", externalID)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Actor, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row actorRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}
