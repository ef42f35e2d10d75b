// Package ledger implements the idempotent event ledger using PostgreSQL.
//
// The unique constraint on event_id is the only exclusivity primitive: every
// insert is a conditional insert, never a check followed by an insert.
package ledger

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

const table = "event_records"

var columns = []string{
	"id", "event_id", "kind", "correlation_key", "channel_id",
	"actor_id", "original_text", "pending_data", "created_at",
}

// Repo provides event ledger persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type recordRow struct {
	ID             uuid.UUID `db:"id"`
	EventID        *string   `db:"event_id"`
	Kind           string    `db:"kind"`
	CorrelationKey *string   `db:"correlation_key"`
	ChannelID      *string   `db:"channel_id"`
	ActorID        *string   `db:"actor_id"`
	OriginalText   *string   `db:"original_text"`
	PendingData    []byte    `db:"pending_data"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r recordRow) toDomain() *domain.EventRecord {
	return &domain.EventRecord{
		ID:             r.ID,
		EventID:        r.EventID,
		Kind:           domain.EventKind(r.Kind),
		CorrelationKey: r.CorrelationKey,
		ChannelID:      r.ChannelID,
		ActorID:        r.ActorID,
		OriginalText:   r.OriginalText,
		PendingData:    r.PendingData,
		CreatedAt:      r.CreatedAt,
	}
}

// RecordIfNew inserts a marker for m.EventID. It returns created=false with a
// nil record when another delivery already recorded the same id.
func (r *Repo) RecordIfNew(ctx context.Context, m domain.EventMarker) (*domain.EventRecord, bool, error) {
	if m.EventID == "" {
		return nil, false, fmt.Errorf("event_record: %w", domain.NewValidationError("event_id", "required"))
	}

	query := postgres.Builder().
		Insert(table).
		Columns("event_id", "kind", "correlation_key", "channel_id", "actor_id", "original_text").
		Values(m.EventID, string(m.Kind), nullable(m.CorrelationKey), nullable(m.ChannelID), nullable(m.ActorID), nullable(m.OriginalText)).
		Suffix("ON CONFLICT (event_id) DO NOTHING RETURNING " + joinColumns())

	rec, err := r.getOne(ctx, query)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, postgres.MapError(err, "event_record", m.EventID)
	}
	return rec, true, nil
}

// PutPendingSelection upserts the pending-selection record for
// p.CorrelationKey. A repeated call replaces the payload in place.
func (r *Repo) PutPendingSelection(ctx context.Context, p domain.PendingRecord) (*domain.EventRecord, error) {
	if p.CorrelationKey == "" {
		return nil, fmt.Errorf("pending_selection: %w", domain.NewValidationError("correlation_key", "required"))
	}

	query := postgres.Builder().
		Insert(table).
		Columns("event_id", "kind", "correlation_key", "channel_id", "actor_id", "original_text", "pending_data").
		Values(
			domain.PendingEventIDPrefix+p.CorrelationKey,
			string(domain.EventKindAwaitingSelection),
			p.CorrelationKey,
			nullable(p.ChannelID),
			nullable(p.ActorID),
			nullable(p.OriginalText),
			p.Payload,
		).
		Suffix(`ON CONFLICT (correlation_key) WHERE kind = 'awaiting_selection' DO UPDATE SET
			channel_id = EXCLUDED.channel_id,
			actor_id = EXCLUDED.actor_id,
			original_text = EXCLUDED.original_text,
			pending_data = EXCLUDED.pending_data,
			created_at = now()
		RETURNING ` + joinColumns())

	rec, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "pending_selection", p.CorrelationKey)
	}
	return rec, nil
}

// GetPendingSelection returns the pending-selection record for key or
// domain.ErrNotFound.
func (r *Repo) GetPendingSelection(ctx context.Context, key string) (*domain.EventRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"kind":            string(domain.EventKindAwaitingSelection),
			"correlation_key": key,
		})

	rec, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "pending_selection", key)
	}
	return rec, nil
}

// ClearPendingSelection deletes the pending-selection record for key.
// Deleting an absent record is not an error.
func (r *Repo) ClearPendingSelection(ctx context.Context, key string) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{
			"kind":            string(domain.EventKindAwaitingSelection),
			"correlation_key": key,
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build clear pending query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "pending_selection", key)
	}
	return nil
}

// FindOrCreateAuditRecord returns the oldest non-pending record for key,
// inserting an interaction audit record when none exists. A concurrent
// insert of the same audit record resolves to the winner's row.
func (r *Repo) FindOrCreateAuditRecord(ctx context.Context, key, channelID, actorID, originalText string) (*domain.EventRecord, error) {
	rec, err := r.findByCorrelationKey(ctx, key)
	if err == nil {
		return rec, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "event_record", key)
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("event_id", "kind", "correlation_key", "channel_id", "actor_id", "original_text").
		Values(
			domain.InteractionEventIDPrefix+key,
			string(domain.EventKindInteraction),
			key,
			nullable(channelID),
			nullable(actorID),
			nullable(originalText),
		).
		Suffix("ON CONFLICT (event_id) DO NOTHING RETURNING " + joinColumns())

	rec, err = r.getOne(ctx, insert)
	if err == nil {
		return rec, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "event_record", key)
	}

	rec, err = r.findByCorrelationKey(ctx, key)
	if err != nil {
		return nil, postgres.MapError(err, "event_record", key)
	}
	return rec, nil
}

// ExpirePendingSelections deletes pending-selection records created before
// cutoff and returns how many were removed.
func (r *Repo) ExpirePendingSelections(ctx context.Context, cutoff time.Time) (int64, error) {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"kind": string(domain.EventKindAwaitingSelection)}).
		Where(squirrel.Lt{"created_at": cutoff})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build expire pending query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("expire pending selections: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) findByCorrelationKey(ctx context.Context, key string) (*domain.EventRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"correlation_key": key}).
		Where(squirrel.NotEq{"kind": string(domain.EventKindAwaitingSelection)}).
		OrderBy("created_at ASC").
		Limit(1)

	return r.getOne(ctx, query)
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.EventRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
