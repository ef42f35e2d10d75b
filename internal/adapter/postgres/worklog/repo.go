// Package worklog implements Logged Work Unit persistence using PostgreSQL.
package worklog

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
	"id", "actor_id", "category_id", "minutes", "work_date",
	"notes", "submitted_by", "event_record_id", "created_at",
}

// Repo provides work unit persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new work unit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type unitRow struct {
	ID            uuid.UUID  `db:"id"`
	ActorID       uuid.UUID  `db:"actor_id"`
	CategoryID    uuid.UUID  `db:"category_id"`
	Minutes       int        `db:"minutes"`
	WorkDate      time.Time  `db:"work_date"`
	Notes         *string    `db:"notes"`
	SubmittedBy   string     `db:"submitted_by"`
	EventRecordID *uuid.UUID `db:"event_record_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r unitRow) toDomain() domain.WorkUnit {
	return domain.WorkUnit{
		ID:            r.ID,
		ActorID:       r.ActorID,
		CategoryID:    r.CategoryID,
		Minutes:       r.Minutes,
		Date:          r.WorkDate,
		Notes:         r.Notes,
		SubmittedBy:   r.SubmittedBy,
		EventRecordID: r.EventRecordID,
		CreatedAt:     r.CreatedAt,
	}
}

// Create inserts a work unit and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u domain.WorkUnit) (*domain.WorkUnit, error) {
	sql, args, err := postgres.Builder().
		Insert("work_units").
		Columns("actor_id", "category_id", "minutes", "work_date", "notes", "submitted_by", "event_record_id").
		Values(u.ActorID, u.CategoryID, u.Minutes, u.Date, u.Notes, u.SubmittedBy, u.EventRecordID).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert work unit query: %w", err)
	}

	var row unitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "work_unit", u.ActorID)
	}

	unit := row.toDomain()
	return &unit, nil
}

// ListByEventRecord returns the work units created from the ledger record,
// oldest first.
func (r *Repo) ListByEventRecord(ctx context.Context, recordID uuid.UUID) ([]domain.WorkUnit, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("work_units").
		Where(squirrel.Eq{"event_record_id": recordID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list work units query: %w", err)
	}

	var rows []unitRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list work units: %w", err)
	}

	units := make([]domain.WorkUnit, len(rows))
	for i, row := range rows {
		units[i] = row.toDomain()
	}
	return units, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
