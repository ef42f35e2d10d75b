package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// UniqueSuffix returns a short unique string for non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ExternalID returns a fresh platform-style user id.
func ExternalID() string {
	return "U" + UniqueSuffix()
}

// SeedActor inserts an actor with a fresh external id.
func SeedActor(t *testing.T, pool *pgxpool.Pool) domain.Actor {
	t.Helper()

	a := domain.Actor{ExternalID: ExternalID(), Timezone: "UTC"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO actors (external_id, timezone) VALUES ($1, $2)
		 RETURNING id, refreshed_at, created_at, updated_at`,
		a.ExternalID, a.Timezone,
	).Scan(&a.ID, &a.RefreshedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActor: %v", err)
	}
	return a
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "Project " + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`, c.Name,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedEventRecord inserts a processed-event marker and returns its id.
func SeedEventRecord(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO event_records (event_id, kind) VALUES ($1, 'message') RETURNING id`,
		"Ev"+UniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedEventRecord: %v", err)
	}
	return id
}
