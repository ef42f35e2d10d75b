package worklog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg worklog . actorResolver categoryRepo unitRepo claimLedger txManager

type actorResolver interface {
	Resolve(ctx context.Context, externalID string) (*domain.Actor, error)
}

type categoryRepo interface {
	FindOrCreate(ctx context.Context, name string) (*domain.Category, error)
}

type unitRepo interface {
	Create(ctx context.Context, u domain.WorkUnit) (*domain.WorkUnit, error)
}

type claimLedger interface {
	RecordIfNew(ctx context.Context, m domain.EventMarker) (*domain.EventRecord, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service commits extracted work entries as logged work units.
type Service struct {
	actors     actorResolver
	categories categoryRepo
	units      unitRepo
	claims     claimLedger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new worklog service.
func NewService(
	log *slog.Logger,
	actors actorResolver,
	categories categoryRepo,
	units unitRepo,
	claims claimLedger,
	tx txManager,
) *Service {
	return &Service{
		actors:     actors,
		categories: categories,
		units:      units,
		claims:     claims,
		tx:         tx,
		log:        log.With("service", "worklog"),
	}
}
