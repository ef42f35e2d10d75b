package actor

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/timelog-bot/internal/config"
	"github.com/heartmarshall/timelog-bot/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg actor . actorRepo directory

type actorRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Actor, error)
	Upsert(ctx context.Context, a domain.Actor) (*domain.Actor, error)
	MarkBot(ctx context.Context, externalID string, timezone string) error
}

type directory interface {
	Profile(ctx context.Context, externalID string) (*domain.DirectoryProfile, error)
}

// Service resolves platform users into stored actors and keeps their
// directory data fresh.
type Service struct {
	actors          actorRepo
	dir             directory
	refreshInterval time.Duration
	defaultTimezone string
	now             func() time.Time
	log             *slog.Logger
}

// NewService creates a new actor service.
func NewService(
	log *slog.Logger,
	actors actorRepo,
	dir directory,
	cfg config.ActorConfig,
) *Service {
	return &Service{
		actors:          actors,
		dir:             dir,
		refreshInterval: cfg.RefreshInterval,
		defaultTimezone: cfg.DefaultTimezone,
		now:             time.Now,
		log:             log.With("service", "actor"),
	}
}

func (s *Service) timezoneOr(tz string) string {
	if tz == "" {
		return s.defaultTimezone
	}
	return tz
}
