package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Resolve returns the stored actor for externalID, creating it from the
// directory on first reference. Directory data older than the refresh
// interval is refreshed lazily; a failed refresh keeps the stale data.
func (s *Service) Resolve(ctx context.Context, externalID string) (*domain.Actor, error) {
	existing, err := s.actors.GetByExternalID(ctx, externalID)
	switch {
	case err == nil:
		if !existing.NeedsRefresh(s.now(), s.refreshInterval) {
			return existing, nil
		}
		return s.refresh(ctx, existing), nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get actor %s: %w", externalID, err)
	}

	a := domain.Actor{ExternalID: externalID, Timezone: s.defaultTimezone}
	profile, err := s.dir.Profile(ctx, externalID)
	if err != nil {
		s.log.WarnContext(ctx, "directory lookup failed, using defaults",
			slog.String("actor", externalID),
			slog.String("error", err.Error()),
		)
	} else {
		a = s.fromProfile(externalID, profile)
	}

	created, err := s.actors.Upsert(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create actor %s: %w", externalID, err)
	}

	s.log.InfoContext(ctx, "actor created",
		slog.String("actor", externalID),
		slog.String("timezone", created.Timezone),
	)
	return created, nil
}

func (s *Service) refresh(ctx context.Context, existing *domain.Actor) *domain.Actor {
	profile, err := s.dir.Profile(ctx, existing.ExternalID)
	if err != nil {
		s.log.WarnContext(ctx, "actor refresh failed",
			slog.String("actor", existing.ExternalID),
			slog.String("error", err.Error()),
		)
		return existing
	}

	updated := s.fromProfile(existing.ExternalID, profile)
	updated.RefreshedAt = s.now()
	out, err := s.actors.Upsert(ctx, updated)
	if err != nil {
		s.log.WarnContext(ctx, "actor refresh not saved",
			slog.String("actor", existing.ExternalID),
			slog.String("error", err.Error()),
		)
		return existing
	}

	if out.Timezone != existing.Timezone {
		s.log.DebugContext(ctx, "actor timezone updated",
			slog.String("actor", existing.ExternalID),
			slog.String("timezone", out.Timezone),
		)
	}
	return out
}

func (s *Service) fromProfile(externalID string, p *domain.DirectoryProfile) domain.Actor {
	a := domain.Actor{
		ExternalID: externalID,
		Timezone:   s.timezoneOr(p.Timezone),
		IsBot:      p.IsBot,
	}
	if p.DisplayName != "" {
		name := p.DisplayName
		a.DisplayName = &name
	}
	return a
}
