package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// IsValid reports whether externalID names a live human user of the
// workspace. Automated accounts discovered through the directory are
// remembered so later checks skip the lookup.
func (s *Service) IsValid(ctx context.Context, externalID string) (bool, error) {
	if !strings.HasPrefix(externalID, "U") && !strings.HasPrefix(externalID, "W") {
		return false, nil
	}

	stored, err := s.actors.GetByExternalID(ctx, externalID)
	switch {
	case err == nil:
		if stored.IsBot {
			return false, nil
		}
	case !errors.Is(err, domain.ErrNotFound):
		return false, fmt.Errorf("get actor %s: %w", externalID, err)
	}

	profile, err := s.dir.Profile(ctx, externalID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("directory lookup %s: %w", externalID, err)
	}
	if profile.Deleted {
		return false, nil
	}

	if profile.IsBot {
		if err := s.actors.MarkBot(ctx, externalID, s.timezoneOr(profile.Timezone)); err != nil {
			return false, fmt.Errorf("mark bot %s: %w", externalID, err)
		}
		s.log.InfoContext(ctx, "automated account marked", slog.String("actor", externalID))
		return false, nil
	}

	return true, nil
}
