package interaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// commitPending commits the parked entries under category, acknowledges the
// original message and clears the pending selection. The commit is claimed
// per correlation key, so a repeated or concurrent selection on the same
// prompt stores nothing and only repeats the acknowledgement and cleanup.
// The pending row is cleared only after the entries are stored.
func (s *Service) commitPending(ctx context.Context, key, actorID string, rec *domain.EventRecord, payload domain.PendingSelection, category string) {
	log := s.log.With(
		slog.String("correlation_key", key),
		slog.String("actor", actorID),
		slog.String("category", category),
	)
	channelID := channelOf(rec, "")

	originalText := payload.OriginalText
	if originalText == "" {
		originalText = deref(rec.OriginalText)
	}

	entries, err := payload.CompleteEntries(category)
	if err != nil {
		log.WarnContext(ctx, "pending entries unreadable", slog.String("error", err.Error()))
		s.contextLost(ctx, channelID, actorID, key)
		return
	}

	audit, err := s.ledger.FindOrCreateAuditRecord(ctx, key, channelID, deref(rec.ActorID), originalText)
	if err != nil {
		log.ErrorContext(ctx, "find audit record", slog.String("error", err.Error()))
		return
	}

	n, committed, err := s.worklog.CommitOnce(ctx, key, entries, actorID, &audit.ID)
	if err != nil {
		log.ErrorContext(ctx, "commit pending entries", slog.String("error", err.Error()))
		return
	}
	if committed {
		log.InfoContext(ctx, "pending selection committed", slog.Int("units", n))
	} else {
		log.WarnContext(ctx, "pending selection already committed, clearing")
	}

	if channelID != "" {
		if err := s.notify.Acknowledge(ctx, channelID, key); err != nil {
			log.ErrorContext(ctx, "acknowledge message", slog.String("error", err.Error()))
		}
	}

	if err := s.ledger.ClearPendingSelection(ctx, key); err != nil {
		log.ErrorContext(ctx, "clear pending selection", slog.String("error", err.Error()))
	}
}
