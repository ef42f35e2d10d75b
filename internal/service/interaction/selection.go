package interaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// handleSelection resolves a category pick from the prompt.
func (s *Service) handleSelection(ctx context.Context, in domain.Interaction) {
	if in.ActionID != domain.SelectCategoryActionID {
		s.log.DebugContext(ctx, "block action ignored", slog.String("action_id", in.ActionID))
		return
	}

	key, ok := domain.ParseSelectionBlockID(in.BlockID)
	if !ok {
		s.contextLost(ctx, in.ChannelID, in.ActorID, "")
		return
	}

	rec, payload, ok := s.loadPending(ctx, key, in.ChannelID, in.ActorID)
	if !ok {
		return
	}

	if in.SelectedValue == domain.CreateCategoryValue {
		meta := domain.FormMetadata{CorrelationKey: key, ChannelID: channelOf(rec, in.ChannelID)}
		if err := s.notify.OpenCategoryForm(ctx, in.TriggerID, payload.SuggestedCategory, meta); err != nil {
			s.log.ErrorContext(ctx, "open category form",
				slog.String("correlation_key", key),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	cat, err := s.categories.FindOrCreate(ctx, domain.NormalizeCategoryName(in.SelectedValue))
	if err != nil {
		s.log.ErrorContext(ctx, "resolve selected category",
			slog.String("correlation_key", key),
			slog.String("category", in.SelectedValue),
			slog.String("error", err.Error()),
		)
		return
	}

	s.commitPending(ctx, key, in.ActorID, rec, payload, cat.Name)
}

// loadPending fetches and decodes the pending selection for key. On failure
// it has already told the actor and reports ok=false.
func (s *Service) loadPending(ctx context.Context, key, channelID, actorID string) (*domain.EventRecord, domain.PendingSelection, bool) {
	rec, err := s.ledger.GetPendingSelection(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "load pending selection",
				slog.String("correlation_key", key),
				slog.String("error", err.Error()),
			)
		}
		s.contextLost(ctx, channelID, actorID, key)
		return nil, domain.PendingSelection{}, false
	}

	payload, err := domain.DecodePendingSelection(rec.PendingData)
	if err != nil {
		s.contextLost(ctx, channelOf(rec, channelID), actorID, key)
		return nil, domain.PendingSelection{}, false
	}
	return rec, payload, true
}

func channelOf(rec *domain.EventRecord, fallback string) string {
	if rec != nil && rec.ChannelID != nil && *rec.ChannelID != "" {
		return *rec.ChannelID
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
