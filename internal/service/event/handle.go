package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/internal/domain"
	"github.com/heartmarshall/timelog-bot/pkg/ctxutil"
)

// Handle processes one inbound event. Automated messages are dropped before
// the ledger is touched. Events carrying an id pass the dedup gate before any
// side effect. Failures are logged and swallowed so one bad event cannot
// disturb the ones after it.
func (s *Service) Handle(ctx context.Context, ev *domain.InboundEvent) {
	if ev == nil {
		return
	}

	log := s.log.With(
		slog.String("event_id", ev.EventID),
		slog.String("kind", ev.Kind.String()),
		slog.String("actor", ev.ActorID),
		slog.String("channel", ev.ChannelID),
	)
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		log = log.With(slog.String("request_id", id))
	}

	if ev.IsAutomated() {
		log.DebugContext(ctx, "automated message dropped", slog.String("bot_id", ev.BotID))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "panic while handling event", slog.Any("panic", r))
		}
	}()

	var recordID *uuid.UUID
	if ev.EventID != "" {
		rec, created, err := s.ledger.RecordIfNew(ctx, domain.EventMarker{
			EventID:        ev.EventID,
			Kind:           ev.Kind,
			CorrelationKey: ev.MessageTS,
			ChannelID:      ev.ChannelID,
			ActorID:        ev.ActorID,
			OriginalText:   ev.Text,
		})
		if err != nil {
			log.ErrorContext(ctx, "record event", slog.String("error", err.Error()))
			return
		}
		if !created {
			log.DebugContext(ctx, "duplicate event skipped")
			return
		}
		recordID = &rec.ID
	}

	if !handled(ev) {
		log.DebugContext(ctx, "event ignored",
			slog.String("channel_type", ev.ChannelType),
			slog.String("subtype", ev.Subtype),
		)
		return
	}

	if err := s.process(ctx, ev, recordID); err != nil {
		log.ErrorContext(ctx, "event processing failed", slog.String("error", err.Error()))
	}
}

// handled reports whether ev is a bot mention or a plain direct message.
func handled(ev *domain.InboundEvent) bool {
	switch ev.Kind {
	case domain.EventKindAppMention:
		return true
	case domain.EventKindMessage:
		return ev.ChannelType == domain.ChannelTypeIM && ev.Subtype == ""
	default:
		return false
	}
}

func (s *Service) process(ctx context.Context, ev *domain.InboundEvent, recordID *uuid.UUID) error {
	actor, err := s.actors.Resolve(ctx, ev.ActorID)
	if err != nil {
		return fmt.Errorf("resolve author: %w", err)
	}

	result := s.intent.Extract(ctx, domain.ExtractionRequest{
		Text:            ev.Text,
		Timezone:        actor.Timezone,
		RequestingActor: ev.ActorID,
	})

	switch result.Kind {
	case domain.ExtractionFailed:
		return s.notify.PostEphemeral(ctx, ev.ChannelID, ev.ActorID, result.Message)

	case domain.ExtractionUnknownActors:
		text := fmt.Sprintf(MsgUnknownActors, strings.Join(result.UnknownActors, ", "))
		return s.notify.PostEphemeral(ctx, ev.ChannelID, ev.ActorID, text)

	case domain.ExtractionNeedsCategory:
		return s.park(ctx, ev, result)

	case domain.ExtractionEntries:
		n, err := s.worklog.Commit(ctx, result.Entries, ev.ActorID, recordID)
		if err != nil {
			return fmt.Errorf("commit entries: %w", err)
		}
		s.log.InfoContext(ctx, "event committed",
			slog.String("event_id", ev.EventID),
			slog.String("correlation_key", ev.MessageTS),
			slog.Int("units", n),
		)
		return s.notify.Acknowledge(ctx, ev.ChannelID, ev.MessageTS)

	default:
		return fmt.Errorf("unexpected extraction kind %s", result.Kind)
	}
}

// park stores the partial entries under the message timestamp and asks the
// author to pick a category.
func (s *Service) park(ctx context.Context, ev *domain.InboundEvent, result domain.Extraction) error {
	payload, err := domain.PendingSelection{
		Entries:           result.Partial,
		SuggestedCategory: result.SuggestedCategory,
		OriginalText:      ev.Text,
	}.Encode()
	if err != nil {
		return err
	}

	if _, err := s.ledger.PutPendingSelection(ctx, domain.PendingRecord{
		CorrelationKey: ev.MessageTS,
		ChannelID:      ev.ChannelID,
		ActorID:        ev.ActorID,
		OriginalText:   ev.Text,
		Payload:        payload,
	}); err != nil {
		return fmt.Errorf("store pending selection: %w", err)
	}

	names, err := s.categories.ListNames(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	s.log.InfoContext(ctx, "category selection requested",
		slog.String("correlation_key", ev.MessageTS),
		slog.String("suggested", result.SuggestedCategory),
		slog.Int("entries", len(result.Partial)),
	)
	return s.notify.PromptCategory(ctx, ev.ChannelID, ev.ActorID, ev.MessageTS, result.SuggestedCategory, names)
}
