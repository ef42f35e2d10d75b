// Package event processes inbound message events: dedup through the ledger,
// intent extraction, then either commit or park a pending selection.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg event . eventLedger actorResolver extractor categoryLister committer notifier

type eventLedger interface {
	RecordIfNew(ctx context.Context, m domain.EventMarker) (*domain.EventRecord, bool, error)
	PutPendingSelection(ctx context.Context, p domain.PendingRecord) (*domain.EventRecord, error)
}

type actorResolver interface {
	Resolve(ctx context.Context, externalID string) (*domain.Actor, error)
}

type extractor interface {
	Extract(ctx context.Context, req domain.ExtractionRequest) domain.Extraction
}

type categoryLister interface {
	ListNames(ctx context.Context) ([]string, error)
}

type committer interface {
	Commit(ctx context.Context, entries []domain.WorkEntry, submittedBy string, recordID *uuid.UUID) (int, error)
}

type notifier interface {
	PostEphemeral(ctx context.Context, channelID string, actorID string, text string) error
	PromptCategory(ctx context.Context, channelID string, actorID string, correlationKey string, suggested string, categories []string) error
	Acknowledge(ctx context.Context, channelID string, messageTS string) error
}

// MsgUnknownActors lists unresolvable mentions back to the author.
const MsgUnknownActors = "I couldn't find these users: %s. Please check the mentions and try again."

// Service is the event handler.
type Service struct {
	ledger     eventLedger
	actors     actorResolver
	intent     extractor
	categories categoryLister
	worklog    committer
	notify     notifier
	log        *slog.Logger
}

// NewService creates a new event service.
func NewService(
	log *slog.Logger,
	ledger eventLedger,
	actors actorResolver,
	intent extractor,
	categories categoryLister,
	worklog committer,
	notify notifier,
) *Service {
	return &Service{
		ledger:     ledger,
		actors:     actors,
		intent:     intent,
		categories: categories,
		worklog:    worklog,
		notify:     notify,
		log:        log.With("service", "event"),
	}
}
