// Package interaction resolves user interactions (category selection and the
// create-category form) against parked pending selections.
package interaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg interaction . pendingLedger categoryRepo committer notifier runner

type pendingLedger interface {
	GetPendingSelection(ctx context.Context, key string) (*domain.EventRecord, error)
	ClearPendingSelection(ctx context.Context, key string) error
	FindOrCreateAuditRecord(ctx context.Context, key string, channelID string, actorID string, originalText string) (*domain.EventRecord, error)
}

type categoryRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	FindOrCreate(ctx context.Context, name string) (*domain.Category, error)
}

type committer interface {
	CommitOnce(ctx context.Context, key string, entries []domain.WorkEntry, submittedBy string, recordID *uuid.UUID) (int, bool, error)
}

type notifier interface {
	PostEphemeral(ctx context.Context, channelID string, actorID string, text string) error
	OpenCategoryForm(ctx context.Context, triggerID string, suggested string, meta domain.FormMetadata) error
	Acknowledge(ctx context.Context, channelID string, messageTS string) error
}

type runner interface {
	Submit(ctx context.Context, task func(ctx context.Context)) error
}

// User-facing messages.
const (
	MsgContextLost  = "Sorry, I lost track of that request. Please try logging your time again."
	MsgNameRequired = "Project name is required"
	MsgNameTaken    = "A project with this name already exists"
	MsgCreateFailed = "Something went wrong creating the project. Please try again."
)

// Service is the interaction handler.
type Service struct {
	ledger     pendingLedger
	categories categoryRepo
	worklog    committer
	notify     notifier
	run        runner
	log        *slog.Logger
}

// NewService creates a new interaction service. Deferred work is handed to
// run; form validation always happens on the caller's goroutine.
func NewService(
	log *slog.Logger,
	ledger pendingLedger,
	categories categoryRepo,
	worklog committer,
	notify notifier,
	run runner,
) *Service {
	return &Service{
		ledger:     ledger,
		categories: categories,
		worklog:    worklog,
		notify:     notify,
		run:        run,
		log:        log.With("service", "interaction"),
	}
}
