// Package intent turns free-text messages into work entries by asking a
// language model and classifying its answer.
package intent

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg intent . completer categoryLister actorValidator botIdentity

type completer interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}

type categoryLister interface {
	ListNames(ctx context.Context) ([]string, error)
}

type actorValidator interface {
	IsValid(ctx context.Context, externalID string) (bool, error)
}

type botIdentity interface {
	BotUserID(ctx context.Context) (string, error)
}

// User-facing failure messages.
const (
	MsgUnavailable   = "I'm having trouble understanding right now. Please try again in a moment. 🙏"
	MsgInternal      = "Something went wrong parsing your message. Try rephrasing it?"
	MsgBadResponse   = "I couldn't understand my own response. Please try again."
	MsgEmptyResponse = "Empty response from LLM"
	MsgNothingToLog  = "I couldn't find any time to log in that message."
)

// Service extracts work entries from messages.
type Service struct {
	llm        completer
	categories categoryLister
	actors     actorValidator
	bot        botIdentity
	threshold  int
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new intent service. Entries whose category confidence
// is below threshold require disambiguation.
func NewService(
	log *slog.Logger,
	llm completer,
	categories categoryLister,
	actors actorValidator,
	bot botIdentity,
	threshold int,
) *Service {
	return &Service{
		llm:        llm,
		categories: categories,
		actors:     actors,
		bot:        bot,
		threshold:  threshold,
		now:        time.Now,
		log:        log.With("service", "intent"),
	}
}

// failed logs the cause and returns a failed extraction carrying msg.
func (s *Service) failed(ctx context.Context, msg string, err error) domain.Extraction {
	s.log.WarnContext(ctx, "extraction failed",
		slog.String("reason", msg),
		slog.String("error", err.Error()),
	)
	return domain.FailedExtraction(msg)
}
