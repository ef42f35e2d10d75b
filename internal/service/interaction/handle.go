package interaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
	"github.com/heartmarshall/timelog-bot/pkg/ctxutil"
)

// Handle dispatches an interaction. The returned response, when non-nil,
// must be sent back synchronously; everything else runs through the runner.
func (s *Service) Handle(ctx context.Context, in domain.Interaction) *domain.InteractionResponse {
	switch in.Type {
	case domain.InteractionBlockActions:
		s.submit(ctx, in, func(ctx context.Context) { s.handleSelection(ctx, in) })
		return nil
	case domain.InteractionViewSubmission:
		return s.handleSubmission(ctx, in)
	default:
		s.log.DebugContext(ctx, "interaction ignored", slog.String("type", in.Type.String()))
		return nil
	}
}

func (s *Service) submit(ctx context.Context, in domain.Interaction, task func(ctx context.Context)) {
	err := s.run.Submit(ctxutil.Detach(ctx), func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.ErrorContext(ctx, "panic while handling interaction",
					slog.String("actor", in.ActorID),
					slog.Any("panic", r),
				)
			}
		}()
		task(ctx)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "interaction not scheduled",
			slog.String("type", in.Type.String()),
			slog.String("actor", in.ActorID),
			slog.String("error", err.Error()),
		)
	}
}

// contextLost tells the actor the pending selection is gone.
func (s *Service) contextLost(ctx context.Context, channelID, actorID, key string) {
	s.log.WarnContext(ctx, "pending selection lost",
		slog.String("correlation_key", key),
		slog.String("actor", actorID),
	)
	if channelID == "" {
		return
	}
	if err := s.notify.PostEphemeral(ctx, channelID, actorID, MsgContextLost); err != nil {
		s.log.ErrorContext(ctx, "notify lost context", slog.String("error", err.Error()))
	}
}
