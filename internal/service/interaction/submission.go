package interaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// handleSubmission validates the create-category form synchronously. A valid
// submission creates the category and schedules the commit.
func (s *Service) handleSubmission(ctx context.Context, in domain.Interaction) *domain.InteractionResponse {
	if in.CallbackID != domain.CreateCategoryCallbackID {
		s.log.DebugContext(ctx, "view submission ignored", slog.String("callback_id", in.CallbackID))
		return nil
	}

	name := domain.NormalizeCategoryName(in.SubmittedName)
	if name == "" {
		return fieldError(MsgNameRequired)
	}

	_, err := s.categories.GetByName(ctx, name)
	switch {
	case err == nil:
		return fieldError(MsgNameTaken)
	case !errors.Is(err, domain.ErrNotFound):
		s.log.ErrorContext(ctx, "check category name", slog.String("error", err.Error()))
		return fieldError(MsgCreateFailed)
	}

	cat, err := s.categories.Create(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fieldError(MsgNameTaken)
		}
		s.log.ErrorContext(ctx, "create category", slog.String("error", err.Error()))
		return fieldError(MsgCreateFailed)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category", cat.Name),
		slog.String("actor", in.ActorID),
	)

	meta, err := domain.DecodeFormMetadata(in.PrivateMetadata)
	if err != nil {
		s.log.WarnContext(ctx, "form metadata unreadable",
			slog.String("actor", in.ActorID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	s.submit(ctx, in, func(ctx context.Context) {
		rec, payload, ok := s.loadPending(ctx, meta.CorrelationKey, meta.ChannelID, in.ActorID)
		if !ok {
			return
		}
		s.commitPending(ctx, meta.CorrelationKey, in.ActorID, rec, payload, cat.Name)
	})
	return nil
}

func fieldError(msg string) *domain.InteractionResponse {
	return &domain.InteractionResponse{
		FieldErrors: map[string]string{domain.CategoryNameBlockID: msg},
	}
}
