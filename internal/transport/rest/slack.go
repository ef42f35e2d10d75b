package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/heartmarshall/timelog-bot/internal/domain"
	"github.com/heartmarshall/timelog-bot/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go -pkg rest . eventHandler interactionHandler runner

type eventHandler interface {
	Handle(ctx context.Context, ev *domain.InboundEvent)
}

type interactionHandler interface {
	Handle(ctx context.Context, in domain.Interaction) *domain.InteractionResponse
}

type runner interface {
	Submit(ctx context.Context, task func(ctx context.Context)) error
}

// SlackHandler serves the platform webhooks. Requests reach it only after
// signature verification.
type SlackHandler struct {
	events       eventHandler
	interactions interactionHandler
	run          runner
	log          *slog.Logger
}

// NewSlackHandler creates a SlackHandler.
func NewSlackHandler(log *slog.Logger, events eventHandler, interactions interactionHandler, run runner) *SlackHandler {
	return &SlackHandler{
		events:       events,
		interactions: interactions,
		run:          run,
		log:          log.With("handler", "slack"),
	}
}

// Events handles POST /slack/events. Verification challenges are echoed;
// callbacks are handed to the runner and acknowledged immediately.
func (h *SlackHandler) Events(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}

	var envelope slackevents.EventsAPICallbackEvent
	if err := json.Unmarshal(body, &envelope); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ctx := r.Context()
	switch domain.EnvelopeKind(envelope.Type) {
	case domain.EnvelopeURLVerification:
		var challenge slackevents.EventsAPIURLVerificationEvent
		if err := json.Unmarshal(body, &challenge); err != nil {
			writeError(w, http.StatusBadRequest, "invalid challenge")
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, challenge.Challenge) //nolint:errcheck
		return

	case domain.EnvelopeEventCallback:
		ev, err := inboundEvent(envelope)
		if err != nil {
			h.log.WarnContext(ctx, "undecodable inner event",
				slog.String("event_id", envelope.EventID),
				slog.String("error", err.Error()),
			)
			break
		}
		if ev == nil {
			break
		}
		err = h.run.Submit(ctxutil.Detach(ctx), func(ctx context.Context) {
			h.events.Handle(ctx, ev)
		})
		if err != nil {
			h.log.ErrorContext(ctx, "event not scheduled",
				slog.String("event_id", envelope.EventID),
				slog.String("error", err.Error()),
			)
		}

	default:
		h.log.DebugContext(ctx, "envelope ignored", slog.String("type", envelope.Type))
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Interactive handles POST /slack/interactive. Form validation errors are
// returned inline so the platform re-renders the form.
func (h *SlackHandler) Interactive(w http.ResponseWriter, r *http.Request) {
	payload := r.PostFormValue("payload")
	if payload == "" {
		writeError(w, http.StatusBadRequest, "missing payload")
		return
	}

	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &cb); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	resp := h.interactions.Handle(r.Context(), interaction(cb))
	if resp.HasErrors() {
		writeJSON(w, http.StatusOK, slack.NewErrorsViewSubmissionResponse(resp.FieldErrors))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// inboundEvent normalizes an event_callback envelope. A missing inner event
// yields nil.
func inboundEvent(env slackevents.EventsAPICallbackEvent) (*domain.InboundEvent, error) {
	if env.InnerEvent == nil || len(*env.InnerEvent) == 0 || string(*env.InnerEvent) == "null" {
		return nil, nil
	}

	var inner slackevents.MessageEvent
	if err := json.Unmarshal(*env.InnerEvent, &inner); err != nil {
		return nil, err
	}

	return &domain.InboundEvent{
		EventID:     env.EventID,
		Kind:        domain.EventKind(inner.Type),
		ActorID:     inner.User,
		ChannelID:   inner.Channel,
		ChannelType: inner.ChannelType,
		MessageTS:   inner.TimeStamp,
		Text:        inner.Text,
		BotID:       inner.BotID,
		Subtype:     inner.SubType,
	}, nil
}

// interaction normalizes an interaction callback.
func interaction(cb slack.InteractionCallback) domain.Interaction {
	in := domain.Interaction{
		Type:      domain.InteractionType(cb.Type),
		ActorID:   cb.User.ID,
		ChannelID: cb.Channel.ID,
		TriggerID: cb.TriggerID,
	}

	if actions := cb.ActionCallback.BlockActions; len(actions) > 0 && actions[0] != nil {
		a := actions[0]
		in.ActionID = a.ActionID
		in.BlockID = a.BlockID
		in.SelectedValue = a.SelectedOption.Value
		if in.SelectedValue == "" {
			in.SelectedValue = a.Value
		}
	}

	in.CallbackID = cb.View.CallbackID
	in.PrivateMetadata = cb.View.PrivateMetadata
	if cb.View.State != nil {
		if block, ok := cb.View.State.Values[domain.CategoryNameBlockID]; ok {
			in.SubmittedName = block[domain.CategoryNameActionID].Value
		}
	}
	return in
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
