package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timelog-bot/internal/transport/middleware"
)

// Route paths served by the process.
const (
	PathEvents      = "/slack/events"
	PathInteractive = "/slack/interactive"
)

type slackHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
	Interactive(w http.ResponseWriter, r *http.Request)
}

type healthHandler interface {
	Live(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type verifier interface {
	Verify(body []byte, timestamp, signature string) error
}

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Slack    slackHandler
	Health   healthHandler
	Verifier verifier
}

// NewRouter mounts the webhook and probe routes. Webhooks are signature
// checked and answer 200 even when a handler panics.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	webhook := middleware.Chain(
		middleware.Recovery(logger, http.StatusOK),
		middleware.VerifySignature(h.Verifier, logger),
	)

	mux := http.NewServeMux()
	mux.Handle("POST "+PathEvents, webhook(http.HandlerFunc(h.Slack.Events)))
	mux.Handle("POST "+PathInteractive, webhook(http.HandlerFunc(h.Slack.Interactive)))
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return middleware.Chain(
		middleware.Recovery(logger, http.StatusInternalServerError),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux)
}
