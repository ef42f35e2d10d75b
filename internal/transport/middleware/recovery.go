package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/timelog-bot/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged stack trace and a response
// with the given status. Webhook routes pass http.StatusOK so the platform
// does not redeliver a request that will panic again.
func Recovery(logger *slog.Logger, status int) Middleware {
	body := http.StatusText(status)
	if status >= http.StatusInternalServerError {
		body = "internal server error"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
				)
				http.Error(w, body, status)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
