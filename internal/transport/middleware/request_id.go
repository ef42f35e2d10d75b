package middleware

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/pkg/ctxutil"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-Id"
	// RetryNumHeader is set by the platform on redelivered webhooks.
	RetryNumHeader = "X-Slack-Retry-Num"
)

// RequestID reuses an incoming request id or generates one, stores it in the
// context together with the platform retry attempt, and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)

			if n, err := strconv.Atoi(r.Header.Get(RetryNumHeader)); err == nil {
				ctx = ctxutil.WithRetryNum(ctx, n)
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
