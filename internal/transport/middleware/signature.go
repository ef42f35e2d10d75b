package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timelog-bot/internal/auth"
)

// maxWebhookBody caps how much of a webhook body is read for verification.
const maxWebhookBody = 1 << 20

type signatureVerifier interface {
	Verify(body []byte, timestamp, signature string) error
}

// VerifySignature rejects requests whose platform signature does not match
// the raw body with 401, before any handler parses it. The body is restored
// for downstream handlers.
func VerifySignature(verifier signatureVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody+1))
			_ = r.Body.Close()
			if err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			if len(body) > maxWebhookBody {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			err = verifier.Verify(body, r.Header.Get(auth.HeaderTimestamp), r.Header.Get(auth.HeaderSignature))
			if err != nil {
				logger.WarnContext(r.Context(), "webhook signature rejected",
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()),
				)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}
