package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	retryNumKey  ctxKey = "retry_num"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRetryNum stores the platform's delivery retry attempt in the context.
func WithRetryNum(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, retryNumKey, n)
}

// RetryNumFromCtx returns the delivery retry attempt and whether the request
// was a retry at all.
func RetryNumFromCtx(ctx context.Context) (int, bool) {
	n, ok := ctx.Value(retryNumKey).(int)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// Detach returns a context that keeps the request-scoped values of ctx but
// is never canceled, for work that outlives the request.
func Detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
