// Package slackapi talks to the chat platform's Web API: ephemeral replies,
// category prompts, the create-category form, acknowledgement reactions and
// the user directory.
package slackapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/slack-go/slack"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/timelog-bot/internal/config"
)

// Client wraps the Web API client with bounded retries.
type Client struct {
	api        *slack.Client
	log        *slog.Logger
	ackEmoji   string
	maxRetries uint64
	retryDelay time.Duration

	mu         sync.Mutex
	botUserID  string
	authFlight singleflight.Group
}

// NewClient creates a Client from Slack config.
func NewClient(cfg config.SlackConfig, logger *slog.Logger) *Client {
	opts := []slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	}
	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(strings.TrimSuffix(cfg.APIURL, "/")+"/"))
	}

	return &Client{
		api:        slack.New(cfg.BotToken, opts...),
		log:        logger.With("adapter", "slack"),
		ackEmoji:   cfg.AckEmoji,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryInitialDelay,
	}
}

// withRetry runs fn, retrying rate limits, 5xx responses and network errors.
// Platform-level errors ("ok": false) are permanent.
func (c *Client) withRetry(ctx context.Context, method string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryDelay
	b.MaxElapsedTime = 0

	attempt := 0
	op := func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}

		var rateErr *slack.RateLimitedError
		if errors.As(err, &rateErr) {
			if waitErr := sleepCtx(ctx, rateErr.RetryAfter); waitErr != nil {
				return backoff.Permanent(waitErr)
			}
			return err
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		c.log.WarnContext(ctx, "slack retry",
			slog.String("method", method),
			slog.Int("attempt", attempt),
			slog.Duration("next", next),
			slog.String("error", err.Error()),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return fmt.Errorf("slack %s: %w", method, err)
	}
	return nil
}

func retryable(err error) bool {
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError
	}
	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Transport-level failure.
	return true
}

func apiErrorCode(err error) string {
	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) {
		return apiErr.Err
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
