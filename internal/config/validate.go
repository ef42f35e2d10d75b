package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Slack.SigningSecret) == "" {
		return fmt.Errorf("slack.signing_secret must not be empty")
	}

	if err := c.Worker.validate(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}

	if c.LLM.ConfidenceThreshold < 0 || c.LLM.ConfidenceThreshold > 100 {
		return fmt.Errorf("llm.confidence_threshold must be within 0..100 (got %d)", c.LLM.ConfidenceThreshold)
	}

	if _, err := time.LoadLocation(c.Actor.DefaultTimezone); err != nil {
		return fmt.Errorf("actor.default_timezone %q: %w", c.Actor.DefaultTimezone, err)
	}

	if c.Ledger.PendingTTL <= 0 {
		return fmt.Errorf("ledger.pending_ttl must be > 0 (got %s)", c.Ledger.PendingTTL)
	}

	return nil
}

func (w *WorkerConfig) validate() error {
	switch w.Mode {
	case WorkerModePool, WorkerModeInline:
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)", WorkerModePool, WorkerModeInline, w.Mode)
	}
	if w.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", w.Concurrency)
	}
	if w.QueueSize < 0 {
		return fmt.Errorf("queue_size must be >= 0 (got %d)", w.QueueSize)
	}
	return nil
}
