// Command cleanup expires pending category selections older than the
// configured TTL so an abandoned prompt can no longer complete. It is meant
// to be run from cron.
//
// Usage:
//
//	cleanup [-ttl 72h]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/timelog-bot/internal/adapter/postgres"
	"github.com/heartmarshall/timelog-bot/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/timelog-bot/internal/app"
	"github.com/heartmarshall/timelog-bot/internal/config"
)

const runTimeout = 5 * time.Minute

type expirer interface {
	ExpirePendingSelections(ctx context.Context, cutoff time.Time) (int64, error)
}

func main() {
	ttl := flag.Duration("ttl", 0, "override ledger.pending_ttl")
	flag.Parse()

	if err := run(*ttl); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		os.Exit(1)
	}
}

func run(ttlOverride time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	ttl := cfg.Ledger.PendingTTL
	if ttlOverride > 0 {
		ttl = ttlOverride
	}
	return expire(ctx, logger, ledger.New(pool), time.Now(), ttl)
}

func expire(ctx context.Context, logger *slog.Logger, repo expirer, now time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("pending ttl must be positive")
	}
	cutoff := now.Add(-ttl)

	expired, err := repo.ExpirePendingSelections(ctx, cutoff)
	if err != nil {
		logger.Error("expire pending selections failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		return err
	}

	logger.Info("pending selections expired",
		slog.Int64("expired", expired),
		slog.Time("cutoff", cutoff),
		slog.Duration("ttl", ttl),
	)
	return nil
}
