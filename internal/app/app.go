package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timelog-bot/internal/adapter/postgres"
	actorrepo "github.com/heartmarshall/timelog-bot/internal/adapter/postgres/actor"
	"github.com/heartmarshall/timelog-bot/internal/adapter/postgres/category"
	"github.com/heartmarshall/timelog-bot/internal/adapter/postgres/ledger"
	unitrepo "github.com/heartmarshall/timelog-bot/internal/adapter/postgres/worklog"
	"github.com/heartmarshall/timelog-bot/internal/adapter/provider/llm"
	"github.com/heartmarshall/timelog-bot/internal/adapter/slackapi"
	"github.com/heartmarshall/timelog-bot/internal/auth"
	"github.com/heartmarshall/timelog-bot/internal/config"
	"github.com/heartmarshall/timelog-bot/internal/service/actor"
	"github.com/heartmarshall/timelog-bot/internal/service/event"
	"github.com/heartmarshall/timelog-bot/internal/service/intent"
	"github.com/heartmarshall/timelog-bot/internal/service/interaction"
	"github.com/heartmarshall/timelog-bot/internal/service/worklog"
	"github.com/heartmarshall/timelog-bot/internal/transport/rest"
	"github.com/heartmarshall/timelog-bot/internal/worker"
	"github.com/heartmarshall/timelog-bot/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves the webhooks until ctx is
// cancelled, then drains in-flight work.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("worker_mode", cfg.Worker.Mode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Adapters.
	actors := actorrepo.New(pool)
	categories := category.New(pool)
	events := ledger.New(pool)
	units := unitrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	chat := slackapi.NewClient(cfg.Slack, logger)
	model := llm.NewClient(cfg.LLM, logger)

	run := worker.New(cfg.Worker, logger)

	// Services.
	actorSvc := actor.NewService(logger, actors, chat, cfg.Actor)
	worklogSvc := worklog.NewService(logger, actorSvc, categories, units, events, tx)
	intentSvc := intent.NewService(logger, model, categories, actorSvc, chat, cfg.LLM.ConfidenceThreshold)
	eventSvc := event.NewService(logger, events, actorSvc, intentSvc, categories, worklogSvc, chat)
	interactionSvc := interaction.NewService(logger, events, categories, worklogSvc, chat, run)

	router := NewRouter(logger, Handlers{
		Slack: rest.NewSlackHandler(logger, eventSvc, interactionSvc, run),
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Check{
			"database": pool.Ping,
			"slack": func(ctx context.Context) error {
				_, err := chat.BotUserID(ctx)
				return err
			},
		}, "database"),
		Verifier: auth.NewVerifier(cfg.Slack.SigningSecret),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, run, cfg.Server, logger)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// shutdown stops accepting requests first, then drains queued webhook work,
// both within the configured shutdown timeout.
func shutdown(srv *http.Server, run worker.Runner, cfg config.ServerConfig, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := run.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("worker drain: %w", err))
	}
	return errors.Join(errs...)
}
