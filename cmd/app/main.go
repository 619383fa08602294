package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/bootstrap"
	"github.com/osse101/TradingPost_Go/internal/config"
	"github.com/osse101/TradingPost_Go/internal/market"
	"github.com/osse101/TradingPost_Go/internal/scheduler"
	"github.com/osse101/TradingPost_Go/internal/server"
	"github.com/osse101/TradingPost_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	store, err := bootstrap.OpenStore(ctx, cfg, clock)
	if err != nil {
		return err
	}
	// Closed by GracefulShutdown once the server is up; until then by this defer.
	storeOwned := true
	defer func() {
		if storeOwned {
			_ = store.Close()
		}
	}()

	m, err := bootstrap.BuildMarket(cfg, store, clock)
	if err != nil {
		return err
	}
	if err := m.SeedStaticListings(ctx, cfg.StaticListings); err != nil {
		return err
	}

	pool := worker.NewPool(bootstrap.ReconcileWorkers, bootstrap.ReconcileQueueSize)
	pool.Start()
	sched := scheduler.New(pool, clock)
	sched.ScheduleNow(cfg.ReconcileInterval, market.NewReconcileJob(m.Repository))
	slog.Info(bootstrap.LogMsgReconcileScheduled, "interval", cfg.ReconcileInterval)

	srv := server.NewServer(cfg.Port, server.Dependencies{
		Market:      m.Repository,
		Analyzer:    m.Analyzer,
		Store:       m.Repository,
		AdminAPIKey: cfg.AdminAPIKey,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	storeOwned = false
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Store:     store,
	})

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	return nil
}
