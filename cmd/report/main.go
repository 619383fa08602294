// Command report prints the crafting profitability report for a base item.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/bootstrap"
	"github.com/osse101/TradingPost_Go/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	itemID := flag.Int("item", cfg.BaseItemID, "base item id to analyze")
	all := flag.Bool("all", false, "print every priced entry, not just the profitable ones")
	flag.Parse()

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
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error(bootstrap.LogMsgStoreCloseFailed, "error", err)
		}
	}()

	m, err := bootstrap.BuildMarket(cfg, store, clock)
	if err != nil {
		return err
	}
	if err := m.SeedStaticListings(ctx, cfg.StaticListings); err != nil {
		return err
	}

	report, err := m.Analyzer.Analyze(ctx, *itemID)
	if err != nil {
		return fmt.Errorf("failed to analyze item %d: %w", *itemID, err)
	}

	if *all {
		return report.WriteAllText(os.Stdout)
	}
	return report.WriteText(os.Stdout)
}
