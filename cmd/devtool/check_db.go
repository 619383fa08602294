package main

import (
	"context"

	"github.com/osse101/TradingPost_Go/internal/config"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Open, migrate and ping the configured store"
}

func (c *CheckDBCommand) Run(args []string) error {
	return withStore(func(ctx context.Context, cfg *config.Config, store repository.Store) error {
		PrintHeader("Checking " + cfg.StoreDriver + " store")
		if err := store.Ping(ctx); err != nil {
			return err
		}
		PrintSuccess("Store is ready")
		return nil
	})
}
