package main

import (
	"context"
	"fmt"

	"github.com/osse101/TradingPost_Go/internal/bootstrap"
	"github.com/osse101/TradingPost_Go/internal/config"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

type PlaceholdersCommand struct{}

func (c *PlaceholdersCommand) Name() string {
	return "placeholders"
}

func (c *PlaceholdersCommand) Description() string {
	return "List items still waiting for their real name"
}

func (c *PlaceholdersCommand) Run(args []string) error {
	return withStore(func(ctx context.Context, cfg *config.Config, store repository.Store) error {
		ids, err := store.FindPlaceholderItemIDs(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			PrintSuccess("No placeholder items")
			return nil
		}
		PrintWarning("%d placeholder items", len(ids))
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	})
}

type ReconcileCommand struct{}

func (c *ReconcileCommand) Name() string {
	return "reconcile"
}

func (c *ReconcileCommand) Description() string {
	return "Resolve placeholder items against the provider once"
}

func (c *ReconcileCommand) Run(args []string) error {
	return withStore(func(ctx context.Context, cfg *config.Config, store repository.Store) error {
		m, err := bootstrap.BuildMarket(cfg, store, nil)
		if err != nil {
			return err
		}
		resolved, err := m.Repository.ReconcilePlaceholders(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Resolved %d placeholder items", resolved)
		return nil
	})
}
