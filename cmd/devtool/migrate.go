package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/TradingPost_Go/internal/config"
	"github.com/osse101/TradingPost_Go/internal/database"
	"github.com/osse101/TradingPost_Go/internal/database/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect store migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) != 1 || (args[0] != "up" && args[0] != "status") {
		return usageError("migrate <up|status>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()

	db, dir, closeFn, err := openSQL(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if args[0] == "up" {
		PrintHeader("Applying " + dir + " migrations")
		if dir == migrations.DirPostgres {
			err = migrations.UpPostgres(ctx, db)
		} else {
			err = migrations.UpSQLite(ctx, db)
		}
		if err != nil {
			return err
		}
		PrintSuccess("Store is up to date")
		return nil
	}

	statuses, err := migrations.Status(ctx, db, dir)
	if err != nil {
		return err
	}
	PrintHeader(dir + " migration status")
	for _, s := range statuses {
		if s.AppliedAt.IsZero() {
			PrintWarning("%05d %s pending", s.Source.Version, s.Source.Path)
		} else {
			PrintSuccess("%05d %s applied %s", s.Source.Version, s.Source.Path, s.AppliedAt.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}

// openSQL opens a database/sql handle for the configured store driver
func openSQL(ctx context.Context, cfg *config.Config) (*sql.DB, string, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", nil, err
		}
		return db, migrations.DirSQLite, func() { _ = db.Close() }, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, "", nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, migrations.DirPostgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil
	}
	return nil, "", nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
