// Package migrations embeds the goose migrations for both store backends.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/osse101/TradingPost_Go/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Dialect directory names
const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)

// UpPostgres applies every pending postgres migration
func UpPostgres(ctx context.Context, db *sql.DB) error {
	return up(ctx, db, goose.DialectPostgres, DirPostgres)
}

// UpSQLite applies every pending sqlite migration
func UpSQLite(ctx context.Context, db *sql.DB) error {
	return up(ctx, db, goose.DialectSQLite3, DirSQLite)
}

// FS returns the migrations for one dialect directory
func FS(dir string) (fs.FS, error) {
	return fs.Sub(embedded, dir)
}

// Status reports the state of every migration in dir ("postgres" or "sqlite")
func Status(ctx context.Context, db *sql.DB, dir string) ([]*goose.MigrationStatus, error) {
	dialect, ok := dialects[dir]
	if !ok {
		return nil, fmt.Errorf("unknown migration dialect %q", dir)
	}
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return nil, err
	}
	return provider.Status(ctx)
}

var dialects = map[string]goose.Dialect{
	DirPostgres: goose.DialectPostgres,
	DirSQLite:   goose.DialectSQLite3,
}

func newProvider(db *sql.DB, dialect goose.Dialect, dir string) (*goose.Provider, error) {
	fsys, err := FS(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

func up(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", dir, err)
	}

	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info("Applied migration", "dialect", dir, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
