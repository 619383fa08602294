// Package sqlite implements the market cache store on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/database"
	"github.com/osse101/TradingPost_Go/internal/database/migrations"
	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

// Store implements repository.Store for SQLite. Writes hold mu for the
// whole transaction so the upsert-then-select key lookups are never
// interleaved with another writer.
type Store struct {
	db    *sql.DB
	clock clockwork.Clock
	mu    sync.Mutex
}

var _ repository.Store = (*Store)(nil)

// Open opens the database file, applies the embedded migrations and
// returns a ready store. The caller owns the store and must Close it.
func Open(ctx context.Context, path string, clock clockwork.Clock) (*Store, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := migrations.UpSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return New(db, clock), nil
}

// New wraps an already migrated database handle
func New(db *sql.DB, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{db: db, clock: clock}
}

// DB exposes the underlying handle for diagnostics
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping checks the handle is usable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// withTx runs fn inside a serialized write transaction
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.FromContext(ctx).Error(database.ErrMsgFailedToRollbackTransaction, "error", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
