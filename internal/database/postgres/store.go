// Package postgres implements the market cache store on PostgreSQL using
// sqlc generated queries.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/database/generated"
	"github.com/osse101/TradingPost_Go/internal/database/migrations"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL.
// Writes are serialized so the insert-then-select recipe key lookup
// never races another writer on the same handle.
type Store struct {
	pool  *pgxpool.Pool
	q     *generated.Queries
	clock clockwork.Clock
	mu    sync.Mutex
}

var _ repository.Store = (*Store)(nil)

// NewStore wraps an open pool. The store takes ownership of the pool and
// closes it on Close.
func NewStore(pool *pgxpool.Pool, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		pool:  pool,
		q:     generated.New(pool),
		clock: clock,
	}
}

// Migrate applies the embedded schema through a database/sql bridge over the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	if err := migrations.UpPostgres(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate postgres store: %w", err)
	}
	return nil
}

// Ping checks the pool can reach the server
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
