package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradingPost_Go/internal/database/storetest"
	"github.com/osse101/TradingPost_Go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC))
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"), clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func countRows(store *Store) func(t *testing.T, table string) int {
	return func(t *testing.T, table string) int {
		t.Helper()
		var n int
		require.NoError(t, store.DB().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		return n
	}
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Harness {
		store := newTestStore(t)
		return storetest.Harness{Store: store, Count: countRows(store)}
	})
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(ctx, path, nil)
	require.NoError(t, err)
	_, err = store.PutItem(ctx, domain.Item{ID: storetest.MithrilIngot, Name: "Mithril Ingot"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	item, err := reopened.GetItem(ctx, storetest.MithrilIngot)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Mithril Ingot", item.Name)
}

func TestStore_TouchedAtAdvances(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC))
	store, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"), clock)
	require.NoError(t, err)
	defer store.Close()

	touched := func() time.Time {
		var ms int64
		require.NoError(t, store.DB().QueryRow("SELECT touched_at FROM items WHERE external_id = ?", storetest.MithrilIngot).Scan(&ms))
		return fromMillis(ms)
	}

	_, err = store.PutItem(ctx, domain.Item{ID: storetest.MithrilIngot, Name: "Mithril Ingot"})
	require.NoError(t, err)
	first := touched()

	clock.Advance(time.Hour)
	_, err = store.PutItem(ctx, domain.NewPlaceholder(storetest.MithrilIngot))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, touched().Sub(first))
	item, err := store.GetItem(ctx, storetest.MithrilIngot)
	require.NoError(t, err)
	assert.Equal(t, "Mithril Ingot", item.Name)
}

func TestStore_ClosedHandle(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.GetItem(context.Background(), 1)
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}
