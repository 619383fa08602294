package market

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradingPost_Go/internal/database/sqlite"
	"github.com/osse101/TradingPost_Go/internal/domain"
)

// MockRemote is a testify mock of repository.Remote
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) FetchItem(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockRemote) FetchItems(ctx context.Context, ids []int) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockRemote) FetchRecipeIDsUsing(ctx context.Context, itemID int) ([]int, error) {
	args := m.Called(ctx, itemID)
	ids, _ := args.Get(0).([]int)
	return ids, args.Error(1)
}

func (m *MockRemote) FetchRecipe(ctx context.Context, recipeID int) (*domain.Item, error) {
	args := m.Called(ctx, recipeID)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockRemote) FetchListing(ctx context.Context, itemID int) (*domain.Listing, error) {
	args := m.Called(ctx, itemID)
	listing, _ := args.Get(0).(*domain.Listing)
	return listing, args.Error(1)
}

func (m *MockRemote) FetchListings(ctx context.Context, ids []int) ([]domain.Listing, error) {
	args := m.Called(ctx, ids)
	listings, _ := args.Get(0).([]domain.Listing)
	return listings, args.Error(1)
}

// MockReconciler is a testify mock of Reconciler
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) ReconcilePlaceholders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var testEpoch = time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC)

type testEnv struct {
	repo   *Repository
	store  *sqlite.Store
	remote *MockRemote
	clock  *clockwork.FakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testEpoch)
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "market.db"), clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	remote := &MockRemote{}
	t.Cleanup(func() { remote.AssertExpectations(t) })

	repo := New(store, remote, Options{ListingTTL: DefaultListingTTL, Clock: clock})
	return &testEnv{repo: repo, store: store, remote: remote, clock: clock}
}

const (
	mithrilIngot     = 19684
	orichalcumIngot  = 19685
	globOfEctoplasm  = 19721
	thickLeather     = 46747
	mithrilInscribed = 46742
)

func mithrilRecipe() *domain.Recipe {
	return &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: mithrilIngot, Amount: 50},
		{ItemID: globOfEctoplasm, Amount: 1},
		{ItemID: thickLeather, Amount: 10},
	}}
}
