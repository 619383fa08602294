package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/profit"
)

type mockMarket struct {
	mock.Mock
}

func (m *mockMarket) Item(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *mockMarket) Listing(ctx context.Context, itemID int) (*domain.Listing, error) {
	args := m.Called(ctx, itemID)
	listing, _ := args.Get(0).(*domain.Listing)
	return listing, args.Error(1)
}

func (m *mockMarket) Listings(ctx context.Context, ids []int) ([]domain.Listing, error) {
	args := m.Called(ctx, ids)
	listings, _ := args.Get(0).([]domain.Listing)
	return listings, args.Error(1)
}

func (m *mockMarket) CraftedItemsUsing(ctx context.Context, itemID int) ([]domain.Item, error) {
	args := m.Called(ctx, itemID)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockMarket) ReconcilePlaceholders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockMarket) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, baseItemID int) (*profit.Report, error) {
	return &profit.Report{Base: domain.Item{ID: baseItemID, Name: "Mithril Ingot"}}, nil
}

func newTestRouter(m *mockMarket, adminKey string) http.Handler {
	return NewRouter(Dependencies{
		Market:      m,
		Analyzer:    stubAnalyzer{},
		Store:       m,
		AdminAPIKey: adminKey,
	})
}

func TestRouter_Routes(t *testing.T) {
	captureLogs(t)

	m := &mockMarket{}
	m.On("Ping", mock.Anything).Return(nil)
	m.On("Item", mock.Anything, 19684).Return(&domain.Item{ID: 19684, Name: "Mithril Ingot"}, nil)
	m.On("Listing", mock.Anything, 19684).Return(&domain.Listing{ItemID: 19684}, nil)
	m.On("CraftedItemsUsing", mock.Anything, 19684).Return([]domain.Item{}, nil)
	m.On("Listings", mock.Anything, []int{19684}).Return([]domain.Listing{{ItemID: 19684}}, nil)

	router := newTestRouter(m, "")

	for _, path := range []string{
		"/healthz",
		"/readyz",
		"/version",
		"/metrics",
		"/api/v1/items/19684",
		"/api/v1/items/19684/listing",
		"/api/v1/items/19684/crafted",
		"/api/v1/items/19684/profitability",
		"/api/v1/listings?ids=19684",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType), path)
	}
}

func TestRouter_Admin(t *testing.T) {
	captureLogs(t)

	t.Run("not mounted without a key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(&mockMarket{}, "").ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/admin/reconcile", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires the key", func(t *testing.T) {
		m := &mockMarket{}
		router := newTestRouter(m, "k")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/admin/reconcile", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		m.AssertNotCalled(t, "ReconcilePlaceholders", mock.Anything)
	})

	t.Run("reconciles with the key", func(t *testing.T) {
		m := &mockMarket{}
		m.On("ReconcilePlaceholders", mock.Anything).Return(2, nil)
		router := newTestRouter(m, "k")

		req := httptest.NewRequest("POST", "/api/v1/admin/reconcile", nil)
		req.Header.Set(HeaderAPIKey, "k")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), `"resolved":2`))
	})
}

func TestServer_StartStop(t *testing.T) {
	captureLogs(t)

	srv := NewServer(0, Dependencies{Market: &mockMarket{}, Analyzer: stubAnalyzer{}, Store: &mockMarket{}})
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	assert.NoError(t, srv.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}
