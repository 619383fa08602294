package gw2api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// countingLimiter records how many requests asked for a slot
type countingLimiter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (l *countingLimiter) Acquire(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.err
}

func (l *countingLimiter) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type mapNames map[int]domain.Item

func (m mapNames) GetItem(_ context.Context, id int) (*domain.Item, error) {
	item, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return body
}

// fakeProvider serves canned responses keyed by request path and records every request it sees
type fakeProvider struct {
	mu       sync.Mutex
	requests []*http.Request
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeProvider(t *testing.T) (*fakeProvider, *httptest.Server) {
	t.Helper()
	p := &fakeProvider{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.requests = append(p.requests, r)
		handler, ok := p.routes[r.URL.Path]
		p.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"text":"no such id"}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return p, srv
}

func (p *fakeProvider) serve(path string, status int, body []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}

func (p *fakeProvider) handle(path string, fn func(http.ResponseWriter, *http.Request)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routes[path] = fn
}

func (p *fakeProvider) Requests() []*http.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*http.Request(nil), p.requests...)
}

func newTestClient(srv *httptest.Server, limiter Limiter, names NameSource, clock clockwork.Clock) *Client {
	return NewClient(Options{BaseURL: srv.URL, Timeout: 5 * time.Second, Clock: clock}, limiter, names)
}

func TestClient_FetchItem(t *testing.T) {
	provider, srv := newFakeProvider(t)
	provider.serve(PathItems, http.StatusOK, fixture(t, "item_19684.json"))
	limiter := &countingLimiter{}
	client := newTestClient(srv, limiter, nil, nil)

	item, err := client.FetchItem(context.Background(), 19684)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 19684, item.ID)
	assert.Equal(t, "Mithril Ingot", item.Name)
	assert.Nil(t, item.Recipe)

	reqs := provider.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "19684", reqs[0].URL.Query().Get(QueryParamIDs))
	assert.Equal(t, DefaultLanguage, reqs[0].URL.Query().Get(QueryParamLang))
	assert.Equal(t, 1, limiter.Calls())
}

func TestClient_FetchItem_NotFound(t *testing.T) {
	t.Run("404", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		item, err := client.FetchItem(context.Background(), 1)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("empty array", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve(PathItems, http.StatusOK, []byte(`[]`))
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		item, err := client.FetchItem(context.Background(), 1)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestClient_FetchItems(t *testing.T) {
	t.Run("empty input makes no request", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		limiter := &countingLimiter{}
		client := newTestClient(srv, limiter, nil, nil)

		items, err := client.FetchItems(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
		assert.Empty(t, provider.Requests())
		assert.Zero(t, limiter.Calls())
	})

	t.Run("decodes a batch", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve(PathItems, http.StatusOK, fixture(t, "items_multi.json"))
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		items, err := client.FetchItems(context.Background(), []int{19684, 19685})
		require.NoError(t, err)
		assert.Equal(t, []domain.Item{
			{ID: 19684, Name: "Mithril Ingot"},
			{ID: 19685, Name: "Orichalcum Ingot"},
		}, items)

		reqs := provider.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "19684,19685", reqs[0].URL.Query().Get(QueryParamIDs))
	})

	t.Run("partitions into batches of 200", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve(PathItems, http.StatusOK, []byte(`[]`))
		limiter := &countingLimiter{}
		client := newTestClient(srv, limiter, nil, nil)

		ids := make([]int, 450)
		for i := range ids {
			ids[i] = i + 1
		}

		_, err := client.FetchItems(context.Background(), ids)
		require.NoError(t, err)

		reqs := provider.Requests()
		require.Len(t, reqs, 3)
		assert.Len(t, strings.Split(reqs[0].URL.Query().Get(QueryParamIDs), ","), 200)
		assert.Len(t, strings.Split(reqs[1].URL.Query().Get(QueryParamIDs), ","), 200)
		assert.Len(t, strings.Split(reqs[2].URL.Query().Get(QueryParamIDs), ","), 50)
		assert.Equal(t, 3, limiter.Calls())
	})

	t.Run("unknown batch contributes nothing", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		items, err := client.FetchItems(context.Background(), []int{999999})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestClient_FetchRecipeIDsUsing(t *testing.T) {
	provider, srv := newFakeProvider(t)
	provider.serve(PathRecipeSearch, http.StatusOK, []byte(`[7319, 7320, 12054]`))
	client := newTestClient(srv, &countingLimiter{}, nil, nil)

	ids, err := client.FetchRecipeIDsUsing(context.Background(), 19684)
	require.NoError(t, err)
	assert.Equal(t, []int{7319, 7320, 12054}, ids)

	reqs := provider.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "19684", reqs[0].URL.Query().Get(QueryParamInput))
}

func TestClient_FetchRecipe(t *testing.T) {
	expected := &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: 19684, Amount: 50},
		{ItemID: 19721, Amount: 1},
		{ItemID: 46747, Amount: 10},
	}}

	t.Run("unknown output becomes a placeholder", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve("/v2/recipes/7319", http.StatusOK, fixture(t, "recipe_7319.json"))
		client := newTestClient(srv, &countingLimiter{}, mapNames{}, nil)

		item, err := client.FetchRecipe(context.Background(), 7319)
		require.NoError(t, err)
		assert.Equal(t, 46742, item.ID)
		assert.Equal(t, domain.PlaceholderName, item.Name)
		assert.Equal(t, expected, item.Recipe)
	})

	t.Run("resolved cached name is kept", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve("/v2/recipes/7319", http.StatusOK, fixture(t, "recipe_7319.json"))
		names := mapNames{46742: {ID: 46742, Name: "Mithril Imbued Inscription"}}
		client := newTestClient(srv, &countingLimiter{}, names, nil)

		item, err := client.FetchRecipe(context.Background(), 7319)
		require.NoError(t, err)
		assert.Equal(t, "Mithril Imbued Inscription", item.Name)
		assert.Equal(t, expected, item.Recipe)
	})

	t.Run("cached placeholder stays a placeholder", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve("/v2/recipes/7319", http.StatusOK, fixture(t, "recipe_7319.json"))
		names := mapNames{46742: domain.NewPlaceholder(46742)}
		client := newTestClient(srv, &countingLimiter{}, names, nil)

		item, err := client.FetchRecipe(context.Background(), 7319)
		require.NoError(t, err)
		assert.True(t, item.IsPlaceholder())
	})

	t.Run("not found", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		item, err := client.FetchRecipe(context.Background(), 1)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestClient_FetchListing(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC))

	t.Run("decodes top of book", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve("/v2/commerce/listings/19684", http.StatusOK, fixture(t, "listing_19684.json"))
		client := newTestClient(srv, &countingLimiter{}, nil, clock)

		listing, err := client.FetchListing(context.Background(), 19684)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, domain.Listing{
			ItemID:          19684,
			Timestamp:       clock.Now(),
			HighestBuyOrder: 166,
			LowestSellOrder: 168,
		}, *listing)
	})

	t.Run("no order book is absent", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, clock)

		listing, err := client.FetchListing(context.Background(), 19721)
		require.NoError(t, err)
		assert.Nil(t, listing)
	})
}

func TestClient_FetchListings(t *testing.T) {
	clock := clockwork.NewFakeClock()

	t.Run("decodes a batch", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve(PathListings, http.StatusOK, fixture(t, "listings_multi.json"))
		client := newTestClient(srv, &countingLimiter{}, nil, clock)

		listings, err := client.FetchListings(context.Background(), []int{19684, 19685})
		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Equal(t, 171, listings[0].HighestBuyOrder)
		assert.Equal(t, 204, listings[0].LowestSellOrder)
		assert.Equal(t, 158, listings[1].HighestBuyOrder)
		assert.Equal(t, 205, listings[1].LowestSellOrder)
	})

	t.Run("batch not found is empty", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, clock)

		listings, err := client.FetchListings(context.Background(), []int{1, 2})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("empty input makes no request", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{}, nil, clock)

		listings, err := client.FetchListings(context.Background(), []int{})
		require.NoError(t, err)
		assert.Empty(t, listings)
		assert.Empty(t, provider.Requests())
	})
}

func TestClient_Failures(t *testing.T) {
	t.Run("server error is a transport error", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve(PathItems, http.StatusInternalServerError, []byte(`oops`))
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		_, err := client.FetchItems(context.Background(), []int{1})
		assert.ErrorIs(t, err, domain.ErrTransport)
		assert.NotErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("malformed payload is a decode error", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.serve("/v2/commerce/listings/19684", http.StatusOK, []byte(`{"id": "nope"`))
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		_, err := client.FetchListing(context.Background(), 19684)
		assert.ErrorIs(t, err, domain.ErrDecode)
		assert.False(t, domain.IsNotFound(err))
	})

	t.Run("limiter error stops the request", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		client := newTestClient(srv, &countingLimiter{err: context.Canceled}, nil, nil)

		_, err := client.FetchItem(context.Background(), 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, provider.Requests())
	})

	t.Run("unreachable host is a transport error", func(t *testing.T) {
		_, srv := newFakeProvider(t)
		url := srv.URL
		srv.Close()
		client := NewClient(Options{BaseURL: url, Timeout: time.Second}, &countingLimiter{}, nil)

		_, err := client.FetchRecipeIDsUsing(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrTransport)
	})

	t.Run("recipe without output is a decode error", func(t *testing.T) {
		provider, srv := newFakeProvider(t)
		provider.handle("/v2/recipes/42", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": 42, "ingredients": []}`))
		})
		client := newTestClient(srv, &countingLimiter{}, nil, nil)

		_, err := client.FetchRecipe(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})
}
