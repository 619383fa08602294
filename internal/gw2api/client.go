// Package gw2api fetches items, recipes and trading post listings from the
// Guild Wars 2 HTTP API. Every request passes through the shared limiter.
package gw2api

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/metrics"
)

// Limiter gates outbound requests
type Limiter interface {
	Acquire(ctx context.Context) error
}

// NameSource gives read-only access to already cached items. It is used to
// keep a resolved name when a recipe's output item is decoded.
type NameSource interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
}

// Options configures the provider client
type Options struct {
	BaseURL   string
	Language  string
	Timeout   time.Duration
	BatchSize int
	Clock     clockwork.Clock
}

// Client implements repository.Remote against the provider API
type Client struct {
	http      *resty.Client
	limiter   Limiter
	names     NameSource
	clock     clockwork.Clock
	language  string
	batchSize int
}

// NewClient creates a provider client. names may be nil, in which case
// every recipe output item starts as a placeholder.
func NewClient(opts Options, limiter Limiter, names NameSource) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:      httpClient,
		limiter:   limiter,
		names:     names,
		clock:     opts.Clock,
		language:  opts.Language,
		batchSize: opts.BatchSize,
	}
}

// response is the subset of a provider reply the decoders need
type response struct {
	status int
	body   []byte
}

func (r response) notFound() bool {
	return r.status == http.StatusNotFound
}

// get issues one rate-limited GET. 404 is returned as a response, not an
// error; other non-2xx statuses are transport errors.
func (c *Client) get(ctx context.Context, endpoint, path string, query map[string]string, pathParams map[string]string) (response, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return response{}, err
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgRemoteRequest, "endpoint", endpoint, "path", path, "query", query)

	start := c.clock.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetPathParams(pathParams).
		Get(path)
	metrics.RemoteRequestDuration.WithLabelValues(endpoint).Observe(c.clock.Since(start).Seconds())

	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		return response{}, fmt.Errorf("%w: %s: %w", domain.ErrTransport, endpoint, err)
	}

	r := response{status: resp.StatusCode(), body: resp.Body()}
	switch {
	case r.notFound():
		metrics.RemoteRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeNotFound).Inc()
		log.Debug(LogMsgRemoteNotFound, "endpoint", endpoint, "query", query, "path_params", pathParams)
		return r, nil
	case r.status < 200 || r.status > 299:
		metrics.RemoteRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		return response{}, fmt.Errorf("%w: %s: unexpected status %d", domain.ErrTransport, endpoint, r.status)
	}

	metrics.RemoteRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
	return r, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// FetchItem looks up a single item
func (c *Client) FetchItem(ctx context.Context, id int) (*domain.Item, error) {
	resp, err := c.get(ctx, EndpointItems, PathItems, map[string]string{
		QueryParamIDs:  strconv.Itoa(id),
		QueryParamLang: c.language,
	}, nil)
	if err != nil {
		return nil, err
	}
	if resp.notFound() {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}

	items, err := decodeItems(resp.body)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	return &items[0], nil
}

// FetchItems looks up many items, one request per batch of ids.
// Batches the provider does not know at all are skipped.
func (c *Client) FetchItems(ctx context.Context, ids []int) ([]domain.Item, error) {
	result := []domain.Item{}
	if len(ids) == 0 {
		return result, nil
	}

	for chunk := range slices.Chunk(ids, c.batchSize) {
		resp, err := c.get(ctx, EndpointItems, PathItems, map[string]string{
			QueryParamIDs:  joinIDs(chunk),
			QueryParamLang: c.language,
		}, nil)
		if err != nil {
			return nil, err
		}
		if resp.notFound() {
			continue
		}

		items, err := decodeItems(resp.body)
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

// FetchRecipeIDsUsing returns the ids of recipes that consume itemID.
// The provider indexes recipes by input, so this is the first half of
// discovering what can be crafted from an item.
func (c *Client) FetchRecipeIDsUsing(ctx context.Context, itemID int) ([]int, error) {
	resp, err := c.get(ctx, EndpointRecipeSearch, PathRecipeSearch, map[string]string{
		QueryParamInput: strconv.Itoa(itemID),
	}, nil)
	if err != nil {
		return nil, err
	}
	if resp.notFound() {
		return []int{}, nil
	}
	return decodeRecipeIDs(resp.body)
}

// FetchRecipe fetches one recipe body and returns its output item carrying
// the recipe. The output name comes from the cached copy when it is
// resolved; otherwise the item is a placeholder.
func (c *Client) FetchRecipe(ctx context.Context, recipeID int) (*domain.Item, error) {
	resp, err := c.get(ctx, EndpointRecipe, PathRecipe, nil, map[string]string{
		PathParamID: strconv.Itoa(recipeID),
	})
	if err != nil {
		return nil, err
	}
	if resp.notFound() {
		return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}

	decoded, err := decodeRecipe(resp.body)
	if err != nil {
		return nil, err
	}

	name, err := c.outputName(ctx, decoded.OutputItemID)
	if err != nil {
		return nil, err
	}

	recipe := decoded.Recipe
	return &domain.Item{
		ID:     decoded.OutputItemID,
		Name:   name,
		Recipe: &recipe,
	}, nil
}

func (c *Client) outputName(ctx context.Context, id int) (string, error) {
	if c.names == nil {
		return domain.PlaceholderName, nil
	}

	cached, err := c.names.GetItem(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to look up cached output item %d: %w", id, err)
	}

	switch domain.Classify(cached) {
	case domain.LookupResolved:
		return cached.Name, nil
	case domain.LookupPlaceholder, domain.LookupAbsent:
		return domain.PlaceholderName, nil
	}
	return domain.PlaceholderName, nil
}

// FetchListing returns the current order book summary for one item, or nil
// when the item has no live order book.
func (c *Client) FetchListing(ctx context.Context, itemID int) (*domain.Listing, error) {
	resp, err := c.get(ctx, EndpointListing, PathListing, nil, map[string]string{
		PathParamID: strconv.Itoa(itemID),
	})
	if err != nil {
		return nil, err
	}
	if resp.notFound() {
		return nil, nil
	}

	listing, err := decodeListing(resp.body, c.clock.Now())
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// FetchListings returns order book summaries for many items. A batch the
// provider reports as not found contributes nothing.
func (c *Client) FetchListings(ctx context.Context, ids []int) ([]domain.Listing, error) {
	result := []domain.Listing{}
	if len(ids) == 0 {
		return result, nil
	}

	for chunk := range slices.Chunk(ids, c.batchSize) {
		resp, err := c.get(ctx, EndpointListings, PathListings, map[string]string{
			QueryParamIDs: joinIDs(chunk),
		}, nil)
		if err != nil {
			return nil, err
		}
		if resp.notFound() {
			continue
		}

		listings, err := decodeListings(resp.body, c.clock.Now())
		if err != nil {
			return nil, err
		}
		result = append(result, listings...)
	}
	return result, nil
}
