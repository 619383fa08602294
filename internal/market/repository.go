// Package market is the cache-aside layer between callers, the local store
// and the provider API. It owns every write-back decision.
package market

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/metrics"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

// Options configures cache policy
type Options struct {
	ListingTTL    time.Duration
	ItemCacheSize int
	ItemCacheTTL  time.Duration
	Clock         clockwork.Clock
}

// Repository answers item, recipe and listing lookups from the store,
// falling through to the provider on a miss or a stale listing.
// Public operations are serialized: at most one provider call is in flight.
type Repository struct {
	mu     sync.Mutex
	store  repository.Store
	remote repository.Remote
	clock  clockwork.Clock
	ttl    time.Duration
	items  *expirable.LRU[int, domain.Item]
}

// New creates a Repository over store and remote
func New(store repository.Store, remote repository.Remote, opts Options) *Repository {
	if opts.ListingTTL <= 0 {
		opts.ListingTTL = DefaultListingTTL
	}
	if opts.ItemCacheSize <= 0 {
		opts.ItemCacheSize = DefaultItemCacheSize
	}
	if opts.ItemCacheTTL <= 0 {
		opts.ItemCacheTTL = DefaultItemCacheTTL
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	return &Repository{
		store:  store,
		remote: remote,
		clock:  opts.Clock,
		ttl:    opts.ListingTTL,
		items:  expirable.NewLRU[int, domain.Item](opts.ItemCacheSize, nil, opts.ItemCacheTTL),
	}
}

// ListingTTL returns the staleness threshold in use
func (r *Repository) ListingTTL() time.Duration {
	return r.ttl
}

func lookup(kind, result string) {
	metrics.CacheLookups.WithLabelValues(kind, result).Inc()
}

// cachedItem checks memory, then the store. Only resolved items are kept
// in memory since a placeholder row changes on reconciliation.
func (r *Repository) cachedItem(ctx context.Context, id int) (*domain.Item, error) {
	if item, ok := r.items.Get(id); ok {
		return &item, nil
	}

	stored, err := r.store.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	switch domain.Classify(stored) {
	case domain.LookupResolved:
		r.items.Add(id, *stored)
		return stored, nil
	case domain.LookupPlaceholder:
		return stored, nil
	case domain.LookupAbsent:
		return nil, nil
	}
	return nil, nil
}

// putItem writes an item back and refreshes the memory copy
func (r *Repository) putItem(ctx context.Context, item domain.Item) error {
	if _, err := r.store.PutItem(ctx, item); err != nil {
		return fmt.Errorf("failed to store item %d: %w", item.ID, err)
	}

	// The memory copy never carries a recipe, matching GetItem
	if !item.IsPlaceholder() {
		r.items.Add(item.ID, domain.Item{ID: item.ID, Name: item.Name})
	} else {
		r.items.Remove(item.ID)
	}
	return nil
}

// Item returns the item with the given provider id. Any cached row is
// returned as-is, placeholder or not. Returns nil when the provider does
// not know the id.
func (r *Repository) Item(ctx context.Context, id int) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	cached, err := r.cachedItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		lookup(metrics.KindItem, metrics.ResultHit)
		log.Debug(LogMsgItemCacheHit, "item_id", id, "state", domain.Classify(cached).String())
		return cached, nil
	}
	lookup(metrics.KindItem, metrics.ResultMiss)

	fetched, err := r.remote.FetchItem(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.putItem(ctx, *fetched); err != nil {
		return nil, err
	}

	log.Debug(LogMsgItemFetched, "item_id", id)
	return fetched, nil
}

// Items returns every known item among ids: cached ones plus one batched
// provider call for the rest. Unknown ids are omitted.
func (r *Repository) Items(ctx context.Context, ids []int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Item, 0, len(ids))
	var missing []int
	seen := make(map[int]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		cached, err := r.cachedItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if cached == nil {
			lookup(metrics.KindItem, metrics.ResultMiss)
			missing = append(missing, id)
			continue
		}
		lookup(metrics.KindItem, metrics.ResultHit)
		result = append(result, *cached)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := r.remote.FetchItems(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, item := range fetched {
		if err := r.putItem(ctx, item); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Debug(LogMsgItemsFetched, "requested", len(missing), "fetched", len(fetched))
	return append(result, fetched...), nil
}

// CraftedItemsUsing returns the crafted items whose recipes consume itemID.
// A local hit is returned as-is; otherwise one provider discovery pass runs
// and every discovered item is stored before returning.
func (r *Repository) CraftedItemsUsing(ctx context.Context, itemID int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	local, err := r.store.GetCraftedItemsReferencing(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		lookup(metrics.KindRecipe, metrics.ResultHit)
		log.Debug(LogMsgCraftedLocalHit, "item_id", itemID, "count", len(local))
		return local, nil
	}
	lookup(metrics.KindRecipe, metrics.ResultMiss)

	recipeIDs, err := r.remote.FetchRecipeIDsUsing(ctx, itemID)
	if err != nil {
		return nil, err
	}

	crafted := make([]domain.Item, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		item, err := r.remote.FetchRecipe(ctx, recipeID)
		if err != nil {
			if domain.IsNotFound(err) {
				log.Warn(LogMsgRecipeVanished, "recipe_id", recipeID)
				continue
			}
			return nil, err
		}
		if err := r.putItem(ctx, *item); err != nil {
			return nil, err
		}
		crafted = append(crafted, *item)
	}

	log.Debug(LogMsgCraftedDiscovered, "item_id", itemID, "recipes", len(recipeIDs), "count", len(crafted))
	return crafted, nil
}

// Listing returns the current listing for itemID. Static listings and
// listings younger than the TTL come from the store; anything else is
// refreshed from the provider. Returns nil when the provider has no order
// book for the item.
func (r *Repository) Listing(ctx context.Context, itemID int) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	cached, err := r.store.GetListing(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		switch {
		case cached.Static:
			lookup(metrics.KindListing, metrics.ResultStatic)
			return cached, nil
		case !cached.IsStale(r.clock.Now(), r.ttl):
			lookup(metrics.KindListing, metrics.ResultHit)
			log.Debug(LogMsgListingFresh, "item_id", itemID, "age", r.clock.Since(cached.Timestamp))
			return cached, nil
		default:
			lookup(metrics.KindListing, metrics.ResultStale)
		}
	} else {
		lookup(metrics.KindListing, metrics.ResultMiss)
	}

	fresh, err := r.remote.FetchListing(ctx, itemID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if fresh == nil {
		return nil, nil
	}
	if _, err := r.store.PutListing(ctx, *fresh); err != nil {
		return nil, fmt.Errorf("failed to store listing %d: %w", itemID, err)
	}

	log.Debug(LogMsgListingRefreshed, "item_id", itemID)
	return fresh, nil
}

// Listings applies the Listing policy per id, merging every miss and
// every stale row into one batched provider call. Ids without an order
// book are omitted.
func (r *Repository) Listings(ctx context.Context, ids []int) ([]domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	result := make([]domain.Listing, 0, len(ids))
	var refresh []int
	seen := make(map[int]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		cached, err := r.store.GetListing(ctx, id)
		if err != nil {
			return nil, err
		}
		switch {
		case cached == nil:
			lookup(metrics.KindListing, metrics.ResultMiss)
			refresh = append(refresh, id)
		case cached.Static:
			lookup(metrics.KindListing, metrics.ResultStatic)
			result = append(result, *cached)
		case cached.IsStale(now, r.ttl):
			lookup(metrics.KindListing, metrics.ResultStale)
			refresh = append(refresh, id)
		default:
			lookup(metrics.KindListing, metrics.ResultHit)
			result = append(result, *cached)
		}
	}

	if len(refresh) == 0 {
		return result, nil
	}

	fetched, err := r.remote.FetchListings(ctx, refresh)
	if err != nil {
		return nil, err
	}
	for _, l := range fetched {
		if _, err := r.store.PutListing(ctx, l); err != nil {
			return nil, fmt.Errorf("failed to store listing %d: %w", l.ItemID, err)
		}
	}

	logger.FromContext(ctx).Debug(LogMsgListingsRefreshed, "requested", len(refresh), "fetched", len(fetched))
	return append(result, fetched...), nil
}

// ReconcilePlaceholders fetches every placeholder item in one batched
// call and stores the real names. Returns how many were resolved.
func (r *Repository) ReconcilePlaceholders(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	ids, err := r.store.FindPlaceholderItemIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		log.Debug(LogMsgReconcileNothing)
		return 0, nil
	}

	fetched, err := r.remote.FetchItems(ctx, ids)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, item := range fetched {
		if item.IsPlaceholder() {
			continue
		}
		if err := r.putItem(ctx, item); err != nil {
			return resolved, err
		}
		resolved++
	}

	metrics.PlaceholdersResolved.Add(float64(resolved))
	log.Info(LogMsgReconcileCompleted, "placeholders", len(ids), "resolved", resolved)
	return resolved, nil
}

// SeedStaticListings stores a never-refreshed listing per item, priced at
// its vendor cost on both sides of the book
func (r *Repository) SeedStaticListings(ctx context.Context, prices map[int]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	for itemID, price := range prices {
		if price < 0 {
			return fmt.Errorf("%w: static price for item %d is negative", domain.ErrInvalidInput, itemID)
		}
		listing := domain.Listing{
			ItemID:          itemID,
			Timestamp:       now,
			HighestBuyOrder: price,
			LowestSellOrder: price,
			Static:          true,
		}
		if _, err := r.store.PutListing(ctx, listing); err != nil {
			return fmt.Errorf("failed to seed static listing %d: %w", itemID, err)
		}
		logger.FromContext(ctx).Debug(LogMsgStaticListingSeeded, "item_id", itemID, "price", price)
	}
	return nil
}

// Ping checks the store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
