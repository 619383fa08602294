package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/config"
	"github.com/osse101/TradingPost_Go/internal/gw2api"
	"github.com/osse101/TradingPost_Go/internal/market"
	"github.com/osse101/TradingPost_Go/internal/profit"
	"github.com/osse101/TradingPost_Go/internal/ratelimit"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

// Market bundles the explicitly constructed market components. There are no
// package-level singletons: every binary builds its own.
type Market struct {
	Limiter    *ratelimit.Limiter
	Client     *gw2api.Client
	Repository *market.Repository
	Calculator *profit.Calculator
	Analyzer   *profit.Analyzer
}

// BuildMarket wires limiter, provider client, cache-aside repository and
// profit analyzer over an open store
func BuildMarket(cfg *config.Config, store repository.Store, clock clockwork.Clock) (*Market, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerMinute: cfg.APIRequestsPerMinute,
		SafetyMargin:      cfg.APISafetyMargin,
		Cooldown:          cfg.APICooldown,
	}, clock)

	// The store doubles as the client's name source so recipe output
	// lookups never re-enter the repository.
	client := gw2api.NewClient(gw2api.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Clock:   clock,
	}, limiter, store)

	repo := market.New(store, client, market.Options{
		ListingTTL:    cfg.ListingTTL,
		ItemCacheSize: cfg.ItemCacheSize,
		Clock:         clock,
	})

	calc, err := profit.NewCalculator(cfg.MarketFeePercent, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCalculator, err)
	}

	return &Market{
		Limiter:    limiter,
		Client:     client,
		Repository: repo,
		Calculator: calc,
		Analyzer:   profit.NewAnalyzer(repo, calc),
	}, nil
}

// SeedStaticListings stores the configured vendor-priced listings
func (m *Market) SeedStaticListings(ctx context.Context, prices map[int]int) error {
	if len(prices) == 0 {
		return nil
	}
	if err := m.Repository.SeedStaticListings(ctx, prices); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedListings, err)
	}
	slog.Info(LogMsgStaticListings, "count", len(prices))
	return nil
}
