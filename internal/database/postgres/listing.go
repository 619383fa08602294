package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TradingPost_Go/internal/database/generated"
	"github.com/osse101/TradingPost_Go/internal/domain"
)

// GetListing returns the cached order book snapshot for an item
func (s *Store) GetListing(ctx context.Context, itemID int) (*domain.Listing, error) {
	externalID, err := toInt32(itemID)
	if err != nil {
		return nil, err
	}

	row, err := s.q.GetListingByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %d: %w", itemID, err)
	}

	return &domain.Listing{
		ItemID:          int(row.ExternalID),
		Timestamp:       fromTimestamptz(row.ObservedAt),
		HighestBuyOrder: int(row.HighestBuyOrder),
		LowestSellOrder: int(row.LowestSellOrder),
		Static:          row.IsStatic,
	}, nil
}

// PutListing replaces the item's listing row, materializing the item as a
// placeholder when it is not cached yet
func (s *Store) PutListing(ctx context.Context, listing domain.Listing) (int64, error) {
	buy, err := toInt32(listing.HighestBuyOrder)
	if err != nil {
		return 0, err
	}
	sell, err := toInt32(listing.LowestSellOrder)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := beginTx(ctx, s.pool, s.q)
	if err != nil {
		return 0, err
	}
	defer SafeRollback(ctx, h.Tx())

	itemRef, err := upsertItem(ctx, h.Queries(), listing.ItemID, domain.PlaceholderName, s.clock.Now())
	if err != nil {
		return 0, err
	}

	pk, err := h.Queries().UpsertListing(ctx, generated.UpsertListingParams{
		ItemRef:         itemRef,
		ObservedAt:      timestamptz(listing.Timestamp),
		HighestBuyOrder: buy,
		LowestSellOrder: sell,
		IsStatic:        listing.Static,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert listing %d: %w", listing.ItemID, err)
	}

	if err := h.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit listing %d: %w", listing.ItemID, err)
	}
	return pk, nil
}
