package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// GetListing returns the cached order book snapshot for an item
func (s *Store) GetListing(ctx context.Context, itemID int) (*domain.Listing, error) {
	var (
		l          domain.Listing
		observedAt int64
	)
	err := s.db.QueryRowContext(ctx, getListingSQL, itemID).
		Scan(&l.ItemID, &observedAt, &l.HighestBuyOrder, &l.LowestSellOrder, &l.Static)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %d: %w", itemID, err)
	}
	l.Timestamp = fromMillis(observedAt)
	return &l, nil
}

// PutListing replaces the item's listing row, materializing the item as a
// placeholder when it is not cached yet
func (s *Store) PutListing(ctx context.Context, listing domain.Listing) (int64, error) {
	var pk int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		itemRef, err := upsertItem(ctx, tx, listing.ItemID, domain.PlaceholderName, s.clock.Now())
		if err != nil {
			return err
		}
		err = tx.QueryRowContext(ctx, upsertListingSQL,
			itemRef,
			toMillis(listing.Timestamp),
			listing.HighestBuyOrder,
			listing.LowestSellOrder,
			listing.Static,
		).Scan(&pk)
		if err != nil {
			return fmt.Errorf("failed to upsert listing %d: %w", listing.ItemID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pk, nil
}
