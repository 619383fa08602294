package repository

import (
	"context"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// Listing defines the interface for order book snapshot persistence
type Listing interface {
	// GetListing returns the current listing for the item, or nil when absent
	GetListing(ctx context.Context, itemID int) (*domain.Listing, error)
	// PutListing replaces the listing row for the item and returns its surrogate key
	PutListing(ctx context.Context, listing domain.Listing) (int64, error)
}
