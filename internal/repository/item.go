package repository

import (
	"context"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// Item defines the interface for item, recipe and ingredient persistence
type Item interface {
	// GetItem returns the stored item without its recipe, or nil when absent
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	// PutItem upserts the item by provider id and returns its surrogate key.
	// A placeholder name never overwrites a resolved one. When the item
	// carries a recipe, missing ingredient items are materialized as
	// placeholders before the recipe and ingredient rows are written.
	PutItem(ctx context.Context, item domain.Item) (int64, error)
	// GetCraftedItemsReferencing returns one entry per stored recipe that
	// consumes the given item, each with its output item and full recipe
	GetCraftedItemsReferencing(ctx context.Context, id int) ([]domain.Item, error)
	// FindPlaceholderItemIDs returns every item still named with the placeholder
	FindPlaceholderItemIDs(ctx context.Context) ([]int, error)
}
