package repository

import (
	"context"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// Remote defines the provider lookups the market repository falls through to.
// Implementations never write to the local store.
type Remote interface {
	FetchItem(ctx context.Context, id int) (*domain.Item, error)
	FetchItems(ctx context.Context, ids []int) ([]domain.Item, error)
	FetchRecipeIDsUsing(ctx context.Context, itemID int) ([]int, error)
	FetchRecipe(ctx context.Context, recipeID int) (*domain.Item, error)
	FetchListing(ctx context.Context, itemID int) (*domain.Listing, error)
	FetchListings(ctx context.Context, ids []int) ([]domain.Listing, error)
}
