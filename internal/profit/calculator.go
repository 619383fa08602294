// Package profit prices recipes against current listings and ranks what
// can be crafted from a base item.
package profit

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// ListingSource provides batched listings
type ListingSource interface {
	Listings(ctx context.Context, ids []int) ([]domain.Listing, error)
}

// Calculator prices recipes and applies the market fee
type Calculator struct {
	feePercent int
	listings   ListingSource
}

// NewCalculator creates a calculator. feePercent must be within [0, 100].
func NewCalculator(feePercent int, listings ListingSource) (*Calculator, error) {
	if feePercent < 0 || feePercent > 100 {
		return nil, fmt.Errorf("%w: fee percent %d", domain.ErrInvalidInput, feePercent)
	}
	return &Calculator{feePercent: feePercent, listings: listings}, nil
}

// FeePercent returns the configured market cut
func (c *Calculator) FeePercent() int {
	return c.feePercent
}

// AfterFees returns what a sale of amount nets once the cut is taken, rounded down
func (c *Calculator) AfterFees(amount int) int {
	kept := amount * (100 - c.feePercent)
	// Go division truncates toward zero; floor it for negatives
	q := kept / 100
	if kept%100 != 0 && kept < 0 {
		q--
	}
	return q
}

// WithFees returns the listing with both sides reduced by the market cut
func (c *Calculator) WithFees(l domain.Listing) domain.Listing {
	l.HighestBuyOrder = c.AfterFees(l.HighestBuyOrder)
	l.LowestSellOrder = c.AfterFees(l.LowestSellOrder)
	return l
}

// IngredientCost returns what buying every ingredient at the lowest sell
// order costs, using one batched listing lookup. Any ingredient without a
// listing makes the whole recipe InfeasibleCost.
func (c *Calculator) IngredientCost(ctx context.Context, recipe domain.Recipe) (int, error) {
	ids := recipe.IngredientIDs()
	if len(ids) == 0 {
		return 0, nil
	}

	listings, err := c.listings.Listings(ctx, ids)
	if err != nil {
		return 0, err
	}

	prices := make(map[int]int, len(listings))
	for _, l := range listings {
		prices[l.ItemID] = l.LowestSellOrder
	}

	total := 0
	for _, ing := range recipe.Ingredients {
		price, ok := prices[ing.ItemID]
		if !ok {
			return InfeasibleCost, nil
		}
		if price != 0 && ing.Amount > (math.MaxInt-1-total)/price {
			return InfeasibleCost, nil
		}
		total += ing.Amount * price
	}
	return total, nil
}
