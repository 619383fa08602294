package domain

import "time"

// Listing is a point-in-time snapshot of an item's order book.
// Static listings are synthetic (vendor-bought components) and are never
// refreshed from the provider.
type Listing struct {
	ItemID          int       `json:"item_id"`
	Timestamp       time.Time `json:"timestamp"`
	HighestBuyOrder int       `json:"highest_buy_order"`
	LowestSellOrder int       `json:"lowest_sell_order"`
	Static          bool      `json:"static"`
}

// IsStale reports whether a non-static listing is older than ttl at now.
func (l Listing) IsStale(now time.Time, ttl time.Duration) bool {
	if l.Static {
		return false
	}
	return now.Sub(l.Timestamp) > ttl
}
