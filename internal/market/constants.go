package market

import "time"

// Cache policy defaults
const (
	// DefaultListingTTL is how long a cached listing is served before a refresh
	DefaultListingTTL = 120 * time.Second

	// DefaultItemCacheSize bounds the in-memory resolved item cache
	DefaultItemCacheSize = 4096

	// DefaultItemCacheTTL expires in-memory items so renames in the store are eventually seen
	DefaultItemCacheTTL = time.Hour
)

// Log messages
const (
	LogMsgItemCacheHit        = "Item served from cache"
	LogMsgItemFetched         = "Item fetched from provider"
	LogMsgItemsFetched        = "Items fetched from provider"
	LogMsgCraftedLocalHit     = "Crafted items served from cache"
	LogMsgCraftedDiscovered   = "Crafted items discovered from provider"
	LogMsgRecipeVanished      = "Recipe listed by search no longer exists"
	LogMsgListingFresh        = "Listing served from cache"
	LogMsgListingRefreshed    = "Listing refreshed from provider"
	LogMsgListingsRefreshed   = "Listings refreshed from provider"
	LogMsgReconcileNothing    = "No placeholder items to reconcile"
	LogMsgReconcileCompleted  = "Placeholder reconciliation completed"
	LogMsgReconcileFailed     = "Placeholder reconciliation failed"
	LogMsgStaticListingSeeded = "Static listing seeded"
)
