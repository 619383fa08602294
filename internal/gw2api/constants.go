package gw2api

import "time"

// Provider defaults
const (
	DefaultBaseURL   = "https://api.guildwars2.com"
	DefaultLanguage  = "en"
	DefaultTimeout   = 30 * time.Second
	DefaultBatchSize = 200
)

// Endpoint paths
const (
	PathItems        = "/v2/items"
	PathRecipeSearch = "/v2/recipes/search"
	PathRecipe       = "/v2/recipes/{id}"
	PathListing      = "/v2/commerce/listings/{id}"
	PathListings     = "/v2/commerce/listings"
)

// Request parameters
const (
	QueryParamIDs   = "ids"
	QueryParamLang  = "lang"
	QueryParamInput = "input"
	PathParamID     = "id"
)

// IngredientTypeItem is the only recipe input kind with an order book
const IngredientTypeItem = "Item"

// Endpoint labels for metrics and logs
const (
	EndpointItems        = "items"
	EndpointRecipeSearch = "recipe_search"
	EndpointRecipe       = "recipe"
	EndpointListing      = "listing"
	EndpointListings     = "listings"
)

// Log messages
const (
	LogMsgRemoteRequest  = "Provider request"
	LogMsgRemoteNotFound = "Provider has no data for request"
)
