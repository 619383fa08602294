package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidItemID     = "Invalid item id"
	ErrMsgInvalidIDList     = "Invalid ids query parameter"
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgItemNotFound    = "Item not found"
	ErrMsgListingNotFound = "Listing not found"

	ErrMsgProviderUnavailable = "Trading post provider unavailable. Please try again later."
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgRequestCancelled    = "Request cancelled"
)

// Health response values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "store connection failed"
)

// Log messages
const (
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgMarketRequestFail = "Market request failed"
	LogMsgReconciled        = "Placeholder reconciliation requested"
)

// Query parameters and limits
const (
	QueryParamIDs = "ids"
	URLParamID    = "id"

	// MaxListingIDs bounds a single batched listings request
	MaxListingIDs = 200
)
