package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Not found errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgListingNotFound = "listing not found"
	ErrMsgRecipeNotFound  = "recipe not found"

	// Remote errors
	ErrMsgDecode    = "malformed provider payload"
	ErrMsgTransport = "provider request failed"

	// Recipe errors
	ErrMsgInvalidRecipe = "invalid recipe"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Not found errors are mapped to absent results by the market repository and
// never reach its callers.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)
	ErrRecipeNotFound  = errors.New(ErrMsgRecipeNotFound)

	ErrDecode    = errors.New(ErrMsgDecode)
	ErrTransport = errors.New(ErrMsgTransport)

	ErrInvalidRecipe = errors.New(ErrMsgInvalidRecipe)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)

// IsNotFound reports whether err is one of the provider "does not exist" errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrListingNotFound) ||
		errors.Is(err, ErrRecipeNotFound)
}
