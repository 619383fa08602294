package gw2api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// Payload shapes. Required fields are pointers so a missing key is
// distinguishable from a zero value.

type itemPayload struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

type ingredientPayload struct {
	ItemID *int   `json:"item_id"`
	ID     *int   `json:"id"`
	Type   string `json:"type"`
	Count  *int   `json:"count"`
}

type recipePayload struct {
	ID           int                 `json:"id"`
	OutputItemID *int                `json:"output_item_id"`
	Ingredients  []ingredientPayload `json:"ingredients"`
}

type orderPayload struct {
	UnitPrice int `json:"unit_price"`
}

type listingPayload struct {
	ID    *int           `json:"id"`
	Buys  []orderPayload `json:"buys"`
	Sells []orderPayload `json:"sells"`
}

// decodedRecipe is a recipe body before its output item is resolved
type decodedRecipe struct {
	OutputItemID int
	Recipe       domain.Recipe
}

func decodeError(shape string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDecode, shape, err)
}

func decodeItems(body []byte) ([]domain.Item, error) {
	var payload []itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, decodeError("items", err)
	}

	items := make([]domain.Item, 0, len(payload))
	for i, p := range payload {
		if p.ID == nil || p.Name == nil {
			return nil, decodeError("items", fmt.Errorf("entry %d is missing id or name", i))
		}
		items = append(items, domain.Item{ID: *p.ID, Name: *p.Name})
	}
	return items, nil
}

func decodeRecipeIDs(body []byte) ([]int, error) {
	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, decodeError("recipe ids", err)
	}
	return ids, nil
}

func decodeRecipe(body []byte) (decodedRecipe, error) {
	var payload recipePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return decodedRecipe{}, decodeError("recipe", err)
	}
	if payload.OutputItemID == nil {
		return decodedRecipe{}, decodeError("recipe", fmt.Errorf("recipe %d has no output_item_id", payload.ID))
	}

	ingredients := make([]domain.Ingredient, 0, len(payload.Ingredients))
	for i, ing := range payload.Ingredients {
		// Currency and guild upgrade inputs have no order book
		if ing.Type != "" && ing.Type != IngredientTypeItem {
			continue
		}
		itemID := ing.ItemID
		if itemID == nil {
			itemID = ing.ID
		}
		if itemID == nil || ing.Count == nil {
			return decodedRecipe{}, decodeError("recipe", fmt.Errorf("ingredient %d is missing item id or count", i))
		}
		if *ing.Count <= 0 {
			return decodedRecipe{}, decodeError("recipe", fmt.Errorf("ingredient %d has non-positive count %d", i, *ing.Count))
		}
		ingredients = append(ingredients, domain.Ingredient{ItemID: *itemID, Amount: *ing.Count})
	}

	return decodedRecipe{
		OutputItemID: *payload.OutputItemID,
		Recipe:       domain.Recipe{Ingredients: ingredients},
	}, nil
}

func listingFromPayload(p listingPayload, at time.Time) (domain.Listing, error) {
	if p.ID == nil {
		return domain.Listing{}, fmt.Errorf("listing is missing id")
	}
	l := domain.Listing{ItemID: *p.ID, Timestamp: at}
	// Buys are ordered highest first, sells lowest first
	if len(p.Buys) > 0 {
		l.HighestBuyOrder = p.Buys[0].UnitPrice
	}
	if len(p.Sells) > 0 {
		l.LowestSellOrder = p.Sells[0].UnitPrice
	}
	return l, nil
}

func decodeListing(body []byte, at time.Time) (domain.Listing, error) {
	var payload listingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Listing{}, decodeError("listing", err)
	}
	l, err := listingFromPayload(payload, at)
	if err != nil {
		return domain.Listing{}, decodeError("listing", err)
	}
	return l, nil
}

func decodeListings(body []byte, at time.Time) ([]domain.Listing, error) {
	var payload []listingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, decodeError("listings", err)
	}

	listings := make([]domain.Listing, 0, len(payload))
	for _, p := range payload {
		l, err := listingFromPayload(p, at)
		if err != nil {
			return nil, decodeError("listings", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}
