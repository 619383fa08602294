package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RecipeHashDelimiter separates itemID,amount pairs in a canonical recipe hash
const RecipeHashDelimiter = ";"

// Ingredient is one input of a recipe
type Ingredient struct {
	ItemID int `json:"item_id"`
	Amount int `json:"amount"`
}

// Recipe lists the ingredients needed to craft its owning item
type Recipe struct {
	Ingredients []Ingredient `json:"ingredients"`
}

// CanonicalHash returns the content address of the recipe: ingredients sorted
// by item id and rendered as itemID,amount pairs. Ordering of the input slice
// does not affect the result.
func (r Recipe) CanonicalHash() string {
	sorted := slices.Clone(r.Ingredients)
	slices.SortFunc(sorted, func(a, b Ingredient) int {
		if a.ItemID != b.ItemID {
			return a.ItemID - b.ItemID
		}
		return a.Amount - b.Amount
	})

	parts := make([]string, len(sorted))
	for i, ing := range sorted {
		parts[i] = strconv.Itoa(ing.ItemID) + "," + strconv.Itoa(ing.Amount)
	}
	return strings.Join(parts, RecipeHashDelimiter)
}

// AmountOf returns how many units of itemID the recipe consumes, 0 if none
func (r Recipe) AmountOf(itemID int) int {
	total := 0
	for _, ing := range r.Ingredients {
		if ing.ItemID == itemID {
			total += ing.Amount
		}
	}
	return total
}

// IngredientIDs returns the distinct ingredient item ids in first-seen order
func (r Recipe) IngredientIDs() []int {
	seen := make(map[int]struct{}, len(r.Ingredients))
	ids := make([]int, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if _, ok := seen[ing.ItemID]; ok {
			continue
		}
		seen[ing.ItemID] = struct{}{}
		ids = append(ids, ing.ItemID)
	}
	return ids
}

// Validate checks that every ingredient has a positive amount
func (r Recipe) Validate() error {
	for _, ing := range r.Ingredients {
		if ing.Amount <= 0 {
			return fmt.Errorf("%w: ingredient %d has amount %d", ErrInvalidRecipe, ing.ItemID, ing.Amount)
		}
	}
	return nil
}
