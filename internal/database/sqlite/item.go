package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// GetItem retrieves an item by provider id, without its recipe
func (s *Store) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	var item domain.Item
	err := s.db.QueryRowContext(ctx, getItemSQL, id).Scan(&item.ID, &item.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// PutItem upserts the item and, when present, its recipe graph in one transaction
func (s *Store) PutItem(ctx context.Context, item domain.Item) (int64, error) {
	if item.Recipe != nil {
		if err := item.Recipe.Validate(); err != nil {
			return 0, err
		}
	}

	var pk int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		now := s.clock.Now()
		var err error
		pk, err = upsertItem(ctx, tx, item.ID, item.Name, now)
		if err != nil {
			return err
		}
		if item.Recipe == nil {
			return nil
		}
		if err := putRecipe(ctx, tx, pk, *item.Recipe, now); err != nil {
			return fmt.Errorf("failed to store recipe for item %d: %w", item.ID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pk, nil
}

func upsertItem(ctx context.Context, tx *sql.Tx, id int, name string, now time.Time) (int64, error) {
	var pk int64
	if err := tx.QueryRowContext(ctx, upsertItemSQL, id, name, toMillis(now)).Scan(&pk); err != nil {
		return 0, fmt.Errorf("failed to upsert item %d: %w", id, err)
	}
	return pk, nil
}

// putRecipe materializes every ingredient item before the rows that reference it
func putRecipe(ctx context.Context, tx *sql.Tx, outputRef int64, recipe domain.Recipe, now time.Time) error {
	refs := make(map[int]int64, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		if _, ok := refs[ing.ItemID]; ok {
			continue
		}
		ref, err := upsertItem(ctx, tx, ing.ItemID, domain.PlaceholderName, now)
		if err != nil {
			return err
		}
		refs[ing.ItemID] = ref
	}

	hash := recipe.CanonicalHash()
	if _, err := tx.ExecContext(ctx, insertRecipeSQL, outputRef, hash); err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	var recipeRef int64
	if err := tx.QueryRowContext(ctx, getRecipeRefSQL, outputRef, hash).Scan(&recipeRef); err != nil {
		return fmt.Errorf("failed to read back recipe key: %w", err)
	}

	for _, ing := range recipe.Ingredients {
		if _, err := tx.ExecContext(ctx, insertIngredientSQL, recipeRef, refs[ing.ItemID], ing.Amount); err != nil {
			return fmt.Errorf("failed to insert ingredient %d: %w", ing.ItemID, err)
		}
	}
	return nil
}

// GetCraftedItemsReferencing returns one crafted item per recipe that consumes id
func (s *Store) GetCraftedItemsReferencing(ctx context.Context, id int) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, listCraftedIngredientRowsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes using item %d: %w", id, err)
	}
	defer rows.Close()

	result := []domain.Item{}
	var current int64 = -1
	for rows.Next() {
		var (
			recipePk   int64
			output     domain.Item
			ingredient domain.Ingredient
		)
		if err := rows.Scan(&recipePk, &output.ID, &output.Name, &ingredient.ItemID, &ingredient.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan crafted item row: %w", err)
		}
		if recipePk != current {
			current = recipePk
			output.Recipe = &domain.Recipe{Ingredients: []domain.Ingredient{}}
			result = append(result, output)
		}
		last := &result[len(result)-1]
		last.Recipe.Ingredients = append(last.Recipe.Ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate crafted item rows: %w", err)
	}
	return result, nil
}

// FindPlaceholderItemIDs returns the provider ids still awaiting a real name
func (s *Store) FindPlaceholderItemIDs(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, listPlaceholderIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list placeholder items: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan placeholder id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate placeholder ids: %w", err)
	}
	return ids, nil
}
