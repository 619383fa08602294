package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TradingPost_Go/internal/database/generated"
	"github.com/osse101/TradingPost_Go/internal/domain"
)

// GetItem retrieves an item by provider id, without its recipe
func (s *Store) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	externalID, err := toInt32(id)
	if err != nil {
		return nil, err
	}

	row, err := s.q.GetItemByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	return &domain.Item{ID: int(row.ExternalID), Name: row.Name}, nil
}

// PutItem upserts the item and, when present, its recipe graph in one transaction
func (s *Store) PutItem(ctx context.Context, item domain.Item) (int64, error) {
	if item.Recipe != nil {
		if err := item.Recipe.Validate(); err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := beginTx(ctx, s.pool, s.q)
	if err != nil {
		return 0, err
	}
	defer SafeRollback(ctx, h.Tx())

	now := s.clock.Now()
	pk, err := upsertItem(ctx, h.Queries(), item.ID, item.Name, now)
	if err != nil {
		return 0, err
	}

	if item.Recipe != nil {
		if err := putRecipe(ctx, h.Queries(), pk, *item.Recipe, now); err != nil {
			return 0, fmt.Errorf("failed to store recipe for item %d: %w", item.ID, err)
		}
	}

	if err := h.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit item %d: %w", item.ID, err)
	}
	return pk, nil
}

func upsertItem(ctx context.Context, q *generated.Queries, id int, name string, now time.Time) (int64, error) {
	externalID, err := toInt32(id)
	if err != nil {
		return 0, err
	}

	pk, err := q.UpsertItem(ctx, generated.UpsertItemParams{
		ExternalID: externalID,
		Name:       name,
		TouchedAt:  timestamptz(now),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert item %d: %w", id, err)
	}
	return pk, nil
}

// putRecipe materializes every ingredient item before the rows that reference it
func putRecipe(ctx context.Context, q *generated.Queries, outputRef int64, recipe domain.Recipe, now time.Time) error {
	refs := make(map[int]int64, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		if _, ok := refs[ing.ItemID]; ok {
			continue
		}
		ref, err := upsertItem(ctx, q, ing.ItemID, domain.PlaceholderName, now)
		if err != nil {
			return err
		}
		refs[ing.ItemID] = ref
	}

	hash := recipe.CanonicalHash()
	if err := q.InsertRecipe(ctx, generated.InsertRecipeParams{OutputRef: outputRef, IngredientHash: hash}); err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	recipeRef, err := q.GetRecipeRef(ctx, generated.GetRecipeRefParams{OutputRef: outputRef, IngredientHash: hash})
	if err != nil {
		return fmt.Errorf("failed to read back recipe key: %w", err)
	}

	for _, ing := range recipe.Ingredients {
		amount, err := toInt32(ing.Amount)
		if err != nil {
			return err
		}
		if err := q.InsertIngredient(ctx, generated.InsertIngredientParams{
			RecipeRef: recipeRef,
			ItemRef:   refs[ing.ItemID],
			Amount:    amount,
		}); err != nil {
			return fmt.Errorf("failed to insert ingredient %d: %w", ing.ItemID, err)
		}
	}
	return nil
}

// GetCraftedItemsReferencing returns one crafted item per recipe that consumes id
func (s *Store) GetCraftedItemsReferencing(ctx context.Context, id int) ([]domain.Item, error) {
	externalID, err := toInt32(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.q.ListCraftedIngredientRows(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes using item %d: %w", id, err)
	}

	result := []domain.Item{}
	var current int64 = -1
	for _, row := range rows {
		if row.RecipePk != current {
			current = row.RecipePk
			result = append(result, domain.Item{
				ID:     int(row.OutputID),
				Name:   row.OutputName,
				Recipe: &domain.Recipe{Ingredients: []domain.Ingredient{}},
			})
		}
		last := &result[len(result)-1]
		last.Recipe.Ingredients = append(last.Recipe.Ingredients, domain.Ingredient{
			ItemID: int(row.IngredientID),
			Amount: int(row.Amount),
		})
	}
	return result, nil
}

// FindPlaceholderItemIDs returns the provider ids still awaiting a real name
func (s *Store) FindPlaceholderItemIDs(ctx context.Context) ([]int, error) {
	rows, err := s.q.ListPlaceholderItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list placeholder items: %w", err)
	}

	ids := make([]int, len(rows))
	for i, id := range rows {
		ids[i] = int(id)
	}
	return ids, nil
}
