// Package storetest holds the behavioral suite every repository.Store
// backend must pass. Backend packages call Run from their own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/repository"
)

// Table names as created by the migrations
const (
	TableItems       = "items"
	TableRecipes     = "recipes"
	TableIngredients = "ingredients"
	TableListings    = "listings"
)

// Harness is a freshly migrated, empty store plus a row counter for it
type Harness struct {
	Store repository.Store
	Count func(t *testing.T, table string) int
}

// Factory builds an isolated harness for one subtest
type Factory func(t *testing.T) Harness

// Fixture ids
const (
	MithrilIngot     = 19684
	ElderWoodPlank   = 19709
	GlobOfEctoplasm  = 19721
	SpiritwoodPlank  = 19712
	MithrilInscribed = 46742
	ThickLeather     = 46747
	DeldrimorIngot   = 46738
)

// MithrilRecipe is 50 mithril ingots, 1 glob of ectoplasm and 10 thick leather sections
func MithrilRecipe() *domain.Recipe {
	return &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: MithrilIngot, Amount: 50},
		{ItemID: GlobOfEctoplasm, Amount: 1},
		{ItemID: ThickLeather, Amount: 10},
	}}
}

// Run executes the suite against stores produced by newHarness
func Run(t *testing.T, newHarness Factory) {
	t.Run("GetItem", func(t *testing.T) { testGetItem(t, newHarness(t)) })
	t.Run("PutItemIdempotent", func(t *testing.T) { testPutItemIdempotent(t, newHarness(t)) })
	t.Run("PlaceholderProtection", func(t *testing.T) { testPlaceholderProtection(t, newHarness(t)) })
	t.Run("RecipeDedup", func(t *testing.T) { testRecipeDedup(t, newHarness(t)) })
	t.Run("MultipleRecipes", func(t *testing.T) { testMultipleRecipes(t, newHarness(t)) })
	t.Run("InvalidRecipe", func(t *testing.T) { testInvalidRecipe(t, newHarness(t)) })
	t.Run("CraftedItemsReferencing", func(t *testing.T) { testCraftedItemsReferencing(t, newHarness(t)) })
	t.Run("Listings", func(t *testing.T) { testListings(t, newHarness(t)) })
	t.Run("PlaceholderIDs", func(t *testing.T) { testPlaceholderIDs(t, newHarness(t)) })
}

func assertCounts(t *testing.T, h Harness, items, recipes, ingredients int) {
	t.Helper()
	assert.Equal(t, items, h.Count(t, TableItems), "items")
	assert.Equal(t, recipes, h.Count(t, TableRecipes), "recipes")
	assert.Equal(t, ingredients, h.Count(t, TableIngredients), "ingredients")
}

func testGetItem(t *testing.T, h Harness) {
	ctx := context.Background()

	item, err := h.Store.GetItem(ctx, MithrilIngot)
	require.NoError(t, err)
	assert.Nil(t, item)

	_, err = h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription", Recipe: MithrilRecipe()})
	require.NoError(t, err)

	item, err = h.Store.GetItem(ctx, MithrilInscribed)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription"}, *item)

	ingredient, err := h.Store.GetItem(ctx, GlobOfEctoplasm)
	require.NoError(t, err)
	require.NotNil(t, ingredient)
	assert.Equal(t, domain.LookupPlaceholder, domain.Classify(ingredient))
}

func testPutItemIdempotent(t *testing.T, h Harness) {
	ctx := context.Background()
	crafted := domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription", Recipe: MithrilRecipe()}

	first, err := h.Store.PutItem(ctx, crafted)
	require.NoError(t, err)
	assertCounts(t, h, 4, 1, 3)

	second, err := h.Store.PutItem(ctx, crafted)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assertCounts(t, h, 4, 1, 3)

	plain := domain.Item{ID: MithrilIngot, Name: "Mithril Ingot"}
	_, err = h.Store.PutItem(ctx, plain)
	require.NoError(t, err)
	_, err = h.Store.PutItem(ctx, plain)
	require.NoError(t, err)
	assertCounts(t, h, 4, 1, 3)
}

func testPlaceholderProtection(t *testing.T, h Harness) {
	ctx := context.Background()

	t.Run("placeholder never overwrites", func(t *testing.T) {
		_, err := h.Store.PutItem(ctx, domain.Item{ID: MithrilIngot, Name: "Mithril Ingot"})
		require.NoError(t, err)
		_, err = h.Store.PutItem(ctx, domain.NewPlaceholder(MithrilIngot))
		require.NoError(t, err)

		item, err := h.Store.GetItem(ctx, MithrilIngot)
		require.NoError(t, err)
		assert.Equal(t, "Mithril Ingot", item.Name)
	})

	t.Run("recipe ingredient keeps resolved name", func(t *testing.T) {
		_, err := h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: domain.PlaceholderName, Recipe: MithrilRecipe()})
		require.NoError(t, err)

		item, err := h.Store.GetItem(ctx, MithrilIngot)
		require.NoError(t, err)
		assert.Equal(t, "Mithril Ingot", item.Name)
	})

	t.Run("placeholder resolves", func(t *testing.T) {
		_, err := h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription"})
		require.NoError(t, err)

		item, err := h.Store.GetItem(ctx, MithrilInscribed)
		require.NoError(t, err)
		assert.Equal(t, domain.LookupResolved, domain.Classify(item))
		assert.Equal(t, "Mithril Imbued Inscription", item.Name)
	})
}

func testRecipeDedup(t *testing.T, h Harness) {
	ctx := context.Background()
	reordered := &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: ThickLeather, Amount: 10},
		{ItemID: MithrilIngot, Amount: 50},
		{ItemID: GlobOfEctoplasm, Amount: 1},
	}}

	_, err := h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: domain.PlaceholderName, Recipe: MithrilRecipe()})
	require.NoError(t, err)
	_, err = h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: domain.PlaceholderName, Recipe: reordered})
	require.NoError(t, err)

	assertCounts(t, h, 4, 1, 3)
}

func testMultipleRecipes(t *testing.T, h Harness) {
	ctx := context.Background()

	first := &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: MithrilIngot, Amount: 2},
		{ItemID: ElderWoodPlank, Amount: 1},
	}}
	_, err := h.Store.PutItem(ctx, domain.Item{ID: SpiritwoodPlank, Name: "Spiritwood Plank", Recipe: first})
	require.NoError(t, err)
	assertCounts(t, h, 3, 1, 2)

	second := &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: GlobOfEctoplasm, Amount: 1},
		{ItemID: ThickLeather, Amount: 3},
	}}
	_, err = h.Store.PutItem(ctx, domain.Item{ID: SpiritwoodPlank, Name: "Spiritwood Plank", Recipe: second})
	require.NoError(t, err)
	assertCounts(t, h, 5, 2, 4)
}

func testInvalidRecipe(t *testing.T, h Harness) {
	ctx := context.Background()
	bad := &domain.Recipe{Ingredients: []domain.Ingredient{{ItemID: MithrilIngot, Amount: 0}}}

	_, err := h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: "x", Recipe: bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
	assertCounts(t, h, 0, 0, 0)
}

func testCraftedItemsReferencing(t *testing.T, h Harness) {
	ctx := context.Background()

	items, err := h.Store.GetCraftedItemsReferencing(ctx, MithrilIngot)
	require.NoError(t, err)
	assert.Empty(t, items)

	deldrimor := &domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: MithrilIngot, Amount: 100},
		{ItemID: ElderWoodPlank, Amount: 2},
	}}
	_, err = h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription", Recipe: MithrilRecipe()})
	require.NoError(t, err)
	_, err = h.Store.PutItem(ctx, domain.Item{ID: DeldrimorIngot, Name: domain.PlaceholderName, Recipe: deldrimor})
	require.NoError(t, err)

	items, err = h.Store.GetCraftedItemsReferencing(ctx, MithrilIngot)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription", Recipe: MithrilRecipe()}, items[0])
	assert.Equal(t, domain.Item{ID: DeldrimorIngot, Name: domain.PlaceholderName, Recipe: deldrimor}, items[1])

	items, err = h.Store.GetCraftedItemsReferencing(ctx, ElderWoodPlank)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, DeldrimorIngot, items[0].ID)

	items, err = h.Store.GetCraftedItemsReferencing(ctx, MithrilInscribed)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func testListings(t *testing.T, h Harness) {
	ctx := context.Background()
	at := time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC)

	got, err := h.Store.GetListing(ctx, MithrilIngot)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := domain.Listing{ItemID: MithrilIngot, Timestamp: at, HighestBuyOrder: 166, LowestSellOrder: 168}
	_, err = h.Store.PutListing(ctx, first)
	require.NoError(t, err)

	got, err = h.Store.GetListing(ctx, MithrilIngot)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ItemID, got.ItemID)
	assert.True(t, first.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, 166, got.HighestBuyOrder)
	assert.Equal(t, 168, got.LowestSellOrder)
	assert.False(t, got.Static)

	later := domain.Listing{ItemID: MithrilIngot, Timestamp: at.Add(5 * time.Minute), HighestBuyOrder: 171, LowestSellOrder: 204}
	_, err = h.Store.PutListing(ctx, later)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Count(t, TableListings))

	got, err = h.Store.GetListing(ctx, MithrilIngot)
	require.NoError(t, err)
	assert.True(t, later.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, 171, got.HighestBuyOrder)
	assert.Equal(t, 204, got.LowestSellOrder)

	static := domain.Listing{ItemID: ThickLeather, Timestamp: at, HighestBuyOrder: 8, LowestSellOrder: 8, Static: true}
	_, err = h.Store.PutListing(ctx, static)
	require.NoError(t, err)

	got, err = h.Store.GetListing(ctx, ThickLeather)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Static)
	assert.Equal(t, 2, h.Count(t, TableListings))

	item, err := h.Store.GetItem(ctx, ThickLeather)
	require.NoError(t, err)
	assert.Equal(t, domain.LookupPlaceholder, domain.Classify(item))
}

func testPlaceholderIDs(t *testing.T, h Harness) {
	ctx := context.Background()

	ids, err := h.Store.FindPlaceholderItemIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = h.Store.PutItem(ctx, domain.Item{ID: MithrilInscribed, Name: "Mithril Imbued Inscription", Recipe: MithrilRecipe()})
	require.NoError(t, err)

	ids, err = h.Store.FindPlaceholderItemIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{MithrilIngot, GlobOfEctoplasm, ThickLeather}, ids)

	_, err = h.Store.PutItem(ctx, domain.Item{ID: GlobOfEctoplasm, Name: "Glob of Ectoplasm"})
	require.NoError(t, err)

	ids, err = h.Store.FindPlaceholderItemIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{MithrilIngot, ThickLeather}, ids)
}
