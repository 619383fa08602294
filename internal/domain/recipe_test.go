package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_CanonicalHash(t *testing.T) {
	t.Run("sorted by item id", func(t *testing.T) {
		r := Recipe{Ingredients: []Ingredient{
			{ItemID: 46747, Amount: 10},
			{ItemID: 19684, Amount: 50},
			{ItemID: 19721, Amount: 1},
		}}
		assert.Equal(t, "19684,50;19721,1;46747,10", r.CanonicalHash())
	})

	t.Run("stable under reordering", func(t *testing.T) {
		a := Recipe{Ingredients: []Ingredient{{ItemID: 1, Amount: 2}, {ItemID: 3, Amount: 4}}}
		b := Recipe{Ingredients: []Ingredient{{ItemID: 3, Amount: 4}, {ItemID: 1, Amount: 2}}}
		assert.Equal(t, a.CanonicalHash(), b.CanonicalHash())
	})

	t.Run("amount changes the hash", func(t *testing.T) {
		a := Recipe{Ingredients: []Ingredient{{ItemID: 1, Amount: 2}}}
		b := Recipe{Ingredients: []Ingredient{{ItemID: 1, Amount: 3}}}
		assert.NotEqual(t, a.CanonicalHash(), b.CanonicalHash())
	})

	t.Run("does not mutate ingredients", func(t *testing.T) {
		r := Recipe{Ingredients: []Ingredient{{ItemID: 9, Amount: 1}, {ItemID: 2, Amount: 1}}}
		_ = r.CanonicalHash()
		assert.Equal(t, 9, r.Ingredients[0].ItemID)
	})

	t.Run("empty recipe", func(t *testing.T) {
		assert.Equal(t, "", Recipe{}.CanonicalHash())
	})
}

func TestRecipe_AmountOfAndIngredientIDs(t *testing.T) {
	r := Recipe{Ingredients: []Ingredient{
		{ItemID: 19684, Amount: 50},
		{ItemID: 19721, Amount: 1},
		{ItemID: 19684, Amount: 5},
	}}

	assert.Equal(t, 55, r.AmountOf(19684))
	assert.Equal(t, 0, r.AmountOf(1))
	assert.Equal(t, []int{19684, 19721}, r.IngredientIDs())
}

func TestRecipe_Validate(t *testing.T) {
	require.NoError(t, Recipe{Ingredients: []Ingredient{{ItemID: 1, Amount: 1}}}.Validate())

	err := Recipe{Ingredients: []Ingredient{{ItemID: 1, Amount: 0}}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, LookupAbsent, Classify(nil))

	placeholder := NewPlaceholder(7)
	assert.Equal(t, LookupPlaceholder, Classify(&placeholder))

	resolved := Item{ID: 7, Name: "Mithril Ingot"}
	assert.Equal(t, LookupResolved, Classify(&resolved))
	assert.Equal(t, "resolved", LookupResolved.String())
}

func TestListing_IsStale(t *testing.T) {
	ts := time.Date(2019, 4, 2, 13, 37, 0, 0, time.UTC)
	ttl := 120 * time.Second
	l := Listing{ItemID: 1, Timestamp: ts}

	assert.False(t, l.IsStale(ts.Add(119*time.Second), ttl))
	assert.True(t, l.IsStale(ts.Add(121*time.Second), ttl))

	l.Static = true
	assert.False(t, l.IsStale(ts.Add(365*24*time.Hour), ttl))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrItemNotFound))
	assert.True(t, IsNotFound(ErrListingNotFound))
	assert.False(t, IsNotFound(ErrDecode))
	assert.False(t, IsNotFound(nil))
}
