package profit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradingPost_Go/internal/domain"
)

// MockSource is a testify mock of Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Listings(ctx context.Context, ids []int) ([]domain.Listing, error) {
	args := m.Called(ctx, ids)
	listings, _ := args.Get(0).([]domain.Listing)
	return listings, args.Error(1)
}

func (m *MockSource) Item(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockSource) CraftedItemsUsing(ctx context.Context, itemID int) ([]domain.Item, error) {
	args := m.Called(ctx, itemID)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockSource) Listing(ctx context.Context, itemID int) (*domain.Listing, error) {
	args := m.Called(ctx, itemID)
	listing, _ := args.Get(0).(*domain.Listing)
	return listing, args.Error(1)
}

const (
	itemA = 19684
	itemB = 19721
	itemC = 46747
)

func threeIngredientRecipe() domain.Recipe {
	return domain.Recipe{Ingredients: []domain.Ingredient{
		{ItemID: itemA, Amount: 50},
		{ItemID: itemB, Amount: 1},
		{ItemID: itemC, Amount: 10},
	}}
}

func newCalculator(t *testing.T, src ListingSource) *Calculator {
	t.Helper()
	c, err := NewCalculator(DefaultFeePercent, src)
	require.NoError(t, err)
	return c
}

func TestNewCalculator_RejectsBadFee(t *testing.T) {
	_, err := NewCalculator(101, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCalculator(-1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculator_WithFees(t *testing.T) {
	c := newCalculator(t, nil)

	got := c.WithFees(domain.Listing{ItemID: itemA, HighestBuyOrder: 166, LowestSellOrder: 168, Static: true})
	// floor(166 * 0.85) = 141, floor(168 * 0.85) = 142
	assert.Equal(t, domain.Listing{ItemID: itemA, HighestBuyOrder: 141, LowestSellOrder: 142, Static: true}, got)

	assert.Equal(t, 0, c.AfterFees(0))
	assert.Equal(t, 85, c.AfterFees(100))
	assert.Equal(t, 0, c.AfterFees(1))
	assert.Equal(t, -1, c.AfterFees(-1))
}

func TestCalculator_WithFees_Configurable(t *testing.T) {
	c, err := NewCalculator(10, nil)
	require.NoError(t, err)
	assert.Equal(t, 90, c.AfterFees(100))
	assert.Equal(t, 10, c.FeePercent())
}

func TestCalculator_IngredientCost(t *testing.T) {
	ctx := context.Background()

	t.Run("sums lowest sell orders", func(t *testing.T) {
		src := &MockSource{}
		src.On("Listings", mock.Anything, []int{itemA, itemB, itemC}).Return([]domain.Listing{
			{ItemID: itemA, LowestSellOrder: 10},
			{ItemID: itemB, LowestSellOrder: 20},
			{ItemID: itemC, LowestSellOrder: 5},
		}, nil).Once()

		cost, err := newCalculator(t, src).IngredientCost(ctx, threeIngredientRecipe())
		require.NoError(t, err)
		assert.Equal(t, 570, cost)
		src.AssertExpectations(t)
	})

	t.Run("missing listing is infeasible", func(t *testing.T) {
		src := &MockSource{}
		src.On("Listings", mock.Anything, []int{itemA, itemB, itemC}).Return([]domain.Listing{
			{ItemID: itemA, LowestSellOrder: 10},
			{ItemID: itemC, LowestSellOrder: 5},
		}, nil).Once()

		cost, err := newCalculator(t, src).IngredientCost(ctx, threeIngredientRecipe())
		require.NoError(t, err)
		assert.Equal(t, InfeasibleCost, cost)
	})

	t.Run("empty recipe costs nothing", func(t *testing.T) {
		src := &MockSource{}
		cost, err := newCalculator(t, src).IngredientCost(ctx, domain.Recipe{})
		require.NoError(t, err)
		assert.Zero(t, cost)
		src.AssertNotCalled(t, "Listings", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure surfaces", func(t *testing.T) {
		src := &MockSource{}
		src.On("Listings", mock.Anything, mock.Anything).Return(nil, domain.ErrTransport).Once()

		_, err := newCalculator(t, src).IngredientCost(ctx, threeIngredientRecipe())
		assert.ErrorIs(t, err, domain.ErrTransport)
	})
}
