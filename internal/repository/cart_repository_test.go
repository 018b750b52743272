package repository_test

import (
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/port"
	"github.com/nikolayk812/shopnest/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartRepository
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// fresh repository per test
func (suite *cartRepositorySuite) SetupTest() {
	suite.repo = repository.NewCart()
}

func (suite *cartRepositorySuite) TestAddItem() {
	tests := []struct {
		name         string
		ownerID      string
		adds         int
		wantQuantity int
		wantError    string
	}{
		{
			name:         "add item to cart: ok",
			ownerID:      gofakeit.UUID(),
			adds:         1,
			wantQuantity: 1,
		},
		{
			name:         "repeated adds increment the same line",
			ownerID:      gofakeit.UUID(),
			adds:         3,
			wantQuantity: 3,
		},
		{
			name:      "add item with empty owner ID: error",
			ownerID:   "",
			adds:      1,
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			product := randomProduct()

			var (
				quantity int
				err      error
			)
			for i := 0; i < tt.adds; i++ {
				quantity, err = suite.repo.AddItem(ctx, tt.ownerID, product)
			}
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuantity, quantity)

			items, err := suite.repo.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)

			require.Len(t, items, 1)
			assertLineItem(t, domain.LineItem{Product: product, Quantity: tt.wantQuantity}, items[0])
		})
	}
}

func (suite *cartRepositorySuite) TestGetCart() {
	tests := []struct {
		name       string
		ownerID    string
		setupItems []domain.Product
		wantError  string
	}{
		{
			name:       "get cart with items: ok",
			ownerID:    gofakeit.UUID(),
			setupItems: []domain.Product{randomProduct(), randomProduct()},
		},
		{
			name:       "get cart never touched: empty",
			ownerID:    gofakeit.UUID(),
			setupItems: nil,
		},
		{
			name:      "get cart with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, p := range tt.setupItems {
				_, err := suite.repo.AddItem(ctx, tt.ownerID, p)
				require.NoError(t, err)
			}

			items, err := suite.repo.GetCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			require.Len(t, items, len(tt.setupItems))
			for i, p := range tt.setupItems {
				assertLineItem(t, domain.LineItem{Product: p, Quantity: 1}, items[i])
			}
		})
	}
}

func (suite *cartRepositorySuite) TestIncrementDecrementItem() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	product := randomProduct()

	_, err := suite.repo.AddItem(ctx, ownerID, product)
	require.NoError(t, err)

	quantity, err := suite.repo.IncrementItem(ctx, ownerID, product.Name)
	require.NoError(t, err)
	assert.Equal(t, 2, quantity)

	quantity, err = suite.repo.DecrementItem(ctx, ownerID, product.Name)
	require.NoError(t, err)
	assert.Equal(t, 1, quantity)

	// taking the last unit removes the line
	quantity, err = suite.repo.DecrementItem(ctx, ownerID, product.Name)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)

	items, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = suite.repo.IncrementItem(ctx, ownerID, product.Name)
	require.ErrorIs(t, err, domain.ErrLineItemNotFound)
}

func (suite *cartRepositorySuite) TestSetItemQuantity() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	product := randomProduct()

	_, err := suite.repo.AddItem(ctx, ownerID, product)
	require.NoError(t, err)

	require.NoError(t, suite.repo.SetItemQuantity(ctx, ownerID, product.Name, 5))

	items, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	err = suite.repo.SetItemQuantity(ctx, ownerID, product.Name, 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func (suite *cartRepositorySuite) TestDeleteItem() {
	tests := []struct {
		name        string
		ownerID     string
		setup       bool
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing item: ok",
			ownerID:     gofakeit.UUID(),
			setup:       true,
			wantDeleted: true,
		},
		{
			name:        "delete non-existing item: not found",
			ownerID:     gofakeit.UUID(),
			wantDeleted: false,
		},
		{
			name:      "delete with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			product := randomProduct()
			if tt.setup {
				_, err := suite.repo.AddItem(ctx, tt.ownerID, product)
				require.NoError(t, err)
			}

			deleted, err := suite.repo.DeleteItem(ctx, tt.ownerID, product.Name)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func (suite *cartRepositorySuite) TestClearCart() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	for i := 0; i < 3; i++ {
		_, err := suite.repo.AddItem(ctx, ownerID, randomProduct())
		require.NoError(t, err)
	}

	require.NoError(t, suite.repo.ClearCart(ctx, ownerID))

	items, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func (suite *cartRepositorySuite) TestOwnersAreIsolated() {
	t := suite.T()
	ctx := t.Context()

	alice, bob := gofakeit.UUID(), gofakeit.UUID()

	_, err := suite.repo.AddItem(ctx, alice, randomProduct())
	require.NoError(t, err)

	items, err := suite.repo.GetCart(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// A snapshot taken before later mutations stays frozen, so an order
// built from it cannot be corrupted by clearing the cart.
func (suite *cartRepositorySuite) TestSnapshotIsFrozen() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	product := randomProduct()

	_, err := suite.repo.AddItem(ctx, ownerID, product)
	require.NoError(t, err)

	snapshot, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	_, err = suite.repo.IncrementItem(ctx, ownerID, product.Name)
	require.NoError(t, err)
	require.NoError(t, suite.repo.ClearCart(ctx, ownerID))

	require.Len(t, snapshot, 1)
	assertLineItem(t, domain.LineItem{Product: product, Quantity: 1}, snapshot[0])
}

func (suite *cartRepositorySuite) TestConcurrentMutations() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	product := randomProduct()

	const workers = 8
	const addsPerWorker = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < addsPerWorker; j++ {
				_, err := suite.repo.AddItem(ctx, ownerID, product)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	items, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, workers*addsPerWorker, items[0].Quantity)
}

func randomProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.UUID(),
		Category:    domain.CategorySkincare,
		Description: gofakeit.Sentence(3),
		Price:       domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 100)), currency.GBP),
	}
}

func assertLineItem(t *testing.T, expected, actual domain.LineItem) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
		cmp.Comparer(func(x, y currency.Unit) bool { return x.String() == y.String() }),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
