package checkout

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"greenbasket-client/internal/address"
	"greenbasket-client/internal/cart"
	"greenbasket-client/internal/line"
	"greenbasket-client/internal/order"
	"greenbasket-client/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetCart(ctx context.Context) (*cart.Payload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Payload), args.Error(1)
}

func (m *MockCartRepository) AddToCart(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error {
	args := m.Called(ctx, productCode, quantity, weightValue, weightUnit)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveOneUnit(ctx context.Context, productCode string, quantity int, weightValue float64, weightUnit string) error {
	args := m.Called(ctx, productCode, quantity, weightValue, weightUnit)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveLine(ctx context.Context, productCode string, weightValue float64, weightUnit string) error {
	args := m.Called(ctx, productCode, weightValue, weightUnit)
	return args.Error(0)
}

// MockOrderPlacer is a mock implementation of OrderPlacer
type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, req order.PlaceRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newSnapshot(t *testing.T) SnapshotStore {
	t.Helper()
	return NewSnapshotStore(store.New(filepath.Join(t.TempDir(), "state.json")))
}

func twoItems() []line.Item {
	added := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	return []line.Item{
		{
			ProductCode: "SKU1", ProductName: "Basmati Rice",
			WeightValue: 500, WeightUnit: "g",
			Quantity: 2, UnitPrice: 100, DiscountPercent: 10,
			TotalPrice: 200, DiscountPrice: 20, AfterDiscount: 180,
			GST: 9, Shipping: 40, AddedAt: added,
		},
		{
			ProductCode: "SKU2", ProductName: "Toor Dal",
			WeightValue: 1, WeightUnit: "kg",
			Quantity: 1, UnitPrice: 150,
			TotalPrice: 150, AfterDiscount: 150,
			GST: 7.5, Shipping: 40, AddedAt: added,
		},
	}
}

func TestService_BeginAndHydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshot survives a remount", func(t *testing.T) {
		kv := store.New(filepath.Join(t.TempDir(), "state.json"))
		svc := NewService(NewSnapshotStore(kv), new(MockCartRepository), new(MockOrderPlacer))

		require.NoError(t, svc.BeginFromCart(twoItems()))

		// A fresh service over the same file simulates a screen remount.
		again := NewService(NewSnapshotStore(kv), new(MockCartRepository), new(MockOrderPlacer))
		items, err := again.Hydrate(ctx)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "SKU1", items[0].ProductCode)
		assert.Equal(t, 180.0, items[0].AfterDiscount)
	})

	t.Run("Empty snapshot redirects", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))

		_, err := svc.Hydrate(ctx)
		assert.ErrorIs(t, err, ErrEmptySnapshot)
	})

	t.Run("Buy now synthesizes a priced line", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))

		require.NoError(t, svc.BeginBuyNow(line.BuyNow{
			ProductCode: "SKU3", UnitPrice: 80, DiscountPercent: 25,
			WeightValue: 250, WeightUnit: "g",
		}))

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 80.0, items[0].TotalPrice)
		assert.Equal(t, 20.0, items[0].DiscountPrice)
		assert.Equal(t, 60.0, items[0].AfterDiscount)
	})

	t.Run("Reorder maps past order lines", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))

		require.NoError(t, svc.BeginReorder([]line.OrderItem{
			{ProductCode: "SKU4", Quantity: 2, TotalAmount: 300},
		}))

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 150.0, items[0].UnitPrice)
	})
}

func TestService_SyncCartBeforePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Adds only missing lines", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(newSnapshot(t), cartRepo, new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		// SKU1 already lives in the server cart; SKU2 does not.
		cartRepo.On("GetCart", ctx).Return(&cart.Payload{Items: []line.CartRow{
			{ProductCode: "SKU1", WeightValue: 500, WeightUnit: "g", Quantity: 2},
		}}, nil).Once()
		cartRepo.On("AddToCart", ctx, "SKU2", 1, 1.0, "kg").Return(nil).Once()

		require.NoError(t, svc.SyncCartBeforePayment(ctx))

		cartRepo.AssertExpectations(t)
		cartRepo.AssertNumberOfCalls(t, "AddToCart", 1)
	})

	t.Run("Error - cart read fails", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(newSnapshot(t), cartRepo, new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("GetCart", ctx).Return(nil, errors.New("network")).Once()

		assert.ErrorIs(t, svc.SyncCartBeforePayment(ctx), ErrCartSyncFailed)
	})
}

func TestService_ChangeLineQuantity(t *testing.T) {
	ctx := context.Background()
	key := line.Key("SKU1", 500, "g")

	t.Run("Increase persists and issues delta add", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		kv := store.New(filepath.Join(t.TempDir(), "state.json"))
		svc := NewService(NewSnapshotStore(kv), cartRepo, new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("AddToCart", ctx, "SKU1", 2, 500.0, "g").Return(nil).Once()

		require.NoError(t, svc.ChangeLineQuantity(ctx, key, 4))

		items := svc.Items()
		assert.Equal(t, 4, items[0].Quantity)
		assert.Equal(t, 400.0, items[0].TotalPrice)
		assert.Equal(t, 40.0, items[0].DiscountPrice)
		assert.Equal(t, 360.0, items[0].AfterDiscount)
		cartRepo.AssertExpectations(t)

		// The repriced quantity is on disk, not just in memory.
		persisted, err := NewSnapshotStore(kv).Read()
		require.NoError(t, err)
		assert.Equal(t, 4, persisted[0].Quantity)
	})

	t.Run("Decrease issues delta remove", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(newSnapshot(t), cartRepo, new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("RemoveOneUnit", ctx, "SKU1", 1, 500.0, "g").Return(nil).Once()

		require.NoError(t, svc.ChangeLineQuantity(ctx, key, 1))
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failed server call leaves local value standing", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(newSnapshot(t), cartRepo, new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("AddToCart", ctx, "SKU1", 1, 500.0, "g").Return(errors.New("network")).Once()

		err := svc.ChangeLineQuantity(ctx, key, 3)

		assert.Error(t, err)
		assert.Equal(t, 3, svc.Items()[0].Quantity)
	})

	t.Run("Error - below one", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		assert.ErrorIs(t, svc.ChangeLineQuantity(ctx, key, 0), ErrInvalidQuantity)
	})

	t.Run("Error - unknown line", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		err := svc.ChangeLineQuantity(ctx, line.Key("NOPE", 1, "kg"), 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestService_RemoveLine(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes and persists", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		empty, err := svc.RemoveLine(ctx, line.Key("SKU1", 500, "g"))

		require.NoError(t, err)
		assert.False(t, empty)
		require.Len(t, svc.Items(), 1)
		assert.Equal(t, "SKU2", svc.Items()[0].ProductCode)
	})

	t.Run("Removing the last line reports empty", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()[:1]))

		empty, err := svc.RemoveLine(ctx, line.Key("SKU1", 500, "g"))

		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("Absent line is a no-op", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		empty, err := svc.RemoveLine(ctx, line.Key("NOPE", 1, "kg"))

		require.NoError(t, err)
		assert.False(t, empty)
		assert.Len(t, svc.Items(), 2)
	})
}

func TestService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	addr := &address.Address{AddressID: "A", City: "Pune", State: "MH", PostalCode: "411001", Country: "India", AddressLine1: "12 MG Road"}

	t.Run("Success clears the snapshot", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		orders := new(MockOrderPlacer)
		kv := store.New(filepath.Join(t.TempDir(), "state.json"))
		svc := NewService(NewSnapshotStore(kv), cartRepo, orders)
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("GetCart", ctx).Return(&cart.Payload{Items: []line.CartRow{
			{ProductCode: "SKU1", WeightValue: 500, WeightUnit: "g"},
			{ProductCode: "SKU2", WeightValue: 1, WeightUnit: "kg"},
		}}, nil).Once()
		orders.On("PlaceOrder", ctx, mock.MatchedBy(func(req order.PlaceRequest) bool {
			return req.Address.AddressID == "A" && len(req.SelectedVariants) == 2
		})).Return("ord-42", nil).Once()

		orderID, err := svc.PlaceOrder(ctx, addr)

		require.NoError(t, err)
		assert.Equal(t, "ord-42", orderID)
		assert.Empty(t, svc.Items())

		persisted, err := NewSnapshotStore(kv).Read()
		require.NoError(t, err)
		assert.Empty(t, persisted)
	})

	t.Run("Error - no address", func(t *testing.T) {
		svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
		require.NoError(t, svc.BeginFromCart(twoItems()))

		_, err := svc.PlaceOrder(ctx, nil)
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("Error - placement fails keeps snapshot", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		orders := new(MockOrderPlacer)
		svc := NewService(newSnapshot(t), cartRepo, orders)
		require.NoError(t, svc.BeginFromCart(twoItems()))

		cartRepo.On("GetCart", ctx).Return(&cart.Payload{Items: []line.CartRow{
			{ProductCode: "SKU1", WeightValue: 500, WeightUnit: "g"},
			{ProductCode: "SKU2", WeightValue: 1, WeightUnit: "kg"},
		}}, nil).Once()
		orders.On("PlaceOrder", ctx, mock.Anything).Return("", errors.New("payment declined")).Once()

		_, err := svc.PlaceOrder(ctx, addr)

		assert.ErrorIs(t, err, ErrPlaceOrderFailed)
		assert.Len(t, svc.Items(), 2)
	})
}

func TestService_Summary(t *testing.T) {
	svc := NewService(newSnapshot(t), new(MockCartRepository), new(MockOrderPlacer))
	require.NoError(t, svc.BeginFromCart(twoItems()))

	got := svc.Summary()

	assert.Equal(t, 350.0, got.SubTotal)
	assert.Equal(t, 20.0, got.Discount)
	assert.Equal(t, 330.0, got.AfterDiscount)
	assert.Equal(t, 16.5, got.GST)

	// Shipping counts once even though both lines carry the charge.
	assert.Equal(t, 40.0, got.Shipping)
	assert.Equal(t, 386.5, got.Payable)
}
