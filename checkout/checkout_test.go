package checkout

import (
	"context"
	"fmt"
	"testing"

	"github.com/Sufyan2256462/brisk-cart-commerce/cart"
	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/Sufyan2256462/brisk-cart-commerce/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProducts(t *testing.T, db *gorm.DB, products ...models.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func TestShippingFor(t *testing.T) {
	tests := []struct {
		subtotal float64
		want     float64
	}{
		{0.01, 9.99},
		{25.00, 9.99},
		{49.99, 9.99},
		{50.00, 0}, // threshold is inclusive
		{50.01, 0},
		{100.00, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ShippingFor(tt.subtotal), 1e-9,
			"subtotal %.2f", tt.subtotal)
	}
}

func TestPlaceOrderTwoLineCart(t *testing.T) {
	db := testDB(t)
	seedProducts(t, db,
		models.Product{ID: "pa", Title: "A", Price: 10.00, Stock: 10},
		models.Product{ID: "pb", Title: "B", Price: 5.00, Stock: 10},
	)

	st := store.NewGormStore(db)
	mgr := cart.NewManager(st)
	svc := NewService(mgr, st)
	ctx := context.Background()

	require.NoError(t, mgr.AddToCart(ctx, "u1", "pa", 2))
	require.NoError(t, mgr.AddToCart(ctx, "u1", "pb", 1))

	addr := models.ShippingAddress{
		FullName: "Jordan Doe",
		Address:  "1 Main St",
		City:     "Springfield",
		State:    "IL",
		ZipCode:  "62701",
		Country:  "US",
	}
	order, err := svc.PlaceOrder(ctx, "u1", addr)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)

	// Subtotal 25.00 is under the free-shipping threshold.
	assert.InDelta(t, 34.99, order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, addr, order.ShippingAddress)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("price desc").Find(&items).Error)
	require.Len(t, items, 2)
	assert.InDelta(t, 10.00, items[0].Price, 1e-9)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 5.00, items[1].Price, 1e-9)
	assert.Equal(t, 1, items[1].Quantity)

	// Cart is empty immediately, locally and remotely.
	assert.Equal(t, 0, mgr.CartCount("u1"))
	var cartRows int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "u1").Count(&cartRows).Error)
	assert.Zero(t, cartRows)
}

func TestPlaceOrderFreeShippingAtThreshold(t *testing.T) {
	db := testDB(t)
	seedProducts(t, db, models.Product{ID: "pa", Title: "A", Price: 25.00, Stock: 10})

	st := store.NewGormStore(db)
	mgr := cart.NewManager(st)
	svc := NewService(mgr, st)
	ctx := context.Background()

	require.NoError(t, mgr.AddToCart(ctx, "u1", "pa", 2)) // subtotal exactly 50.00

	order, err := svc.PlaceOrder(ctx, "u1", models.ShippingAddress{FullName: "J", Address: "a", City: "c", State: "s", ZipCode: "z", Country: "US"})
	require.NoError(t, err)
	assert.InDelta(t, 50.00, order.TotalAmount, 1e-9)
}

func TestPlaceOrderEmptyCartDeflected(t *testing.T) {
	db := testDB(t)
	st := store.NewGormStore(db)
	mgr := cart.NewManager(st)
	svc := NewService(mgr, st)

	_, err := svc.PlaceOrder(context.Background(), "u1", models.ShippingAddress{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "order creation is never reached")
}

func TestPlaceOrderRequiresSignIn(t *testing.T) {
	db := testDB(t)
	st := store.NewGormStore(db)
	mgr := cart.NewManager(st)
	svc := NewService(mgr, st)

	_, err := svc.PlaceOrder(context.Background(), "", models.ShippingAddress{})
	assert.ErrorIs(t, err, cart.ErrAuthRequired)
}

func TestPlaceOrderLocksSnapshotPrice(t *testing.T) {
	db := testDB(t)
	seedProducts(t, db, models.Product{ID: "pa", Title: "A", Price: 10.00, Stock: 10})

	st := store.NewGormStore(db)
	mgr := cart.NewManager(st)
	svc := NewService(mgr, st)
	ctx := context.Background()

	require.NoError(t, mgr.AddToCart(ctx, "u1", "pa", 1))

	// Catalog price changes after the cart snapshot was taken.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", "pa").Update("price", 99.00).Error)

	order, err := svc.PlaceOrder(ctx, "u1", models.ShippingAddress{FullName: "J", Address: "a", City: "c", State: "s", ZipCode: "z", Country: "US"})
	require.NoError(t, err)

	var item models.OrderItem
	require.NoError(t, db.First(&item, "order_id = ?", order.ID).Error)
	assert.InDelta(t, 10.00, item.Price, 1e-9, "order line carries the cart-snapshot price")
}
