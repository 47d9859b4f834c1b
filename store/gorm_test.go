package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return NewGormStore(db), db
}

func TestCartLineRoundTrip(t *testing.T) {
	st, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{ID: "p1", Title: "Mug", Price: 12.50, Stock: 3}).Error)

	require.NoError(t, st.InsertCartLine(ctx, "u1", "p1", 2))

	lines, err := st.CartLines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Mug", lines[0].Product.Title, "product snapshot is denormalized onto the line")
	assert.InDelta(t, 12.50, lines[0].Product.Price, 1e-9)

	require.NoError(t, st.UpdateCartQuantity(ctx, "u1", "p1", 7))
	lines, err = st.CartLines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)

	require.NoError(t, st.DeleteCartLine(ctx, "u1", "p1"))
	lines, err = st.CartLines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartLinesScopedByUser(t *testing.T) {
	st, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{ID: "p1", Title: "Mug", Price: 1, Stock: 3}).Error)
	require.NoError(t, st.InsertCartLine(ctx, "u1", "p1", 1))
	require.NoError(t, st.InsertCartLine(ctx, "u2", "p1", 5))

	lines, err := st.CartLines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	require.NoError(t, st.ClearCart(ctx, "u1"))
	lines, err = st.CartLines(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, lines, 1, "clearing one user's cart leaves others untouched")
}

func TestInsertCartLineUniquePerUserProduct(t *testing.T) {
	st, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{ID: "p1", Title: "Mug", Price: 1, Stock: 3}).Error)
	require.NoError(t, st.InsertCartLine(ctx, "u1", "p1", 1))
	assert.Error(t, st.InsertCartLine(ctx, "u1", "p1", 2),
		"the (user, product) uniqueness invariant is store-enforced")
}

func TestSubmitOrderTransactional(t *testing.T) {
	st, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{ID: "p1", Title: "Mug", Price: 10, Stock: 3}).Error)
	require.NoError(t, st.InsertCartLine(ctx, "u1", "p1", 2))

	order := &models.Order{
		UserID:      "u1",
		TotalAmount: 29.99,
		Status:      models.OrderStatusPending,
	}
	items := []models.OrderItem{{ProductID: "p1", Quantity: 2, Price: 10}}
	require.NoError(t, st.SubmitOrder(ctx, order, items))
	require.NotEmpty(t, order.ID, "generated identity is populated on return")

	var saved models.Order
	require.NoError(t, db.Preload("Items").First(&saved, "id = ?", order.ID).Error)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, order.ID, saved.Items[0].OrderID)

	lines, err := st.CartLines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines, "cart clear rides in the same transaction")
}
