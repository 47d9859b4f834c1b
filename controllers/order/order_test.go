package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sufyan2256462/brisk-cart-commerce/models"
	"github.com/gin-gonic/gin"
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
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func testRouter(t *testing.T, db *gorm.DB, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	}
	r.GET("/user/orders", GetUserOrdersHandler(db))
	r.GET("/user/orders/:orderID", GetOrderByIDHandler(db))
	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatusHandler(db))
	return r
}

func seedOrder(t *testing.T, db *gorm.DB, id, userID string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Order{
		ID:          id,
		UserID:      userID,
		TotalAmount: 19.99,
		Status:      models.OrderStatusPending,
		CreatedAt:   createdAt,
	}).Error)
}

func TestGetOrderScopedToRequestingUser(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Product{ID: "p1", Title: "Mug", Price: 10, Stock: 5}).Error)
	seedOrder(t, db, "o1", "u1", time.Now())
	seedOrder(t, db, "o2", "u2", time.Now())
	require.NoError(t, db.Create(&models.OrderItem{OrderID: "o1", ProductID: "p1", Quantity: 2, Price: 10}).Error)

	r := testRouter(t, db, "u1")

	// Own order: found, with its lines and product snapshot.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/orders/o1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mug", order.Items[0].Product.Title)

	// Another user's order id is a 404, not a 403.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/orders/o2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown id is a 404 as well.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/orders/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "older", "u1", base)
	seedOrder(t, db, "newer", "u1", base.Add(time.Hour))
	seedOrder(t, db, "other", "u2", base.Add(2*time.Hour))

	r := testRouter(t, db, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2, "history is scoped to the requesting user")
	assert.Equal(t, "newer", orders[0].ID)
	assert.Equal(t, "older", orders[1].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db, "o1", "u1", time.Now())
	r := testRouter(t, db, "")

	putStatus := func(orderID, status string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(UpdateOrderStatusRequest{Status: status})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/admin/orders/"+orderID+"/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusBadRequest, putStatus("o1", "misplaced").Code)
	assert.Equal(t, http.StatusNotFound, putStatus("missing", "shipped").Code)

	require.Equal(t, http.StatusOK, putStatus("o1", "shipped").Code)
	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", "o1").Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}
