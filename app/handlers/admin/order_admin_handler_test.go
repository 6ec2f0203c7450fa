package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/models/migrations"
	"github.com/yaarastore/backend/app/repositories"
	"github.com/yaarastore/backend/app/utils/renderer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))

	handler := NewOrderAdminHandler(renderer.New(), repositories.NewOrderRepository(db))

	router := mux.NewRouter()
	router.HandleFunc("/auth/order/{id}", handler.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/auth/order/status", handler.UpdateStatus).Methods(http.MethodPost)
	router.HandleFunc("/auth/orders", handler.ListOrders).Methods(http.MethodGet)
	return router, db
}

func seedOrder(t *testing.T, db *gorm.DB, status string) *models.Order {
	order := &models.Order{
		Name:          "Dana Levi",
		Email:         "dana@example.com",
		Phone:         "+972501234567",
		TotalQuantity: 1,
		Cost:          decimal.NewFromFloat(18.00),
		Status:        status,
		CreatedAt:     time.Now(),
		Items: []models.OrderItem{{
			ProductID: 1, Handle: "Basil", Title: "Basil",
			ImageURL: "basil.jpg", ImageAlt: "Basil plant",
			Quantity: 1, UnitAmount: decimal.NewFromFloat(18.00), TotalAmount: decimal.NewFromFloat(18.00),
		}},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestOrderAdminHandler_GetOrder(t *testing.T) {
	router, db := setupOrderRouter(t)
	order := seedOrder(t, db, models.OrderStatusNew)

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/order/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid order ID", body["error"])
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/order/999", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Order not found", body["error"])
	})

	t.Run("returns the order with items", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/order/1", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, order.ID, got.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Basil", got.Items[0].Title)
	})
}

func TestOrderAdminHandler_UpdateStatus(t *testing.T) {
	router, db := setupOrderRouter(t)
	order := seedOrder(t, db, models.OrderStatusNew)

	t.Run("updates a valid status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"id": 1, "status": "ready"}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/order/status", body))

		require.Equal(t, http.StatusOK, rec.Code)

		var persisted models.Order
		require.NoError(t, db.First(&persisted, order.ID).Error)
		assert.Equal(t, models.OrderStatusReady, persisted.Status)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"id": 999, "status": "done"}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/order/status", body))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status outside the enum is a 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"id": 1, "status": "shipped"}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/order/status", body))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestOrderAdminHandler_ListOrders(t *testing.T) {
	router, db := setupOrderRouter(t)
	seedOrder(t, db, models.OrderStatusDone)
	seedOrder(t, db, models.OrderStatusNew)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, models.OrderStatusNew, orders[0].Status)
	assert.Equal(t, models.OrderStatusDone, orders[1].Status)
}
