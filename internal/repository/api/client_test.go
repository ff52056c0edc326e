package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorded struct {
	method    string
	path      string
	requestID string
	body      map[string]any
}

// newTestServer serves status and response for every request and records the last one.
func newTestServer(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.requestID = r.Header.Get("X-Request-ID")
		rec.body = nil
		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Options{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, zap.NewNop())
	return client, rec
}

func TestStoreRepo_ListStores(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK,
		`[{"id":1,"name":"Центральный","address":"ул. Ленина, 1","phone":"+7 (926) 123-45-67"},{"id":2,"name":"Северный","address":"","phone":""}]`)
	repo := NewStoreRepo(client)

	stores, err := repo.ListStores(context.Background())

	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, domain.Store{ID: 1, Name: "Центральный", Address: "ул. Ленина, 1", Phone: "+7 (926) 123-45-67"}, stores[0])
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/stores", rec.path)
	assert.NotEmpty(t, rec.requestID)
}

func TestStoreRepo_GetStore_ErrorEnvelope(t *testing.T) {
	client, rec := newTestServer(t, http.StatusNotFound, `{"error":"Магазин не найден"}`)
	repo := NewStoreRepo(client)

	store, err := repo.GetStore(context.Background(), 7)

	require.Error(t, err)
	assert.Nil(t, store)
	assert.Equal(t, "/api/stores/7", rec.path)

	var userErr *domain.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Магазин не найден", userErr.Message)
}

func TestStoreRepo_CreateStore(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"ok":true,"id":3}`)
	repo := NewStoreRepo(client)

	err := repo.CreateStore(context.Background(), domain.Store{Name: "Южный", Address: "пр. Мира, 5", Phone: "+7 (926) 123-45-67"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/stores", rec.path)
	assert.Equal(t, map[string]any{
		"name":    "Южный",
		"address": "пр. Мира, 5",
		"phone":   "+7 (926) 123-45-67",
	}, rec.body)
}

func TestStoreRepo_UpdateAndDelete(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"ok":true}`)
	repo := NewStoreRepo(client)

	require.NoError(t, repo.UpdateStore(context.Background(), domain.Store{ID: 4, Name: "Магазин"}))
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/stores/4", rec.path)

	require.NoError(t, repo.DeleteStore(context.Background(), 4))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/stores/4", rec.path)
}

func TestStoreRepo_ForbiddenWithErrorStatus(t *testing.T) {
	client, _ := newTestServer(t, http.StatusForbidden, `{"error":"Доступ запрещён"}`)
	repo := NewStoreRepo(client)

	err := repo.DeleteStore(context.Background(), 1)

	var userErr *domain.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Доступ запрещён", userErr.Message)
	assert.Contains(t, err.Error(), "status 403")
}

func TestStoreRepo_ServerErrorWithoutEnvelope(t *testing.T) {
	client, _ := newTestServer(t, http.StatusInternalServerError, `Internal Server Error`)
	repo := NewStoreRepo(client)

	_, err := repo.ListStores(context.Background())

	require.Error(t, err)
	var userErr *domain.UserError
	assert.False(t, errors.As(err, &userErr))
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestStoreRepo_MalformedResponse(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `[{"id":"x"}]`)
	repo := NewStoreRepo(client)

	_, err := repo.ListStores(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestWarehouseRepo_CreateAndGet(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"id":2,"name":"Основной","address":"","phone":"","area":120.5}`)
	repo := NewWarehouseRepo(client)

	wh, err := repo.GetWarehouse(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 120.5, wh.Area)
	assert.Equal(t, "/api/warehouses/2", rec.path)

	require.NoError(t, repo.CreateWarehouse(context.Background(), domain.Warehouse{Name: "Новый", Area: 50}))
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/warehouses", rec.path)
	assert.Equal(t, float64(50), rec.body["area"])
}

func TestWarehouseRepo_ListUpdateDelete(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `[]`)
	repo := NewWarehouseRepo(client)

	whs, err := repo.ListWarehouses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, whs)

	require.NoError(t, repo.UpdateWarehouse(context.Background(), domain.Warehouse{ID: 9, Name: "Склад"}))
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/warehouses/9", rec.path)

	require.NoError(t, repo.DeleteWarehouse(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, rec.method)
}

func TestStockRepo_GetStock(t *testing.T) {
	tests := []struct {
		name         string
		kind         domain.Kind
		expectedPath string
	}{
		{name: "store", kind: domain.KindStore, expectedPath: "/api/stores/5/stock"},
		{name: "warehouse", kind: domain.KindWarehouse, expectedPath: "/api/warehouses/5/stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestServer(t, http.StatusOK, `[{"product_id":1,"product_name":"Молоко","quantity":12}]`)
			repo := NewStockRepo(client)

			rows, err := repo.GetStock(context.Background(), tt.kind, 5)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath, rec.path)
			assert.Equal(t, []domain.StockRow{{ProductID: 1, ProductName: "Молоко", Quantity: 12}}, rows)
		})
	}
}

func TestStockRepo_ListProducts(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK,
		`[{"id":3,"name":"Хлеб","unit":"шт","purchase_price":30.5,"retail_price":45,"min_stock":5}]`)
	repo := NewStockRepo(client)

	products, err := repo.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/products", rec.path)
	require.Len(t, products, 1)
	assert.Equal(t, domain.Product{ID: 3, Name: "Хлеб", Unit: "шт", PurchasePrice: 30.5, RetailPrice: 45, MinStock: 5}, products[0])
}

func TestStockRepo_CreateReceipt(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"ok":true}`)
	repo := NewStockRepo(client)

	target := domain.StockTarget{Kind: domain.KindWarehouse, ID: 8}
	err := repo.CreateReceipt(context.Background(), domain.NewReceipt(target, 3, 10))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/receipt", rec.path)
	assert.Equal(t, map[string]any{
		"product_id":   float64(3),
		"quantity":     float64(10),
		"warehouse_id": float64(8),
	}, rec.body)
}

func TestClient_ContextCancelled(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `[]`)
	repo := NewStoreRepo(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListStores(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
