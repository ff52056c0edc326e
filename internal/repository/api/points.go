package api

import (
	"context"
	"fmt"
	"net/http"

	"stockadmin/internal/domain"
)

type storeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type warehouseRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Area    float64 `json:"area"`
}

// StoreRepo implements repository.StoreRepository
type StoreRepo struct {
	client *Client
}

// NewStoreRepo creates a new store repository
func NewStoreRepo(client *Client) *StoreRepo {
	return &StoreRepo{client: client}
}

// ListStores returns active stores ordered by name
func (r *StoreRepo) ListStores(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := r.client.do(ctx, http.MethodGet, "/api/stores", nil, &stores); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// GetStore returns an active store
func (r *StoreRepo) GetStore(ctx context.Context, id int64) (*domain.Store, error) {
	var store domain.Store
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/stores/%d", id), nil, &store); err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return &store, nil
}

// CreateStore creates a store
func (r *StoreRepo) CreateStore(ctx context.Context, store domain.Store) error {
	body := storeRequest{Name: store.Name, Address: store.Address, Phone: store.Phone}
	if err := r.client.do(ctx, http.MethodPost, "/api/stores", body, nil); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// UpdateStore updates a store
func (r *StoreRepo) UpdateStore(ctx context.Context, store domain.Store) error {
	body := storeRequest{Name: store.Name, Address: store.Address, Phone: store.Phone}
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/stores/%d", store.ID), body, nil); err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	return nil
}

// DeleteStore deactivates a store
func (r *StoreRepo) DeleteStore(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/stores/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}

// WarehouseRepo implements repository.WarehouseRepository
type WarehouseRepo struct {
	client *Client
}

// NewWarehouseRepo creates a new warehouse repository
func NewWarehouseRepo(client *Client) *WarehouseRepo {
	return &WarehouseRepo{client: client}
}

// ListWarehouses returns active warehouses ordered by name
func (r *WarehouseRepo) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	var whs []domain.Warehouse
	if err := r.client.do(ctx, http.MethodGet, "/api/warehouses", nil, &whs); err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return whs, nil
}

// GetWarehouse returns an active warehouse
func (r *WarehouseRepo) GetWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error) {
	var wh domain.Warehouse
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/warehouses/%d", id), nil, &wh); err != nil {
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}
	return &wh, nil
}

// CreateWarehouse creates a warehouse
func (r *WarehouseRepo) CreateWarehouse(ctx context.Context, wh domain.Warehouse) error {
	body := warehouseRequest{Name: wh.Name, Address: wh.Address, Phone: wh.Phone, Area: wh.Area}
	if err := r.client.do(ctx, http.MethodPost, "/api/warehouses", body, nil); err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}
	return nil
}

// UpdateWarehouse updates a warehouse
func (r *WarehouseRepo) UpdateWarehouse(ctx context.Context, wh domain.Warehouse) error {
	body := warehouseRequest{Name: wh.Name, Address: wh.Address, Phone: wh.Phone, Area: wh.Area}
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/warehouses/%d", wh.ID), body, nil); err != nil {
		return fmt.Errorf("failed to update warehouse: %w", err)
	}
	return nil
}

// DeleteWarehouse deactivates a warehouse
func (r *WarehouseRepo) DeleteWarehouse(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/warehouses/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}
	return nil
}
