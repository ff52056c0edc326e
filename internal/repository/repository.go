package repository

import (
	"context"

	"stockadmin/internal/domain"
)

// StoreRepository defines store operations
type StoreRepository interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id int64) (*domain.Store, error)
	CreateStore(ctx context.Context, store domain.Store) error
	UpdateStore(ctx context.Context, store domain.Store) error
	DeleteStore(ctx context.Context, id int64) error
}

// WarehouseRepository defines warehouse operations
type WarehouseRepository interface {
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	GetWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error)
	CreateWarehouse(ctx context.Context, wh domain.Warehouse) error
	UpdateWarehouse(ctx context.Context, wh domain.Warehouse) error
	DeleteWarehouse(ctx context.Context, id int64) error
}

// StockRepository defines stock and receipt operations
type StockRepository interface {
	GetStock(ctx context.Context, kind domain.Kind, id int64) ([]domain.StockRow, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateReceipt(ctx context.Context, receipt domain.Receipt) error
}
