package testutil

import (
	"context"

	"stockadmin/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a mock for StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockStoreRepository) GetStore(ctx context.Context, id int64) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) CreateStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteStore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWarehouseRepository is a mock for WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) CreateWarehouse(ctx context.Context, wh domain.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWarehouseRepository) UpdateWarehouse(ctx context.Context, wh domain.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWarehouseRepository) DeleteWarehouse(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStockRepository is a mock for StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) GetStock(ctx context.Context, kind domain.Kind, id int64) ([]domain.StockRow, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRow), args.Error(1)
}

func (m *MockStockRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStockRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}
