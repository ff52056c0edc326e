package testutil

import (
	"stockadmin/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestStore creates a test store
func NewTestStore(id int64, name, phone string) *domain.Store {
	return &domain.Store{
		ID:      id,
		Name:    name,
		Address: "ул. Ленина, 1",
		Phone:   phone,
	}
}

// NewTestWarehouse creates a test warehouse
func NewTestWarehouse(id int64, name, phone string, area float64) *domain.Warehouse {
	return &domain.Warehouse{
		ID:      id,
		Name:    name,
		Address: "промзона, 3",
		Phone:   phone,
		Area:    area,
	}
}

// NewTestProduct creates a test product
func NewTestProduct(id int64, name string, minStock int) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Unit:     "шт",
		MinStock: minStock,
	}
}
