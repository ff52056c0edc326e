package service

import (
	"context"

	"stockadmin/internal/domain"
	"stockadmin/internal/phonemask"
	"stockadmin/internal/repository"

	"go.uber.org/zap"
)

// WarehouseService handles warehouse editing
type WarehouseService struct {
	repo   repository.WarehouseRepository
	logger *zap.Logger
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(repo repository.WarehouseRepository, logger *zap.Logger) *WarehouseService {
	return &WarehouseService{
		repo:   repo,
		logger: logger,
	}
}

// List returns active warehouses
func (s *WarehouseService) List(ctx context.Context) ([]domain.Warehouse, error) {
	return s.repo.ListWarehouses(ctx)
}

// Get returns a warehouse with its phone in the masked format
func (s *WarehouseService) Get(ctx context.Context, id int64) (*domain.Warehouse, error) {
	wh, err := s.repo.GetWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	wh.Phone = phonemask.Format(wh.Phone)
	return wh, nil
}

// Save validates the warehouse and creates it when ID is zero or updates it otherwise
func (s *WarehouseService) Save(ctx context.Context, wh domain.Warehouse) error {
	f, err := validatePoint(wh.Name, wh.Address, wh.Phone)
	if err != nil {
		return err
	}
	if wh.Area < 0 {
		return domain.NewUserError(MsgNegativeArea)
	}
	wh.Name, wh.Address, wh.Phone = f.name, f.address, f.phone

	if wh.ID == 0 {
		err = s.repo.CreateWarehouse(ctx, wh)
	} else {
		err = s.repo.UpdateWarehouse(ctx, wh)
	}
	if err != nil {
		return err
	}

	s.logger.Info("Warehouse saved",
		zap.Int64("warehouse_id", wh.ID),
		zap.String("name", wh.Name),
		zap.Float64("area", wh.Area),
	)
	return nil
}

// Delete deactivates a warehouse
func (s *WarehouseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWarehouse(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Warehouse deleted", zap.Int64("warehouse_id", id))
	return nil
}
