package service

import (
	"context"

	"stockadmin/internal/domain"
	"stockadmin/internal/phonemask"
	"stockadmin/internal/repository"

	"go.uber.org/zap"
)

// StoreService handles store editing
type StoreService struct {
	repo   repository.StoreRepository
	logger *zap.Logger
}

// NewStoreService creates a new store service
func NewStoreService(repo repository.StoreRepository, logger *zap.Logger) *StoreService {
	return &StoreService{
		repo:   repo,
		logger: logger,
	}
}

// List returns active stores
func (s *StoreService) List(ctx context.Context) ([]domain.Store, error) {
	return s.repo.ListStores(ctx)
}

// Get returns a store with its phone in the masked format
func (s *StoreService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.repo.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}
	store.Phone = phonemask.Format(store.Phone)
	return store, nil
}

// Save validates the store and creates it when ID is zero or updates it otherwise
func (s *StoreService) Save(ctx context.Context, store domain.Store) error {
	f, err := validatePoint(store.Name, store.Address, store.Phone)
	if err != nil {
		return err
	}
	store.Name, store.Address, store.Phone = f.name, f.address, f.phone

	if store.ID == 0 {
		err = s.repo.CreateStore(ctx, store)
	} else {
		err = s.repo.UpdateStore(ctx, store)
	}
	if err != nil {
		return err
	}

	s.logger.Info("Store saved",
		zap.Int64("store_id", store.ID),
		zap.String("name", store.Name),
	)
	return nil
}

// Delete deactivates a store
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteStore(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Store deleted", zap.Int64("store_id", id))
	return nil
}
