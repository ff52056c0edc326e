package service

import (
	"context"
	"fmt"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"

	"go.uber.org/zap"
)

// StockService handles stock viewing and receipts
type StockService struct {
	repo   repository.StockRepository
	logger *zap.Logger
}

// NewStockService creates a new stock service
func NewStockService(repo repository.StockRepository, logger *zap.Logger) *StockService {
	return &StockService{
		repo:   repo,
		logger: logger,
	}
}

// Stock returns product quantities at the target point
func (s *StockService) Stock(ctx context.Context, target domain.StockTarget) ([]domain.StockRow, error) {
	return s.repo.GetStock(ctx, target.Kind, target.ID)
}

// Products returns products available for receipt
func (s *StockService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// LowStock returns the product IDs of rows below the product minimum
func (s *StockService) LowStock(rows []domain.StockRow, products []domain.Product) map[int64]bool {
	minimum := make(map[int64]int, len(products))
	for _, p := range products {
		minimum[p.ID] = p.MinStock
	}

	low := make(map[int64]bool)
	for _, row := range rows {
		if m, ok := minimum[row.ProductID]; ok && row.Quantity < m {
			low[row.ProductID] = true
		}
	}
	return low
}

// Receipt adds quantity of a product to the target point
func (s *StockService) Receipt(ctx context.Context, target domain.StockTarget, productID int64, quantity int) error {
	if productID <= 0 || quantity < 1 {
		return domain.NewUserError(MsgReceiptInvalid)
	}
	if target.ID <= 0 {
		return fmt.Errorf("receipt target is not set")
	}

	if err := s.repo.CreateReceipt(ctx, domain.NewReceipt(target, productID, quantity)); err != nil {
		s.logger.Error("Failed to create receipt",
			zap.Error(err),
			zap.String("kind", string(target.Kind)),
			zap.Int64("point_id", target.ID),
		)
		return err
	}

	s.logger.Info("Receipt created",
		zap.String("kind", string(target.Kind)),
		zap.Int64("point_id", target.ID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return nil
}
