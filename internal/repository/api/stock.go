package api

import (
	"context"
	"fmt"
	"net/http"

	"stockadmin/internal/domain"
)

// StockRepo implements repository.StockRepository
type StockRepo struct {
	client *Client
}

// NewStockRepo creates a new stock repository
func NewStockRepo(client *Client) *StockRepo {
	return &StockRepo{client: client}
}

// GetStock returns product quantities at a store or warehouse
func (r *StockRepo) GetStock(ctx context.Context, kind domain.Kind, id int64) ([]domain.StockRow, error) {
	path := fmt.Sprintf("/api/stores/%d/stock", id)
	if kind == domain.KindWarehouse {
		path = fmt.Sprintf("/api/warehouses/%d/stock", id)
	}

	var rows []domain.StockRow
	if err := r.client.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	return rows, nil
}

// ListProducts returns active products
func (r *StockRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.client.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CreateReceipt records incoming goods
func (r *StockRepo) CreateReceipt(ctx context.Context, receipt domain.Receipt) error {
	if err := r.client.do(ctx, http.MethodPost, "/api/receipt", receipt, nil); err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}
	return nil
}
