package service

import (
	"context"
	"errors"
	"testing"

	"stockadmin/internal/domain"
	"stockadmin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStockService_Stock(t *testing.T) {
	mockRepo := new(testutil.MockStockRepository)
	rows := []domain.StockRow{{ProductID: 1, ProductName: "Молоко", Quantity: 3}}
	mockRepo.On("GetStock", mock.Anything, domain.KindWarehouse, int64(2)).Return(rows, nil)

	svc := NewStockService(mockRepo, testutil.NewTestLogger())
	got, err := svc.Stock(context.Background(), domain.StockTarget{Kind: domain.KindWarehouse, ID: 2})

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	mockRepo.AssertExpectations(t)
}

func TestStockService_LowStock(t *testing.T) {
	svc := NewStockService(new(testutil.MockStockRepository), testutil.NewTestLogger())

	rows := []domain.StockRow{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 5},
		{ProductID: 3, Quantity: 0},
	}
	products := []domain.Product{
		testutil.NewTestProduct(1, "Молоко", 5),
		testutil.NewTestProduct(2, "Хлеб", 5),
	}

	assert.Equal(t, map[int64]bool{1: true}, svc.LowStock(rows, products))
}

func TestStockService_Receipt(t *testing.T) {
	store := domain.StockTarget{Kind: domain.KindStore, ID: 7, Title: "Центральный"}

	tests := []struct {
		name          string
		productID     int64
		quantity      int
		expectCall    bool
		repoErr       error
		expectedError bool
		userError     bool
	}{
		{name: "valid", productID: 3, quantity: 10, expectCall: true},
		{name: "no product", productID: 0, quantity: 10, expectedError: true, userError: true},
		{name: "zero quantity", productID: 3, quantity: 0, expectedError: true, userError: true},
		{name: "repository error", productID: 3, quantity: 1, expectCall: true, repoErr: errors.New("boom"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockStockRepository)
			if tt.expectCall {
				mockRepo.On("CreateReceipt", mock.Anything, domain.NewReceipt(store, tt.productID, tt.quantity)).Return(tt.repoErr)
			}

			svc := NewStockService(mockRepo, testutil.NewTestLogger())
			err := svc.Receipt(context.Background(), store, tt.productID, tt.quantity)

			if !tt.expectedError {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				var userErr *domain.UserError
				assert.Equal(t, tt.userError, errors.As(err, &userErr))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStockService_Receipt_NoTarget(t *testing.T) {
	mockRepo := new(testutil.MockStockRepository)
	svc := NewStockService(mockRepo, testutil.NewTestLogger())

	err := svc.Receipt(context.Background(), domain.StockTarget{}, 1, 1)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateReceipt", mock.Anything, mock.Anything)
}
