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

func TestWarehouseService_Save(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.Warehouse
		expectCreate  *domain.Warehouse
		expectUpdate  *domain.Warehouse
		expectedError string
	}{
		{
			name:         "create",
			input:        domain.Warehouse{Name: "Основной", Phone: "9261234567", Area: 120},
			expectCreate: &domain.Warehouse{Name: "Основной", Phone: "+7 (926) 123-45-67", Area: 120},
		},
		{
			name:         "update",
			input:        domain.Warehouse{ID: 2, Name: "Резервный"},
			expectUpdate: &domain.Warehouse{ID: 2, Name: "Резервный"},
		},
		{
			name:          "negative area",
			input:         domain.Warehouse{Name: "Склад", Area: -1},
			expectedError: "Площадь не может быть отрицательной",
		},
		{
			name:          "empty name",
			input:         domain.Warehouse{Area: 10},
			expectedError: "Укажите название",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWarehouseRepository)
			if tt.expectCreate != nil {
				mockRepo.On("CreateWarehouse", mock.Anything, *tt.expectCreate).Return(nil)
			}
			if tt.expectUpdate != nil {
				mockRepo.On("UpdateWarehouse", mock.Anything, *tt.expectUpdate).Return(nil)
			}

			svc := NewWarehouseService(mockRepo, testutil.NewTestLogger())
			err := svc.Save(context.Background(), tt.input)

			if tt.expectedError != "" {
				var userErr *domain.UserError
				require.True(t, errors.As(err, &userErr))
				assert.Equal(t, tt.expectedError, userErr.Message)
				return
			}
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWarehouseService_Get_FormatsPhone(t *testing.T) {
	mockRepo := new(testutil.MockWarehouseRepository)
	mockRepo.On("GetWarehouse", mock.Anything, int64(4)).Return(testutil.NewTestWarehouse(4, "Основной", "+79261234567", 80), nil)

	svc := NewWarehouseService(mockRepo, testutil.NewTestLogger())
	wh, err := svc.Get(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "+7 (926) 123-45-67", wh.Phone)
	assert.Equal(t, float64(80), wh.Area)
}

func TestWarehouseService_Delete_Error(t *testing.T) {
	mockRepo := new(testutil.MockWarehouseRepository)
	mockRepo.On("DeleteWarehouse", mock.Anything, int64(4)).Return(errors.New("boom"))

	svc := NewWarehouseService(mockRepo, testutil.NewTestLogger())

	assert.Error(t, svc.Delete(context.Background(), 4))
	mockRepo.AssertExpectations(t)
}
