package handler

import (
	"errors"
	"fmt"
	"testing"

	"stockadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	userErr := domain.NewUserError("Укажите название")

	assert.Equal(t, "Укажите название", userMessage(userErr, msgSaveError))
	assert.Equal(t, "Укажите название", userMessage(fmt.Errorf("save: %w", userErr), msgSaveError))
	assert.Equal(t, msgSaveError, userMessage(errors.New("timeout"), msgSaveError))
}

func TestRenderPoints(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.Kind
		points   []domain.Point
		expected string
	}{
		{
			name:     "empty",
			kind:     domain.KindWarehouse,
			expected: "🏭 Склады\n\nНет данных",
		},
		{
			name: "with and without phone",
			kind: domain.KindStore,
			points: []domain.Point{
				{Name: "Центральный", Phone: "+7 (926) 123-45-67"},
				{Name: "Северный"},
			},
			expected: "🏪 Магазины\n\n1. Центральный · +7 (926) 123-45-67\n2. Северный",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderPoints(tt.kind, tt.points))
		})
	}
}

func TestRenderForm(t *testing.T) {
	store := domain.Point{Kind: domain.KindStore, Name: "Центральный"}
	assert.Equal(t,
		"📝 Добавить магазин\n\nНазвание: Центральный\nАдрес: —\nТелефон: —",
		renderForm("Добавить магазин", store),
	)

	wh := domain.Point{Kind: domain.KindWarehouse, Name: "Основной", Address: "промзона, 3", Phone: "+7 (926) 123-45-67", Area: 120.5}
	assert.Equal(t,
		"📝 Склад\n\nНазвание: Основной\nАдрес: промзона, 3\nТелефон: +7 (926) 123-45-67\nПлощадь: 120.5 м²",
		renderForm("Склад", wh),
	)
}

func TestRenderStock(t *testing.T) {
	target := domain.StockTarget{Kind: domain.KindStore, ID: 1, Title: "Центральный"}
	rows := []domain.StockRow{
		{ProductID: 1, ProductName: "Молоко", Quantity: 3},
		{ProductID: 2, ProductName: "Хлеб", Quantity: 40},
	}
	isLow := func(id int64) bool { return id == 1 }

	assert.Equal(t,
		"Остатки в магазине «Центральный»\n\n• Молоко — 3 ⚠️\n• Хлеб — 40",
		renderStock(target, rows, isLow),
	)
	assert.Equal(t,
		"Остатки в магазине «Центральный»\n\nНет данных",
		renderStock(target, nil, isLow),
	)
}

func TestPrompt(t *testing.T) {
	assert.Contains(t, prompt(domain.StateEnterPhone), "+7 (XXX) XXX-XX-XX")
	assert.Equal(t, "Введите название:", prompt(domain.StateEnterName))
	assert.Equal(t, msgUseMenu, prompt(domain.StateIdle))
}

func TestContactText(t *testing.T) {
	assert.Equal(t, "📞 Центральный: +79261234567", contactText("Центральный", "+79261234567"))
	assert.Equal(t, "📞 +79261234567", contactText("  ", "+79261234567"))
}
