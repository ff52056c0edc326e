// Package editor drives the store and warehouse dialogs: create and edit
// forms, deletion, stock view and goods receipt. Each admin gets a Session
// that owns the dialog state explicitly.
package editor

import (
	"errors"

	"stockadmin/internal/phonemask"
	"stockadmin/internal/service"

	"go.uber.org/zap"
)

var (
	// ErrUnexpectedInput is returned when text arrives while no field is being entered
	ErrUnexpectedInput = errors.New("input is not expected in this state")
	// ErrInvalidState is returned when an action does not apply to the current dialog
	ErrInvalidState = errors.New("action is not available in this state")
)

// SkipValue clears an optional field when sent as input
const SkipValue = "-"

// User-facing messages
const (
	msgAreaNotNumber  = "Укажите площадь числом"
	msgUnknownProduct = "Товар не найден, выберите его из списка"
)

// Editor creates sessions sharing the services and the phone mask
type Editor struct {
	stores     *service.StoreService
	warehouses *service.WarehouseService
	stock      *service.StockService
	mask       *phonemask.Mask
	logger     *zap.Logger
}

// New creates a new editor
func New(
	stores *service.StoreService,
	warehouses *service.WarehouseService,
	stock *service.StockService,
	mask *phonemask.Mask,
	logger *zap.Logger,
) *Editor {
	return &Editor{
		stores:     stores,
		warehouses: warehouses,
		stock:      stock,
		mask:       mask,
		logger:     logger,
	}
}

// NewSession creates an idle session
func (e *Editor) NewSession() *Session {
	return newSession(e)
}
