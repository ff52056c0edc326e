package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"stockadmin/internal/domain"
	"stockadmin/internal/form"
	"stockadmin/internal/phonemask"
	"stockadmin/internal/service"

	"go.uber.org/zap"
)

// Session is one admin's dialog
type Session struct {
	e *Editor

	state      domain.EditorState
	kind       domain.Kind
	editingID  int64
	sequential bool
	form       *form.Form

	target    domain.StockTarget
	rows      []domain.StockRow
	low       map[int64]bool
	products  []domain.Product
	productID int64
}

func newSession(e *Editor) *Session {
	return &Session{e: e, state: domain.StateIdle}
}

// State returns the current dialog state
func (s *Session) State() domain.EditorState {
	return s.state
}

// Kind returns the kind of point being edited
func (s *Session) Kind() domain.Kind {
	return s.kind
}

// EditingID returns the id of the edited point or zero for a new one
func (s *Session) EditingID() int64 {
	return s.editingID
}

// Title returns the header of the current form
func (s *Session) Title() string {
	if s.editingID == 0 {
		return s.kind.AddTitle()
	}
	return s.kind.EditTitle()
}

// Point returns the form contents
func (s *Session) Point() domain.Point {
	p := domain.Point{Kind: s.kind, ID: s.editingID}
	if s.form == nil {
		return p
	}
	p.Name = s.form.Value(domain.FieldName)
	p.Address = s.form.Value(domain.FieldAddress)
	p.Phone = s.form.Value(domain.FieldPhone)
	if v := s.form.Value(domain.FieldArea); v != "" {
		p.Area, _ = strconv.ParseFloat(v, 64)
	}
	return p
}

// Target returns the point whose stock is open
func (s *Session) Target() domain.StockTarget {
	return s.target
}

// Rows returns the loaded stock rows
func (s *Session) Rows() []domain.StockRow {
	return s.rows
}

// IsLow reports whether the product is below its minimum at the open point
func (s *Session) IsLow(productID int64) bool {
	return s.low[productID]
}

// Products returns the products offered for receipt
func (s *Session) Products() []domain.Product {
	return s.products
}

// Product returns the product chosen for receipt
func (s *Session) Product() (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == s.productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Reset returns the session to idle
func (s *Session) Reset() {
	*s = *newSession(s.e)
}

func (s *Session) newForm(kind domain.Kind) {
	s.form = form.New(
		form.NewField(domain.FieldName),
		form.NewField(domain.FieldAddress),
		form.NewField(domain.FieldPhone, phonemask.Class),
	)
	if kind == domain.KindWarehouse {
		area := form.NewField(domain.FieldArea)
		area.SetValue("0")
		s.form.Add(area)
	}
}

// OpenAdd starts the create dialog that asks for every field in turn
func (s *Session) OpenAdd(kind domain.Kind) {
	s.Reset()
	s.kind = kind
	s.sequential = true
	s.newForm(kind)
	s.e.mask.AttachAll(s.form)
	s.state = domain.StateEnterName
}

// OpenEdit loads a point into the form and shows it for confirmation
func (s *Session) OpenEdit(ctx context.Context, kind domain.Kind, id int64) error {
	var p domain.Point
	switch kind {
	case domain.KindWarehouse:
		wh, err := s.e.warehouses.Get(ctx, id)
		if err != nil {
			return err
		}
		p = wh.Point()
	default:
		store, err := s.e.stores.Get(ctx, id)
		if err != nil {
			return err
		}
		p = store.Point()
	}

	s.Reset()
	s.kind = kind
	s.editingID = id
	s.newForm(kind)
	s.form.Field(domain.FieldName).SetValue(p.Name)
	s.form.Field(domain.FieldAddress).SetValue(p.Address)
	s.form.Field(domain.FieldPhone).SetValue(p.Phone)
	if kind == domain.KindWarehouse {
		s.form.Field(domain.FieldArea).SetValue(formatArea(p.Area))
	}
	// attaching after the values are set formats the stored phone
	s.e.mask.AttachAll(s.form)
	s.state = domain.StateConfirm
	return nil
}

// Input applies a text message to the field being entered
func (s *Session) Input(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	switch s.state {
	case domain.StateEnterName:
		if text == "" {
			return domain.NewUserError(service.MsgNameRequired)
		}
		s.form.Field(domain.FieldName).SetValue(text)

	case domain.StateEnterAddress:
		if text == SkipValue {
			text = ""
		}
		s.form.Field(domain.FieldAddress).SetValue(text)

	case domain.StateEnterPhone:
		if err := s.inputPhone(text); err != nil {
			return err
		}

	case domain.StateEnterArea:
		area, err := parseArea(text)
		if err != nil {
			return err
		}
		s.form.Field(domain.FieldArea).SetValue(formatArea(area))

	case domain.StateReceiptQty:
		return s.submitReceipt(ctx, text)

	default:
		return ErrUnexpectedInput
	}

	s.next()
	return nil
}

// inputPhone pastes the message into the masked phone field. An incomplete
// number keeps the previous value.
func (s *Session) inputPhone(text string) error {
	field := s.form.Field(domain.FieldPhone)
	if text == SkipValue {
		field.Clear()
		return nil
	}

	previous := field.Value()
	field.Clear()
	field.Paste(text)

	res := phonemask.Validate(field.Value())
	if !res.Valid {
		field.SetValue(previous)
		return domain.NewUserError(res.Message)
	}
	field.SetValue(res.Value)
	return nil
}

func parseArea(text string) (float64, error) {
	if text == SkipValue {
		return 0, nil
	}
	area, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, domain.NewUserError(msgAreaNotNumber)
	}
	if area < 0 {
		return 0, domain.NewUserError(service.MsgNegativeArea)
	}
	return area, nil
}

func formatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}

// next moves to the following field of the create dialog or back to confirmation
func (s *Session) next() {
	if !s.sequential {
		s.state = domain.StateConfirm
		return
	}

	switch s.state {
	case domain.StateEnterName:
		s.state = domain.StateEnterAddress
	case domain.StateEnterAddress:
		s.state = domain.StateEnterPhone
	case domain.StateEnterPhone:
		if s.kind == domain.KindWarehouse {
			s.state = domain.StateEnterArea
			return
		}
		s.state = domain.StateConfirm
	default:
		s.state = domain.StateConfirm
	}

	if s.state == domain.StateConfirm {
		s.sequential = false
	}
}

// EditField switches the confirmation screen to entering a single field
func (s *Session) EditField(field string) error {
	if s.state != domain.StateConfirm {
		return ErrInvalidState
	}
	state, ok := domain.FieldState(field)
	if !ok || (field == domain.FieldArea && s.kind != domain.KindWarehouse) {
		return fmt.Errorf("unknown field %q: %w", field, ErrInvalidState)
	}
	s.state = state
	return nil
}

// Save stores the form through the service and closes the dialog
func (s *Session) Save(ctx context.Context) error {
	if s.state != domain.StateConfirm {
		return ErrInvalidState
	}

	p := s.Point()
	var err error
	switch s.kind {
	case domain.KindWarehouse:
		err = s.e.warehouses.Save(ctx, domain.Warehouse{
			ID: p.ID, Name: p.Name, Address: p.Address, Phone: p.Phone, Area: p.Area,
		})
	default:
		err = s.e.stores.Save(ctx, domain.Store{
			ID: p.ID, Name: p.Name, Address: p.Address, Phone: p.Phone,
		})
	}
	if err != nil {
		return err
	}

	s.Reset()
	return nil
}

// RequestDelete asks for confirmation before deleting the edited point
func (s *Session) RequestDelete() error {
	if s.state != domain.StateConfirm || s.editingID == 0 {
		return ErrInvalidState
	}
	s.state = domain.StateConfirmDelete
	return nil
}

// Delete deactivates the edited point and closes the dialog
func (s *Session) Delete(ctx context.Context) error {
	if s.state != domain.StateConfirmDelete {
		return ErrInvalidState
	}

	var err error
	switch s.kind {
	case domain.KindWarehouse:
		err = s.e.warehouses.Delete(ctx, s.editingID)
	default:
		err = s.e.stores.Delete(ctx, s.editingID)
	}
	if err != nil {
		return err
	}

	s.Reset()
	return nil
}

// OpenStock loads the stock of a point
func (s *Session) OpenStock(ctx context.Context, target domain.StockTarget) error {
	rows, err := s.e.stock.Stock(ctx, target)
	if err != nil {
		return err
	}

	s.Reset()
	s.target = target
	s.rows = rows
	s.state = domain.StateStock

	// minimums only decorate the view
	products, err := s.e.stock.Products(ctx)
	if err != nil {
		s.e.logger.Warn("Failed to load products for stock view", zap.Error(err))
		return nil
	}
	s.low = s.e.stock.LowStock(rows, products)
	return nil
}

// OpenReceipt loads the product list for a receipt at the open point
func (s *Session) OpenReceipt(ctx context.Context) error {
	if s.state != domain.StateStock {
		return ErrInvalidState
	}
	products, err := s.e.stock.Products(ctx)
	if err != nil {
		return err
	}
	s.products = products
	s.productID = 0
	s.state = domain.StateReceiptProduct
	return nil
}

// SelectProduct picks the product to receive
func (s *Session) SelectProduct(id int64) error {
	if s.state != domain.StateReceiptProduct {
		return ErrInvalidState
	}
	for _, p := range s.products {
		if p.ID == id {
			s.productID = id
			s.state = domain.StateReceiptQty
			return nil
		}
	}
	return domain.NewUserError(msgUnknownProduct)
}

func (s *Session) submitReceipt(ctx context.Context, text string) error {
	qty, err := strconv.Atoi(text)
	if err != nil || qty < 1 {
		return domain.NewUserError(service.MsgReceiptInvalid)
	}
	if err := s.e.stock.Receipt(ctx, s.target, s.productID, qty); err != nil {
		return err
	}

	target := s.target
	if err := s.OpenStock(ctx, target); err != nil {
		// the receipt is stored, show the stock without refreshed rows
		s.e.logger.Warn("Failed to reload stock after receipt", zap.Error(err))
		s.productID = 0
		s.products = nil
		s.state = domain.StateStock
	}
	return nil
}

// Cancel steps back: receipt to stock, delete confirmation and single-field
// edits to the form, anything else to idle.
func (s *Session) Cancel() {
	switch s.state {
	case domain.StateReceiptProduct, domain.StateReceiptQty:
		s.products = nil
		s.productID = 0
		s.state = domain.StateStock
	case domain.StateConfirmDelete:
		s.state = domain.StateConfirm
	case domain.StateEnterName, domain.StateEnterAddress, domain.StateEnterPhone, domain.StateEnterArea:
		if s.sequential {
			s.Reset()
			return
		}
		s.state = domain.StateConfirm
	default:
		s.Reset()
	}
}
