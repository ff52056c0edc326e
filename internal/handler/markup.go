package handler

import (
	"strconv"

	"stockadmin/internal/domain"
	"stockadmin/internal/editor"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques
const (
	cbMenu      = "menu"
	cbList      = "list"
	cbAdd       = "add"
	cbOpen      = "open"
	cbStock     = "stock"
	cbField     = "field"
	cbSave      = "save"
	cbDelete    = "delete"
	cbDeleteYes = "delete_yes"
	cbCancel    = "cancel"
	cbReceipt   = "receipt"
	cbProduct   = "product"
	cbContact   = "contact"
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data("🏪 Магазины", cbList, string(domain.KindStore))),
		menu.Row(menu.Data("🏭 Склады", cbList, string(domain.KindWarehouse))),
	)
	return menu
}

func menuButton(m *tele.ReplyMarkup) tele.Btn {
	return m.Data("🏠 Главное меню", cbMenu)
}

func cancelMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("❌ Отменить", cbCancel)))
	return m
}

// pointsMarkup lists points with edit and stock buttons
func pointsMarkup(kind domain.Kind, points []domain.Point) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(points)+2)
	for _, p := range points {
		payload := callbackPayload(kind, p.ID)
		rows = append(rows, m.Row(
			m.Data("✏️ "+p.Name, cbOpen, payload),
			m.Data("📦 Остатки", cbStock, payload),
		))
	}
	rows = append(rows,
		m.Row(m.Data(kind.AddTitle(), cbAdd, string(kind))),
		m.Row(menuButton(m)),
	)
	m.Inline(rows...)
	return m
}

// formMarkup returns the buttons of the confirmation screen
func formMarkup(s *editor.Session) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := []tele.Row{
		m.Row(
			m.Data("Название", cbField, domain.FieldName),
			m.Data("Адрес", cbField, domain.FieldAddress),
			m.Data("Телефон", cbField, domain.FieldPhone),
		),
	}
	if s.Kind() == domain.KindWarehouse {
		rows = append(rows, m.Row(m.Data("Площадь", cbField, domain.FieldArea)))
	}
	if s.Point().Phone != "" {
		rows = append(rows, m.Row(m.Data("📞 Телефон для звонка", cbContact)))
	}

	actions := m.Row(m.Data("💾 Сохранить", cbSave))
	if s.EditingID() != 0 {
		actions = append(actions, m.Data("🗑 Удалить", cbDelete))
	}
	actions = append(actions, m.Data("❌ Отменить", cbCancel))
	rows = append(rows, actions)

	m.Inline(rows...)
	return m
}

func deleteMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(
		m.Data("✅ Да, удалить", cbDeleteYes),
		m.Data("❌ Отменить", cbCancel),
	))
	return m
}

func stockMarkup(target domain.StockTarget) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("➕ Поступление", cbReceipt)),
		m.Row(
			m.Data("◀️ К списку", cbList, string(target.Kind)),
			menuButton(m),
		),
	)
	return m
}

func productsMarkup(products []domain.Product) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, m.Row(m.Data(p.Name, cbProduct, strconv.FormatInt(p.ID, 10))))
	}
	rows = append(rows, m.Row(m.Data("❌ Отменить", cbCancel)))
	m.Inline(rows...)
	return m
}
