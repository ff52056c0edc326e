package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"stockadmin/internal/domain"
	"stockadmin/internal/editor"
)

const (
	msgMainMenu     = "🏠 Главное меню\n\nВыберите действие:"
	msgGenericError = "Произошла ошибка. Попробуйте позже."
	msgLoadError    = "Ошибка загрузки"
	msgSaveError    = "Ошибка сохранения"
	msgDeleteError  = "Ошибка удаления"
	msgNoData       = "Нет данных"
	msgUseMenu      = "Выберите действие в меню"
	msgSaved        = "✅ Сохранено"
	msgDeleted      = "🗑 Запись деактивирована"
	msgReceived     = "✅ Поступление сохранено"
	msgNoPhone      = "Телефон не указан"
)

// userMessage returns the text shown for err: the message of a user error or fallback
func userMessage(err error, fallback string) string {
	var userErr *domain.UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return fallback
}

func fallbackName(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}

func listTitle(kind domain.Kind) string {
	if kind == domain.KindWarehouse {
		return "🏭 Склады"
	}
	return "🏪 Магазины"
}

// renderPoints builds the list message
func renderPoints(kind domain.Kind, points []domain.Point) string {
	var b strings.Builder
	b.WriteString(listTitle(kind))
	b.WriteString("\n\n")
	if len(points) == 0 {
		b.WriteString(msgNoData)
		return b.String()
	}
	for i, p := range points {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Phone != "" {
			fmt.Fprintf(&b, " · %s", p.Phone)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// renderForm builds the confirmation screen of a create/edit dialog
func renderForm(title string, p domain.Point) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s\n\n", title)
	fmt.Fprintf(&b, "Название: %s\n", orDash(p.Name))
	fmt.Fprintf(&b, "Адрес: %s\n", orDash(p.Address))
	fmt.Fprintf(&b, "Телефон: %s", orDash(p.Phone))
	if p.Kind == domain.KindWarehouse {
		fmt.Fprintf(&b, "\nПлощадь: %s м²", strconv.FormatFloat(p.Area, 'f', -1, 64))
	}
	return b.String()
}

// prompt returns the question for a field entry state
func prompt(state domain.EditorState) string {
	switch state {
	case domain.StateEnterName:
		return "Введите название:"
	case domain.StateEnterAddress:
		return fmt.Sprintf("Введите адрес (или «%s», чтобы оставить пустым):", editor.SkipValue)
	case domain.StateEnterPhone:
		return fmt.Sprintf("Введите телефон в формате +7 (XXX) XXX-XX-XX (или «%s», чтобы оставить пустым):", editor.SkipValue)
	case domain.StateEnterArea:
		return fmt.Sprintf("Введите площадь в м² (или «%s» для 0):", editor.SkipValue)
	case domain.StateReceiptQty:
		return "Введите количество:"
	}
	return msgUseMenu
}

// renderStock builds the stock view
func renderStock(target domain.StockTarget, rows []domain.StockRow, isLow func(productID int64) bool) string {
	var b strings.Builder
	b.WriteString(target.Kind.StockTitle(target.Title))
	b.WriteString("\n\n")
	if len(rows) == 0 {
		b.WriteString(msgNoData)
		return b.String()
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "• %s — %d", row.ProductName, row.Quantity)
		if isLow(row.ProductID) {
			b.WriteString(" ⚠️")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func deleteQuestion(kind domain.Kind) string {
	if kind == domain.KindWarehouse {
		return "Удалить этот склад? Запись будет деактивирована."
	}
	return "Удалить этот магазин? Запись будет деактивирована."
}

// callbackPayload joins a point kind and id for button data
func callbackPayload(kind domain.Kind, id int64) string {
	return string(kind) + ":" + strconv.FormatInt(id, 10)
}

// parsePointPayload parses "kind:id" button data
func parsePointPayload(payload string) (domain.Kind, int64, error) {
	kindStr, idStr, ok := strings.Cut(payload, ":")
	if !ok {
		return "", 0, fmt.Errorf("malformed point payload %q", payload)
	}
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("malformed point id %q", idStr)
	}
	return kind, id, nil
}
