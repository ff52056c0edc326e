package domain

import "fmt"

// Kind is the type of a stock point
type Kind string

const (
	KindStore     Kind = "store"
	KindWarehouse Kind = "warehouse"
)

// ParseKind parses a kind from its string form
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStore, KindWarehouse:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Title returns the Russian name of the kind
func (k Kind) Title() string {
	if k == KindWarehouse {
		return "Склад"
	}
	return "Магазин"
}

// StockTitle returns the header of the stock view for a point named name
func (k Kind) StockTitle(name string) string {
	if k == KindWarehouse {
		return "Остатки на складе «" + name + "»"
	}
	return "Остатки в магазине «" + name + "»"
}

// ReceiptTitle returns the header of the receipt form for a point named name
func (k Kind) ReceiptTitle(name string) string {
	if k == KindWarehouse {
		return "Поступление на склад «" + name + "»"
	}
	return "Поступление в магазин «" + name + "»"
}

// AddTitle returns the header of the create form
func (k Kind) AddTitle() string {
	if k == KindWarehouse {
		return "Добавить склад"
	}
	return "Добавить магазин"
}

// EditTitle returns the header of the edit form
func (k Kind) EditTitle() string {
	if k == KindWarehouse {
		return "Редактировать склад"
	}
	return "Редактировать магазин"
}
