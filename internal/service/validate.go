package service

import (
	"strings"

	"stockadmin/internal/domain"
	"stockadmin/internal/phonemask"
)

// User-facing validation messages, shared with the editor dialogs
const (
	MsgNameRequired   = "Укажите название"
	MsgNegativeArea   = "Площадь не может быть отрицательной"
	MsgReceiptInvalid = "Выберите товар и укажите количество"
)

// pointFields holds the trimmed and validated fields shared by stores and warehouses
type pointFields struct {
	name    string
	address string
	phone   string
}

// validatePoint trims the fields, requires a name and replaces a non-empty
// phone with its formatted form.
func validatePoint(name, address, phone string) (pointFields, error) {
	f := pointFields{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
	}
	if f.name == "" {
		return f, domain.NewUserError(MsgNameRequired)
	}
	if f.phone != "" {
		res := phonemask.Validate(f.phone)
		if !res.Valid {
			return f, domain.NewUserError(res.Message)
		}
		f.phone = res.Value
	}
	return f, nil
}
