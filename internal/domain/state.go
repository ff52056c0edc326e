package domain

// EditorState represents the admin's current dialog
type EditorState string

const (
	StateIdle           EditorState = "idle"
	StateEnterName      EditorState = "enter_name"
	StateEnterAddress   EditorState = "enter_address"
	StateEnterPhone     EditorState = "enter_phone"
	StateEnterArea      EditorState = "enter_area"
	StateConfirm        EditorState = "confirm"
	StateConfirmDelete  EditorState = "confirm_delete"
	StateStock          EditorState = "stock"
	StateReceiptProduct EditorState = "receipt_product"
	StateReceiptQty     EditorState = "receipt_quantity"
)

// Form field names
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldArea    = "area"
)

// FieldState returns the input state for a form field
func FieldState(field string) (EditorState, bool) {
	switch field {
	case FieldName:
		return StateEnterName, true
	case FieldAddress:
		return StateEnterAddress, true
	case FieldPhone:
		return StateEnterPhone, true
	case FieldArea:
		return StateEnterArea, true
	}
	return "", false
}
