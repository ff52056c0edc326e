package form

import (
	"testing"

	"stockadmin/internal/phonemask"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStoreForm() *Form {
	return New(
		NewField("name"),
		NewField("address"),
		NewField("phone", phonemask.Class),
	)
}

func TestField_TypeWithoutMask(t *testing.T) {
	f := NewField("name")
	f.Type("Склад")
	f.SetSelectionRange(0, 0)
	f.Type("Новый ")

	assert.Equal(t, "Новый Склад", f.Value())
	assert.Equal(t, 6, f.SelectionStart())
}

func TestField_PasteWithoutMask(t *testing.T) {
	f := NewField("address")
	f.SetValue("ул. ")
	f.Paste("Ленина, 1")

	assert.Equal(t, "ул. Ленина, 1", f.Value())
}

func TestField_SetSelectionRangeClamped(t *testing.T) {
	f := NewField("name")
	f.SetValue("abc")

	f.SetSelectionRange(10, 10)
	assert.Equal(t, 3, f.SelectionStart())

	f.SetSelectionRange(-1, -1)
	assert.Equal(t, 0, f.SelectionStart())
}

func TestForm_Query(t *testing.T) {
	f := newStoreForm()

	controls := f.Query(phonemask.Class)
	require.Len(t, controls, 1)
	assert.Same(t, f.Field("phone"), controls[0])
	assert.Empty(t, f.Query("missing"))
}

func TestForm_ValueAndReset(t *testing.T) {
	f := newStoreForm()
	f.Field("name").SetValue("Магазин")

	assert.Equal(t, "Магазин", f.Value("name"))
	assert.Equal(t, "", f.Value("unknown"))
	assert.Nil(t, f.Field("unknown"))

	f.Reset()
	assert.Equal(t, "", f.Value("name"))
}

func TestForm_MaskedPhoneTyping(t *testing.T) {
	f := newStoreForm()
	mask := phonemask.NewMask(zap.NewNop())
	require.Equal(t, 1, mask.AttachAll(f))

	phone := f.Field("phone")
	for _, key := range []string{"8", "9", "2", "6", "1", "2", "3", "4", "5"} {
		phone.Type(key)
	}
	assert.Equal(t, "+7 (926) 123-45-", phone.Value())
	assert.Equal(t, 15, phone.SelectionStart())

	phone.SetSelectionRange(16, 16)
	phone.Type("6")
	phone.Type("7")

	assert.Equal(t, "+7 (926) 123-45-67", phone.Value())
	assert.Equal(t, 18, phone.SelectionStart())
}

func TestForm_MaskedPhonePasteReplacesValue(t *testing.T) {
	f := newStoreForm()
	phone := f.Field("phone")
	phone.SetValue("+7 (111) 2")

	mask := phonemask.NewMask(zap.NewNop())
	mask.AttachAll(f)
	phone.Paste("8 926 123 45 67")

	assert.Equal(t, "+7 (926) 123-45-67", phone.Value())
}

func TestForm_ReattachFormatsOnlyNewFields(t *testing.T) {
	f := newStoreForm()
	mask := phonemask.NewMask(zap.NewNop())
	mask.AttachAll(f)

	extra := NewField("extra_phone", phonemask.Class)
	extra.SetValue("79991234567")
	f.Add(extra)

	assert.Equal(t, 1, mask.AttachAll(f))
	assert.Equal(t, "+7 (999) 123-45-67", extra.Value())
	assert.Equal(t, 0, mask.AttachAll(f))
}
