package form

import "stockadmin/internal/phonemask"

// Form is an ordered set of named fields
type Form struct {
	fields []*Field
}

// New creates a form from fields
func New(fields ...*Field) *Form {
	return &Form{fields: fields}
}

// Add appends a field to the form
func (f *Form) Add(field *Field) {
	f.fields = append(f.fields, field)
}

// Field returns the field with the given name or nil
func (f *Form) Field(name string) *Field {
	for _, field := range f.fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// Value returns the text of the named field or "" if there is none
func (f *Form) Value(name string) string {
	if field := f.Field(name); field != nil {
		return field.Value()
	}
	return ""
}

// Reset clears every field
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.Clear()
	}
}

// Query implements phonemask.Container
func (f *Form) Query(class string) []phonemask.Control {
	var out []phonemask.Control
	for _, field := range f.fields {
		if field.HasClass(class) {
			out = append(out, field)
		}
	}
	return out
}
