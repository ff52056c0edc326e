// Package form models editable text fields and forms in memory so that
// chat-driven dialogs can reuse input masks written for text controls.
package form

import (
	"unicode/utf8"

	"stockadmin/internal/phonemask"
)

// Field is a single-line text field with a caret
type Field struct {
	name    string
	classes []string
	value   string
	caret   int
	dataset map[string]bool

	inputListeners []func(phonemask.Control)
	pasteListeners []func(phonemask.Control, phonemask.PasteEvent)
}

// NewField creates an empty field
func NewField(name string, classes ...string) *Field {
	return &Field{
		name:    name,
		classes: classes,
		dataset: make(map[string]bool),
	}
}

// Name returns the field name
func (f *Field) Name() string {
	return f.name
}

// HasClass reports whether the field carries class
func (f *Field) HasClass(class string) bool {
	for _, c := range f.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Value returns the current text
func (f *Field) Value() string {
	return f.value
}

// SetValue replaces the text and moves the caret to its end
func (f *Field) SetValue(v string) {
	f.value = v
	f.caret = utf8.RuneCountInString(v)
}

// SelectionStart returns the caret offset in runes
func (f *Field) SelectionStart() int {
	return f.caret
}

// SetSelectionRange collapses the selection to start; fields have no
// ranged selection.
func (f *Field) SetSelectionRange(start, _ int) {
	f.caret = max(0, min(start, utf8.RuneCountInString(f.value)))
}

// Flag reports whether the dataset flag is set
func (f *Field) Flag(name string) bool {
	return f.dataset[name]
}

// SetFlag sets a dataset flag
func (f *Field) SetFlag(name string) {
	f.dataset[name] = true
}

// OnInput registers a listener fired after typing
func (f *Field) OnInput(fn func(phonemask.Control)) {
	f.inputListeners = append(f.inputListeners, fn)
}

// OnPaste registers a listener fired before pasted text is inserted
func (f *Field) OnPaste(fn func(phonemask.Control, phonemask.PasteEvent)) {
	f.pasteListeners = append(f.pasteListeners, fn)
}

// Type inserts s at the caret and fires input listeners, as a keystroke would
func (f *Field) Type(s string) {
	f.insert(s)
	for _, fn := range f.inputListeners {
		fn(f)
	}
}

// Paste fires paste listeners and inserts s at the caret unless a listener
// prevented it.
func (f *Field) Paste(s string) {
	ev := &pasteEvent{text: s}
	for _, fn := range f.pasteListeners {
		fn(f, ev)
	}
	if !ev.prevented {
		f.insert(s)
	}
}

// Clear empties the field without firing listeners
func (f *Field) Clear() {
	f.SetValue("")
}

func (f *Field) insert(s string) {
	runes := []rune(f.value)
	at := min(f.caret, len(runes))
	f.value = string(runes[:at]) + s + string(runes[at:])
	f.caret = at + utf8.RuneCountInString(s)
}

type pasteEvent struct {
	text      string
	prevented bool
}

func (e *pasteEvent) Text() string {
	return e.text
}

func (e *pasteEvent) PreventDefault() {
	e.prevented = true
}
