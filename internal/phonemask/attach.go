package phonemask

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// Class marks controls that AttachAll should mask
	Class = "phone-input"
	// InitedFlag is set on a control once the mask is attached to it
	InitedFlag = "phoneMaskInited"
)

// PasteEvent is a paste about to be applied to a control
type PasteEvent interface {
	Text() string
	PreventDefault()
}

// Control is an editable single-line text control. Offsets are in runes.
type Control interface {
	Value() string
	SetValue(v string)
	SelectionStart() int
	SetSelectionRange(start, end int)

	// Flag reports whether the persistent marker name is set on the control
	Flag(name string) bool
	SetFlag(name string)

	OnInput(fn func(c Control))
	OnPaste(fn func(c Control, ev PasteEvent))
}

// Container holds controls that can be looked up by class
type Container interface {
	Query(class string) []Control
}

// Mask attaches live formatting to controls
type Mask struct {
	logger *zap.Logger
}

// NewMask creates a new mask
func NewMask(logger *zap.Logger) *Mask {
	return &Mask{logger: logger}
}

// AttachAll masks every phone-input control in root that is not masked yet
// and returns how many controls were attached. Calling it again after new
// controls were added only touches the new ones.
func (m *Mask) AttachAll(root Container) int {
	attached := 0
	for _, c := range root.Query(Class) {
		if m.Attach(c) {
			attached++
		}
	}
	if attached > 0 {
		m.logger.Debug("Phone mask attached", zap.Int("controls", attached))
	}
	return attached
}

// Attach masks a single control. It returns false if the control was
// already masked.
func (m *Mask) Attach(c Control) bool {
	if c.Flag(InitedFlag) {
		return false
	}
	c.SetFlag(InitedFlag)
	c.OnInput(HandleInput)
	c.OnPaste(HandlePaste)
	if v := c.Value(); v != "" {
		c.SetValue(Format(v))
	}
	return true
}

// HandleInput reformats the control value after a keystroke and moves the
// caret by the change in length.
func HandleInput(c Control) {
	start := c.SelectionStart()
	oldLen := utf8.RuneCountInString(c.Value())
	formatted := Format(c.Value())
	c.SetValue(formatted)
	pos := Caret(formatted, start, oldLen)
	c.SetSelectionRange(pos, pos)
}

// HandlePaste replaces the whole control value with the formatted clipboard text
func HandlePaste(c Control, ev PasteEvent) {
	ev.PreventDefault()
	c.SetValue(Format(ev.Text()))
}

// Caret computes the caret offset in formatted given the caret offset and
// rune length of the value before formatting. The caret is shifted by the
// length delta and then stepped back over a separator that formatting placed
// just before it. formatted is always ASCII.
func Caret(formatted string, oldStart, oldLen int) int {
	pos := max(0, oldStart+len(formatted)-oldLen)
	pos = min(pos, len(formatted))
	for _, sep := range []byte{'-', ')', ' '} {
		if pos > 0 && formatted[pos-1] == sep {
			pos--
		}
	}
	return pos
}
