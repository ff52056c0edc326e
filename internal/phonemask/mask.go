// Package phonemask formats and validates Russian phone numbers in the
// "+7 (XXX) XXX-XX-XX" pattern and keeps editable text controls masked while
// the user types.
package phonemask

import (
	"errors"
	"fmt"
	"strings"
)

// Prefix starts every non-empty formatted phone.
const Prefix = "+7 ("

// nationalLength is the number of digits in a national number.
const nationalLength = 10

// MessageIncomplete is shown when a phone has between 1 and 9 digits.
const MessageIncomplete = "Введите не менее 10 цифр номера телефона"

// ErrIncomplete is wrapped by ValidationResult.Err for invalid phones
var ErrIncomplete = errors.New("incomplete phone number")

// ValidationResult is the outcome of Validate
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Value   string `json:"value"`
	Message string `json:"message,omitempty"`
}

// Err returns nil for a valid result and an error wrapping ErrIncomplete otherwise
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%s: %w", r.Message, ErrIncomplete)
}

// Digits returns the ASCII decimal digits of text in order
func Digits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// nationalDigits extracts digits and drops a leading 7 or 8 trunk/country code.
func nationalDigits(text string) string {
	d := Digits(text)
	if d != "" && (d[0] == '8' || d[0] == '7') {
		d = d[1:]
	}
	return d
}

// Format renders text as "+7 (XXX) XXX-XX-XX" or a prefix of it.
// Digits past the tenth are dropped. Text without digits formats to "".
func Format(text string) string {
	d := nationalDigits(text)
	if len(d) > nationalLength {
		d = d[:nationalLength]
	}
	return group(d)
}

func group(d string) string {
	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 3:
		return Prefix + d
	case n <= 6:
		return Prefix + d[:3] + ") " + d[3:]
	default:
		// Both dashes are written as soon as the third group starts, so a
		// partial number keeps a trailing separator: "+7 (926) 123-4-".
		return Prefix + d[:3] + ") " + d[3:6] + "-" + d[6:min(n, 8)] + "-" + d[min(n, 8):]
	}
}

// Validate checks that text holds either no digits at all or a complete
// national number. The phone is optional, so an empty field is valid.
func Validate(text string) ValidationResult {
	d := nationalDigits(text)
	if d == "" {
		return ValidationResult{Valid: true}
	}
	if len(d) < nationalLength {
		return ValidationResult{Message: MessageIncomplete}
	}
	// d is already national, so it is grouped without stripping a code again
	return ValidationResult{Valid: true, Value: group(d[:nationalLength])}
}
