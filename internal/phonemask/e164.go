package phonemask

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidNumber is returned when a phone cannot be turned into E.164
var ErrInvalidNumber = errors.New("invalid phone number")

const region = "RU"

// E164 converts a complete phone in any accepted notation into E.164,
// e.g. "+7 (926) 123-45-67" becomes "+79261234567".
func E164(text string) (string, error) {
	res := Validate(text)
	if err := res.Err(); err != nil {
		return "", err
	}
	if res.Value == "" {
		return "", ErrInvalidNumber
	}

	num, err := phonenumbers.Parse(res.Value, region)
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
