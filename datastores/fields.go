package datastores

import (
	"time"
	"unicode"
)

type (
	Name struct {
		Value string
	}
	Phone struct {
		Value string
	}
	Birthday struct {
		Value string
		date  time.Time
	}
)

func NewName(value string) Name { return Name{Value: value} }

// NewPhone returns [ErrInvalidPhoneNumber] unless value is empty or made only of decimal digits of any script.
func NewPhone(value string) (*Phone, error) {
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return nil, ErrInvalidPhoneNumber
		}
	}
	return &Phone{Value: value}, nil
}

// NewBirthday returns [ErrInvalidBirthdayFormat] unless value is empty or a [time.DateOnly] date.
func NewBirthday(value string) (Birthday, error) {
	if value == "" {
		return Birthday{}, nil
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Birthday{}, ErrInvalidBirthdayFormat
	}
	return Birthday{Value: value, date: date}, nil
}

func (b Birthday) IsZero() bool { return b.Value == "" }
