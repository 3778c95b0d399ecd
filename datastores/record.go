package datastores

import (
	"slices"
	"time"
)

// Record is one contact. Its Name is the directory key and must not change once stored.
type Record struct {
	Name     Name
	Phones   []*Phone
	Birthday Birthday
}

func NewRecord(name, birthday string) (*Record, error) {
	b, err := NewBirthday(birthday)
	if err != nil {
		return nil, err
	}
	return &Record{Name: NewName(name), Birthday: b}, nil
}

func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes every phone equal to value.
func (r *Record) RemovePhone(value string) {
	r.Phones = slices.DeleteFunc(r.Phones, func(p *Phone) bool { return p.Value == value })
}

// EditPhone sets the first phone equal to old to value and reports whether one was found.
//
// The new value is stored without validation.
func (r *Record) EditPhone(old, value string) bool {
	for _, p := range r.Phones {
		if p.Value == old {
			p.Value = value
			return true
		}
	}
	return false
}

func (r *Record) PhoneValues() []string {
	values := make([]string, 0, len(r.Phones))
	for _, p := range r.Phones {
		values = append(values, p.Value)
	}
	return values
}

// DaysToBirthday counts the days from today to the next occurrence of the birthday,
// today included. ok is false when no birthday is set.
//
// A February 29 birthday fails with [ErrDayOutOfRange] whenever the occurrence
// being computed falls in a non-leap year.
func (r *Record) DaysToBirthday(today time.Time) (days int, ok bool, err error) {
	if r.Birthday.IsZero() {
		return 0, false, nil
	}

	year, month, day := today.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	_, bmonth, bday := r.Birthday.date.Date()

	next, err := occurrence(year, bmonth, bday)
	if err != nil {
		return 0, true, err
	}
	if next.Before(start) {
		next, err = occurrence(year+1, bmonth, bday)
		if err != nil {
			return 0, true, err
		}
	}
	return int(next.Sub(start).Hours() / 24), true, nil //nolint: mnd // hours per day, UTC has no DST
}

func occurrence(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month {
		return time.Time{}, ErrDayOutOfRange
	}
	return t, nil
}
