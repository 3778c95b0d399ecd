package datastores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 15, 4, 5, 0, time.Local)
}

func TestRecordPhones(t *testing.T) {
	r, err := NewRecord("alice", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", r.Name.Value)

	require.NoError(t, r.AddPhone("111"))
	require.NoError(t, r.AddPhone("222"))
	require.NoError(t, r.AddPhone("111"))
	assert.Equal(t, []string{"111", "222", "111"}, r.PhoneValues())

	assert.ErrorIs(t, r.AddPhone("x1"), ErrInvalidPhoneNumber)
	assert.Len(t, r.Phones, 3)

	assert.True(t, r.EditPhone("111", "333"))
	assert.Equal(t, []string{"333", "222", "111"}, r.PhoneValues(), "only the first match is edited")
	assert.False(t, r.EditPhone("999", "444"))

	r.RemovePhone("111")
	r.RemovePhone("222")
	assert.Equal(t, []string{"333"}, r.PhoneValues())
}

func TestRecordRemovePhoneAllMatches(t *testing.T) {
	r := &Record{Name: NewName("alice")}
	for _, value := range []string{"111", "222", "111", "333", "111"} {
		require.NoError(t, r.AddPhone(value))
	}

	r.RemovePhone("111")
	assert.Equal(t, []string{"222", "333"}, r.PhoneValues())

	r.RemovePhone("999")
	assert.Equal(t, []string{"222", "333"}, r.PhoneValues())
}

// EditPhone stores the new value without checking it is made of digits.
func TestRecordEditPhoneSkipsValidation(t *testing.T) {
	r := &Record{Name: NewName("bob")}
	require.NoError(t, r.AddPhone("123"))

	assert.True(t, r.EditPhone("123", "not-a-phone"))
	assert.Equal(t, []string{"not-a-phone"}, r.PhoneValues())
}

func TestNewRecordInvalidBirthday(t *testing.T) {
	_, err := NewRecord("alice", "1990-13-01")
	assert.ErrorIs(t, err, ErrInvalidBirthdayFormat)
}

func TestRecordDaysToBirthday(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		today    time.Time
		days     int
	}{
		{"today", "1990-10-16", date(2026, time.October, 16), 0},
		{"tomorrow", "1990-10-17", date(2026, time.October, 16), 1},
		{"later this year", "1990-12-25", date(2026, time.October, 16), 70},
		{"passed this year", "1990-10-15", date(2026, time.October, 16), 364},
		{"passed, next year leap", "1990-03-01", date(2027, time.March, 2), 365},
		{"leap day in leap year", "2000-02-29", date(2028, time.February, 1), 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord("alice", tt.birthday)
			require.NoError(t, err)

			days, ok, err := r.DaysToBirthday(tt.today)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestRecordDaysToBirthdayUnset(t *testing.T) {
	r, err := NewRecord("alice", "")
	require.NoError(t, err)

	_, ok, err := r.DaysToBirthday(date(2026, time.October, 16))
	require.NoError(t, err)
	assert.False(t, ok)
}

// February 29 has no occurrence in a non-leap year, the computation fails instead of moving the date.
func TestRecordDaysToBirthdayLeapDay(t *testing.T) {
	r, err := NewRecord("alice", "2000-02-29")
	require.NoError(t, err)

	_, ok, err := r.DaysToBirthday(date(2026, time.October, 16))
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrDayOutOfRange)

	_, _, err = r.DaysToBirthday(date(2028, time.March, 1))
	assert.ErrorIs(t, err, ErrDayOutOfRange, "passed in 2028, 2029 is not a leap year")
}
