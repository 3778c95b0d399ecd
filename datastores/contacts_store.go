package datastores

import (
	"errors"
	"iter"
)

// ContactsStore is the directory of contacts keyed by name.
type ContactsStore interface {
	Put(*Record)
	Get(name string) (*Record, error)
	Len() int
	List(offset, length int) []*Record
	Pages(size int) iter.Seq[[]*Record]
}

var ErrObjectNotFound = errors.New("datastores: object not found")

// ValueError reports a field value rejected by its validator.
// Message is meant to be shown to the user as is.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }

var (
	ErrInvalidPhoneNumber    = &ValueError{Message: "Invalid phone number"}
	ErrInvalidBirthdayFormat = &ValueError{Message: "Invalid birthday format"}
	ErrDayOutOfRange         = &ValueError{Message: "day is out of range for month"}
)
