package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ds "github.com/oaiiae/contactbook/datastores"
	"github.com/oaiiae/contactbook/router"
)

type Contacts struct {
	Store        ds.ContactsStore
	PageSize     int
	Now          func() time.Time // defaults to [time.Now]
	ErrorHandler func(context.Context, error)
}

func (h *Contacts) RegisterAdd(r *router.Router) { // called by [router.AutoRegister]
	r.Register("add", handlerWithErrorHandler(h.add, h.ErrorHandler))
}

// add updates the first phone, and the birthday when given, of an existing
// contact or creates a new one.
func (h *Contacts) add(_ context.Context, args []string) (string, error) {
	name, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	phone, err := arg(args, 1)
	if err != nil {
		return "", err
	}
	birthday := optArg(args, 2)

	record, err := h.Store.Get(name)
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return h.create(name, phone, birthday)
	case err != nil:
		return "", err
	}

	if birthday != "" {
		b, err := ds.NewBirthday(birthday)
		if err != nil {
			return "", err
		}
		record.Birthday = b
	}
	old := setFirstPhone(record, phone)
	return fmt.Sprintf("User %s updated! New phone: %s. Old phone: %s", name, phone, old), nil
}

func (h *Contacts) create(name, phone, birthday string) (string, error) {
	record, err := ds.NewRecord(name, birthday)
	if err != nil {
		return "", err
	}
	err = record.AddPhone(phone)
	if err != nil {
		return "", err
	}
	h.Store.Put(record)
	return fmt.Sprintf("User %s added!", name), nil
}

func (h *Contacts) RegisterChange(r *router.Router) { // called by [router.AutoRegister]
	r.Register("change", handlerWithErrorHandler(h.change, h.ErrorHandler))
}

func (h *Contacts) change(_ context.Context, args []string) (string, error) {
	name, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	phone, err := arg(args, 1)
	if err != nil {
		return "", err
	}

	record, err := h.Store.Get(name)
	if err != nil {
		return "", err
	}
	old := setFirstPhone(record, phone)
	return fmt.Sprintf("%s has a new phone: %s Old phone: %s", name, phone, old), nil
}

// setFirstPhone replaces the first phone of r, unvalidated like [ds.Record.EditPhone],
// and returns the replaced value.
func setFirstPhone(r *ds.Record, phone string) string {
	if len(r.Phones) == 0 {
		r.Phones = append(r.Phones, &ds.Phone{Value: phone})
		return ""
	}
	old := r.Phones[0].Value
	r.EditPhone(old, phone)
	return old
}

func (h *Contacts) RegisterShowAll(r *router.Router) { // called by [router.AutoRegister]
	r.Register("show all", handlerWithErrorHandler(h.showAll, h.ErrorHandler))
}

func (h *Contacts) showAll(context.Context, []string) (string, error) {
	if h.Store.Len() == 0 {
		return "No users found", nil
	}

	lines := make([]string, 0, h.Store.Len())
	for page := range h.Store.Pages(h.PageSize) {
		for _, record := range page {
			lines = append(lines, fmt.Sprintf("Name: %s, Phones: %s, Birthday: %s",
				record.Name.Value,
				strings.Join(record.PhoneValues(), ", "),
				birthdayOrDefault(record),
			))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Contacts) RegisterShowPhone(r *router.Router) { // called by [router.AutoRegister]
	r.Register("show phone", handlerWithErrorHandler(h.showPhone, h.ErrorHandler))
}

func (h *Contacts) showPhone(_ context.Context, args []string) (string, error) {
	record, err := h.record(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number(s) for %s: %s", record.Name.Value, strings.Join(record.PhoneValues(), ", ")), nil
}

func (h *Contacts) RegisterShowBirthday(r *router.Router) { // called by [router.AutoRegister]
	r.Register("show birthday", handlerWithErrorHandler(h.showBirthday, h.ErrorHandler))
}

func (h *Contacts) showBirthday(_ context.Context, args []string) (string, error) {
	record, err := h.record(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s: %s", record.Name.Value, birthdayOrDefault(record)), nil
}

func (h *Contacts) RegisterDaysToBirthday(r *router.Router) { // called by [router.AutoRegister]
	r.Register("days to birthday", handlerWithErrorHandler(h.daysToBirthday, h.ErrorHandler))
}

func (h *Contacts) daysToBirthday(_ context.Context, args []string) (string, error) {
	record, err := h.record(args)
	if err != nil {
		return "", err
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	days, ok, err := record.DaysToBirthday(now())
	switch {
	case err != nil:
		return "", err
	case !ok:
		return fmt.Sprintf("No birthday specified for %s", record.Name.Value), nil
	default:
		return fmt.Sprintf("Days until %s's birthday: %d", record.Name.Value, days), nil
	}
}

// record gets the contact named by the first argument.
func (h *Contacts) record(args []string) (*ds.Record, error) {
	name, err := arg(args, 0)
	if err != nil {
		return nil, err
	}
	return h.Store.Get(name)
}

func birthdayOrDefault(r *ds.Record) string {
	if r.Birthday.IsZero() {
		return "Not specified"
	}
	return r.Birthday.Value
}
