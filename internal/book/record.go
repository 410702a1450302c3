package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Record is one contact: a name, an ordered list of phones and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name, which is also its AddressBook key.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// PhoneNumbers returns the raw phone values in insertion order.
func (r *Record) PhoneNumbers() []string {
	numbers := make([]string, len(r.phones))
	for i, p := range r.phones {
		numbers[i] = p.String()
	}
	return numbers
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to oldValue with newValue. The old
// entry is removed and the new one appended at the end of the list.
// Nothing changes when oldValue is absent (NotFoundError) or newValue is invalid
// (ValidationError).
func (r *Record) EditPhone(oldValue, newValue string) error {
	idx := r.indexOf(oldValue)
	if idx < 0 {
		return &NotFoundError{Kind: config.EntityPhone, Key: oldValue}
	}
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	r.phones = slices.Delete(r.phones, idx, idx+1)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	idx := r.indexOf(value)
	if idx < 0 {
		return Phone{}, false
	}
	return r.phones[idx], true
}

// RemovePhone removes the first phone equal to value. Absent values are ignored.
func (r *Record) RemovePhone(value string) {
	if idx := r.indexOf(value); idx >= 0 {
		r.phones = slices.Delete(r.phones, idx, idx+1)
	}
}

// AddBirthday parses raw as DD.MM.YYYY and sets or replaces the birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.SetBirthday(b)
	return nil
}

// SetBirthday sets or replaces the birthday with an already validated value.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

func (r *Record) String() string {
	return fmt.Sprintf(config.FormatRecordString, r.Name(), strings.Join(r.PhoneNumbers(), config.PhoneSeparatorText))
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == value })
}
