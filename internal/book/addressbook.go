package book

import (
	"slices"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// AddressBook owns the Records, keyed by name. The underlying map is never
// exposed; all mutation goes through the methods below.
type AddressBook struct {
	records map[string]*Record
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores record under its name. An existing record with the same
// name is replaced, not merged: callers that must keep prior phones check
// Find first and use Update instead.
func (b *AddressBook) AddRecord(record *Record) {
	b.records[record.Name()] = record
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Get is Find with a NotFoundError for missing names.
func (b *AddressBook) Get(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, &NotFoundError{Kind: config.EntityContact, Key: name}
	}
	return r, nil
}

// Delete removes name. Missing names are ignored.
func (b *AddressBook) Delete(name string) {
	delete(b.records, name)
}

// Update appends phone and/or sets birthday on an existing record. Empty
// arguments are skipped. Both values are validated before the record is
// touched, so a bad birthday never leaves a half-applied phone behind.
// It returns a NotFoundError when name is absent.
func (b *AddressBook) Update(name, phone, birthday string) error {
	r, err := b.Get(name)
	if err != nil {
		return err
	}

	var (
		p   *Phone
		bir *Birthday
	)
	if phone != "" {
		v, err := NewPhone(phone)
		if err != nil {
			return err
		}
		p = &v
	}
	if birthday != "" {
		v, err := NewBirthday(birthday)
		if err != nil {
			return err
		}
		bir = &v
	}

	if p != nil {
		r.phones = append(r.phones, *p)
	}
	if bir != nil {
		r.SetBirthday(*bir)
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records sorted by name.
func (b *AddressBook) Records() []*Record {
	names := make([]string, 0, len(b.records))
	for n := range b.records {
		names = append(names, n)
	}
	slices.Sort(names)
	out := make([]*Record, 0, len(names))
	for _, n := range names {
		out = append(out, b.records[n])
	}
	return out
}
