package book

import (
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Name identifies a contact and is the key of the AddressBook.
type Name struct {
	value string
}

// NewName validates raw as a contact name. Any non-empty string is accepted.
func NewName(raw string) (Name, error) {
	if len(raw) == 0 {
		return Name{}, &ValidationError{Field: config.FieldName, Value: raw, Reason: config.ErrNameRequired}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a number made of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates raw as a ten digit phone number.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneLength || !isDigits(raw) {
		return Phone{}, &ValidationError{Field: config.FieldPhone, Value: raw, Reason: config.ErrPhoneFormat}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Birthday is a calendar date. The full date is retained but only the month and
// day take part in the yearly recurrence. Imported contacts may carry a
// birthday without a year; such a date is anchored on a leap year so Feb 29
// stays valid, and the anchor year is never shown or used for ages.
type Birthday struct {
	date      time.Time
	yearKnown bool
}

// NewBirthday parses raw in the DD.MM.YYYY convention.
// The year must have four digits and the date must exist (31.02.2000 is rejected).
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatInput, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: config.FieldBirthday, Value: raw, Reason: config.ErrBirthdayFormat}
	}
	return Birthday{date: t, yearKnown: true}, nil
}

// ParseStoredBirthday accepts what String produces: DD.MM.YYYY, or DD.MM for
// a birthday whose year is unknown.
func ParseStoredBirthday(raw string) (Birthday, error) {
	if b, err := NewBirthday(raw); err == nil {
		return b, nil
	}
	t, err := time.Parse(config.DateFormatInputNoYear, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: config.FieldBirthday, Value: raw, Reason: config.ErrBirthdayFormat}
	}
	return BirthdayWithoutYear(t.Month(), t.Day()), nil
}

// BirthdayFromDate builds a Birthday from the calendar date of t.
func BirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: dateOf(t), yearKnown: true}
}

// BirthdayWithoutYear builds a Birthday known only by month and day.
func BirthdayWithoutYear(month time.Month, day int) Birthday {
	return Birthday{date: time.Date(config.DefaultLeapYear, month, day, 0, 0, 0, 0, time.UTC)}
}

// Date returns the stored date at midnight UTC. Its year is meaningless
// when YearKnown is false.
func (b Birthday) Date() time.Time {
	return b.date
}

// YearKnown reports whether the birth year is real.
func (b Birthday) YearKnown() bool {
	return b.yearKnown
}

func (b Birthday) Month() time.Month {
	return b.date.Month()
}

func (b Birthday) Day() int {
	return b.date.Day()
}

// String renders the birthday as DD.MM.YYYY, the same convention NewBirthday
// parses, or as DD.MM when the year is unknown.
func (b Birthday) String() string {
	if !b.yearKnown {
		return b.date.Format(config.DateFormatBirthdayNoYear)
	}
	return b.date.Format(config.DateFormatBirthday)
}

// dateOf truncates t to its calendar date, expressed at midnight UTC so that
// day arithmetic is never affected by DST transitions.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
