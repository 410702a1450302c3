package book

import (
	"cmp"
	"slices"
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
)

const hoursPerDay = 24

// UpcomingBirthday is one entry of the upcoming-birthdays report.
type UpcomingBirthday struct {
	Name string
	// Date is the congratulation date: the birthday, rolled forward to Monday
	// when it falls on a weekend.
	Date time.Time
}

// CongratulationDate returns Date formatted as YYYY.MM.DD.
func (u UpcomingBirthday) CongratulationDate() string {
	return u.Date.Format(config.DateFormatCongrats)
}

// UpcomingBirthdays lists the records whose next birthday falls within
// horizonDays of today (both ends inclusive). The window test uses the real
// birthday; the reported date is the weekend-adjusted one. Results are sorted
// by date, then name.
func (b *AddressBook) UpcomingBirthdays(horizonDays int, today time.Time) []UpcomingBirthday {
	start := dateOf(today)
	var upcoming []UpcomingBirthday

	for _, r := range b.records {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := NextOccurrence(bday, start)
		delta := daysBetween(start, next)
		if delta < 0 || delta > horizonDays {
			continue
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name: r.Name(),
			Date: CongratulationDate(next),
		})
	}

	slices.SortFunc(upcoming, func(a, b UpcomingBirthday) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return upcoming
}

// NextOccurrence projects the birthday's month and day onto the year of today,
// or onto the following year when that date has already passed. A birthday
// that is today counts as upcoming.
//
// Feb 29 in a non-leap year becomes Mar 1 (time.Date normalisation).
func NextOccurrence(b Birthday, today time.Time) time.Time {
	start := dateOf(today)
	candidate := time.Date(start.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(start) {
		candidate = time.Date(start.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// CongratulationDate moves a Saturday or Sunday forward to the next Monday.
// Weekdays are returned unchanged.
func CongratulationDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / hoursPerDay)
}
