package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// CalendarGenerator renders the congratulation dates of an address book as an
// iCalendar feed.
type CalendarGenerator struct {
	Clock Clock

	// FormatSummary allows the UI to inject localized strings into the logic layer.
	// age is meaningless when yearKnown is false.
	FormatSummary func(name string, age int, yearKnown bool) string
}

// Generate returns the encoded calendar and the number of events it holds.
// Each contact with a birthday gets one event per year for the previous,
// current and next year, dated on the weekend-adjusted congratulation date.
// When reminderTrigger is not empty a DISPLAY alarm is attached to every event.
func (g *CalendarGenerator) Generate(ctx context.Context, b *book.AddressBook, reminderTrigger string) ([]byte, int, error) {
	start := time.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, r := range b.Records() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		for _, e := range g.createEvents(r.Name(), bday, reminderTrigger, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	count := len(cal.Children)
	if count == 0 {
		// Use the constant stub so clients never flag an empty feed as invalid.
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyEvents, count,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), count, nil
}

// createEvents builds the events for one contact. Years before the birth year
// are skipped; a birthday without a year gets every year and no age.
func (g *CalendarGenerator) createEvents(name string, bday book.Birthday, reminderTrigger string, now time.Time) []*ical.Event {
	currentYear := now.Year()
	birthYear := bday.Date().Year()
	yearKnown := bday.YearKnown()
	uidBase := eventUIDBase(name, bday)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if yearKnown && y < birthYear {
			continue
		}

		age := 0
		summary := fmt.Sprintf(config.FallbackSummary, name)
		if yearKnown {
			age = y - birthYear
			summary = fmt.Sprintf(config.FallbackSummaryAge, name, age)
		}
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age, yearKnown)
		}

		anniversary := time.Date(y, bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropDescription, fmt.Sprintf(config.FormatBornOn, bday))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(book.CongratulationDate(anniversary))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events
}

// eventUIDBase is stable across exports so calendar clients update events in place.
func eventUIDBase(name string, bday book.Birthday) string {
	input := fmt.Sprintf(config.FormatHashInput, name, bday, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the value directly to avoid a VALUE=TEXT parameter on TRIGGER.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
