package engine_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// 2024-01-10 is a Wednesday.
var wednesday = time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

func addContact(t *testing.T, b *book.AddressBook, name, birthday string, phones ...string) {
	t.Helper()
	r, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	if birthday != "" {
		require.NoError(t, r.AddBirthday(birthday))
	}
	b.AddRecord(r)
}

func decodeEvents(t *testing.T, data []byte) []ical.Event {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal.Events()
}

func TestGenerate_ThreeYearsOnCongratulationDates(t *testing.T) {
	b := book.New()
	addContact(t, b, "John", "13.01.1990")
	addContact(t, b, "No Birthday", "", "1112223333")

	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: wednesday}}
	data, count, err := gen.Generate(context.Background(), b, "")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Congratulate John (34)")
	assert.Contains(t, ics, "20230113", "2023-01-13 is a Friday")
	assert.Contains(t, ics, "20240115", "2024-01-13 is a Saturday, moved to Monday")
	assert.Contains(t, ics, "20250113", "2025-01-13 is a Monday")
	assert.NotContains(t, ics, "BEGIN:VALARM")

	events := decodeEvents(t, data)
	assert.Len(t, events, 3)
}

func TestGenerate_SkipsYearsBeforeBirth(t *testing.T) {
	b := book.New()
	addContact(t, b, "Baby", "05.01.2024")

	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: wednesday}}
	data, count, err := gen.Generate(context.Background(), b, "")
	require.NoError(t, err)

	assert.Equal(t, 2, count, "Only 2024 and 2025")
	assert.Contains(t, string(data), "SUMMARY:Congratulate Baby (0)")
}

func TestGenerate_EmptyBook(t *testing.T) {
	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: wednesday}}
	data, count, err := gen.Generate(context.Background(), book.New(), "")

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestGenerate_ReminderAndLocalizedSummary(t *testing.T) {
	b := book.New()
	addContact(t, b, "Marie", "20.03.1980")

	gen := &engine.CalendarGenerator{
		Clock: MockClock{CurrentTime: wednesday},
		FormatSummary: func(name string, age int, yearKnown bool) string {
			assert.True(t, yearKnown)
			return fmt.Sprintf("Anniversaire de %s (%d ans)", name, age)
		},
	}
	data, _, err := gen.Generate(context.Background(), b, config.ICalTrigger)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "Anniversaire de Marie (44 ans)")
	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VALARM"))
	assert.Contains(t, ics, "TRIGGER:"+config.ICalTrigger)
}

func TestGenerate_StableUIDs(t *testing.T) {
	b := book.New()
	addContact(t, b, "John", "13.01.1990")
	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: wednesday}}

	first, _, err := gen.Generate(context.Background(), b, "")
	require.NoError(t, err)
	second, _, err := gen.Generate(context.Background(), b, "")
	require.NoError(t, err)

	uids := func(data []byte) []string {
		var out []string
		for _, e := range decodeEvents(t, data) {
			uid, err := e.Props.Text(config.PropUID)
			require.NoError(t, err)
			out = append(out, uid)
		}
		return out
	}
	assert.Equal(t, uids(first), uids(second))
}

func TestGenerate_ContextCancelled(t *testing.T) {
	b := book.New()
	addContact(t, b, "John", "13.01.1990")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: wednesday}}
	_, _, err := gen.Generate(ctx, b, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_BirthdayWithoutYear(t *testing.T) {
	b := book.New()
	r, err := book.NewRecord("Ann")
	require.NoError(t, err)
	r.SetBirthday(book.BirthdayWithoutYear(time.March, 15))
	b.AddRecord(r)

	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Fallback", func(t *testing.T) {
		gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: now}}
		data, count, err := gen.Generate(context.Background(), b, "")
		require.NoError(t, err)
		assert.Equal(t, 3, count, "Every year is generated when the birth year is unknown")

		for _, e := range decodeEvents(t, data) {
			summary, err := e.Props.Text(config.PropSummary)
			require.NoError(t, err)
			assert.Equal(t, "Congratulate Ann", summary, "No age is derived from an unknown year")
		}
	})

	t.Run("Localized", func(t *testing.T) {
		var seen []bool
		gen := &engine.CalendarGenerator{
			Clock: MockClock{CurrentTime: now},
			FormatSummary: func(name string, age int, yearKnown bool) string {
				seen = append(seen, yearKnown)
				assert.Zero(t, age)
				return "Souhaiter l'anniversaire de " + name
			},
		}
		_, _, err := gen.Generate(context.Background(), b, "")
		require.NoError(t, err)
		assert.Equal(t, []bool{false, false, false}, seen)
	})
}
