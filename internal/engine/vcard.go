package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// ImportStats summarizes a vCard import.
type ImportStats struct {
	Processed int // cards decoded
	Imported  int // new contacts
	Merged    int // cards merged into an existing contact
	Skipped   int // cards without a usable name
}

// ImportVCards reads every card from r into b.
// A new name creates a contact. A known name gets the phones it does not
// already have, and the birthday when it has none. Phones that do not reduce
// to ten digits and unparsable birthdays are skipped, not fatal.
func ImportVCards(ctx context.Context, r io.Reader, b *book.AddressBook) (ImportStats, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	decoder := vcard.NewDecoder(r)

	var stats ImportStats
	decodeErrors := 0

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			decodeErrors++
			if decodeErrors > config.MaxDecodeErrors || errors.Is(err, io.ErrUnexpectedEOF) {
				return stats, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
			}
			continue
		}
		stats.Processed++

		name := cardName(card)
		if name == "" {
			log.Debug(config.MsgSkippedName)
			stats.Skipped++
			continue
		}

		rec, exists := b.Find(name)
		if !exists {
			// The name is non-empty, so this cannot fail.
			rec, _ = book.NewRecord(name)
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			phone := normalizePhone(tel)
			if _, dup := rec.FindPhone(phone); dup {
				continue
			}
			if err := rec.AddPhone(phone); err != nil {
				log.Debug(config.MsgSkippedPhone, config.LogKeyName, name, config.LogKeyValue, tel)
			}
		}

		if _, has := rec.Birthday(); !has {
			if bday := card.Get(vcard.FieldBirthday); bday != nil && bday.Value != "" {
				if t, yearKnown, err := parseDate(bday.Value); err == nil {
					if yearKnown {
						rec.SetBirthday(book.BirthdayFromDate(t))
					} else {
						rec.SetBirthday(book.BirthdayWithoutYear(t.Month(), t.Day()))
					}
				} else {
					log.Debug(config.MsgSkippedDate, config.LogKeyName, name, config.LogKeyValue, bday.Value)
				}
			}
		}

		if exists {
			stats.Merged++
		} else {
			b.AddRecord(rec)
			stats.Imported++
		}
	}

	log.Info(config.MsgImportDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyProcessed, stats.Processed),
			slog.Int(config.LogKeyImported, stats.Imported),
			slog.Int(config.LogKeyMerged, stats.Merged),
			slog.Int(config.LogKeySkipped, stats.Skipped),
		),
	)
	return stats, nil
}

// ExportVCards writes one vCard 4.0 per contact, in name order, and returns
// how many were written.
func ExportVCards(ctx context.Context, w io.Writer, b *book.AddressBook) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for _, r := range b.Records() {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, r.Name())
		card.SetName(&vcard.Name{GivenName: r.Name()})
		for _, p := range r.PhoneNumbers() {
			card.Add(vcard.FieldTelephone, &vcard.Field{
				Value:  p,
				Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
			})
		}
		if bday, ok := r.Birthday(); ok {
			layout := config.DateFormatFullBasic
			if !bday.YearKnown() {
				layout = config.DateFormatNoYearB
			}
			card.SetValue(vcard.FieldBirthday, bday.Date().Format(layout))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return count, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
	)
	return count, nil
}

// cardName applies the strategy FN (Formatted) > N (Structured).
func cardName(card vcard.Card) string {
	if fn := card.Get(vcard.FieldFormattedName); fn != nil && strings.TrimSpace(fn.Value) != "" {
		return strings.TrimSpace(fn.Value)
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join(strings.Fields(n.GivenName+" "+n.FamilyName), " "))
	}
	return ""
}

// normalizePhone keeps the digits of a TEL value ("(050) 123-45-67" -> "0501234567").
func normalizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
}

// parseDate handles the vCard BDAY formats. yearKnown is false for truncated
// dates such as --03-15.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (year unknown): anchor on a leap year so --02-29 survives.
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
