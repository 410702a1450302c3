package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/engine"
)

func (s *Session) hello(_ context.Context, _ []string) string {
	return s.T.Msg(config.TKeyHello, nil)
}

func (s *Session) help(_ context.Context, _ []string) string {
	return s.T.Msg(config.TKeyHelp, nil)
}

// addContact appends the phone to an existing contact or creates a new one.
func (s *Session) addContact(_ context.Context, args []string) string {
	if len(args) != 2 {
		if len(args) == 1 {
			return s.T.Msg(config.TKeyArgsPhone, nil)
		}
		return s.T.Msg(config.TKeyArgsNamePhone, nil)
	}
	name, phone := args[0], args[1]

	if _, ok := s.Book.Find(name); ok {
		if err := s.Book.Update(name, phone, ""); err != nil {
			return s.describe(err, name)
		}
		return s.T.Msg(config.TKeyContactUpdated, map[string]any{"Name": name})
	}

	rec, err := book.NewRecord(name)
	if err != nil {
		return s.describe(err, name)
	}
	if err := rec.AddPhone(phone); err != nil {
		return s.describe(err, name)
	}
	s.Book.AddRecord(rec)
	return s.T.Msg(config.TKeyContactAdded, map[string]any{"Name": name})
}

func (s *Session) changeContact(_ context.Context, args []string) string {
	if len(args) != 3 {
		switch len(args) {
		case 2:
			return s.T.Msg(config.TKeyArgsNewPhone, nil)
		case 1:
			return s.T.Msg(config.TKeyArgsOldNewPhone, nil)
		default:
			return s.T.Msg(config.TKeyArgsNameTwoPhone, nil)
		}
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, err := s.Book.Get(name)
	if err != nil {
		return s.describe(err, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return s.describe(err, name)
	}
	return s.T.Msg(config.TKeyPhoneChanged, map[string]any{"Old": oldPhone, "New": newPhone})
}

func (s *Session) findContact(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsName, nil)
	}
	rec, err := s.Book.Get(args[0])
	if err != nil {
		return s.describe(err, args[0])
	}
	return formatContact(rec)
}

func (s *Session) showAll(_ context.Context, _ []string) string {
	if s.Book.Len() == 0 {
		return s.T.Msg(config.TKeyAllEmpty, nil)
	}
	lines := []string{s.T.Msg(config.TKeyAllHeader, nil)}
	for _, rec := range s.Book.Records() {
		lines = append(lines, formatContact(rec))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) addBirthday(_ context.Context, args []string) string {
	if len(args) < 2 {
		return s.T.Msg(config.TKeyArgsMissing, nil)
	}
	name, birthday := args[0], args[1]

	rec, err := s.Book.Get(name)
	if err != nil {
		return s.describe(err, name)
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return s.describe(err, name)
	}
	return s.T.Msg(config.TKeyBirthdayAdded, map[string]any{"Name": name, "Birthday": birthday})
}

func (s *Session) showBirthday(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsMissing, nil)
	}
	name := args[0]

	rec, err := s.Book.Get(name)
	if err != nil {
		return s.describe(err, name)
	}
	bday, ok := rec.Birthday()
	if !ok {
		return s.T.Msg(config.TKeyBirthdayNone, map[string]any{"Name": name})
	}
	return s.T.Msg(config.TKeyBirthdayShow, map[string]any{"Name": name, "Birthday": bday.String()})
}

// birthdays lists congratulation dates within the session horizon, or within
// the number of days given as the first argument.
func (s *Session) birthdays(_ context.Context, args []string) string {
	days := s.Horizon
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return s.T.Msg(config.TKeyArgsDays, nil)
		}
		days = n
	}

	upcoming := s.Book.UpcomingBirthdays(days, s.Clock.Now())
	if len(upcoming) == 0 {
		return s.T.Plural(config.TKeyUpcomingNone, days, map[string]any{"Days": days})
	}

	lines := []string{s.T.Plural(config.TKeyUpcomingHeader, days, map[string]any{"Days": days})}
	for _, u := range upcoming {
		lines = append(lines, fmt.Sprintf(config.FormatUpcomingLine, u.Name, u.CongratulationDate()))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) deleteContact(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsName, nil)
	}
	name := args[0]
	if _, err := s.Book.Get(name); err != nil {
		return s.describe(err, name)
	}
	s.Book.Delete(name)
	return s.T.Msg(config.TKeyContactDeleted, map[string]any{"Name": name})
}

func (s *Session) removePhone(_ context.Context, args []string) string {
	if len(args) < 2 {
		return s.T.Msg(config.TKeyArgsNamePhone, nil)
	}
	name, phone := args[0], args[1]

	rec, err := s.Book.Get(name)
	if err != nil {
		return s.describe(err, name)
	}
	if _, ok := rec.FindPhone(phone); !ok {
		return s.describe(&book.NotFoundError{Kind: config.EntityPhone, Key: phone}, name)
	}
	rec.RemovePhone(phone)
	return s.T.Msg(config.TKeyPhoneRemoved, map[string]any{"Name": name, "Phone": phone})
}

func (s *Session) importVCF(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsPath, nil)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return s.describe(fmt.Errorf("%s: %w", config.ErrFileOpen, err), "")
	}
	defer func() { _ = f.Close() }()

	stats, err := engine.ImportVCards(ctx, f, s.Book)
	if err != nil {
		return s.describe(err, "")
	}
	return s.T.Msg(config.TKeyImportDone, map[string]any{
		"Imported": stats.Imported,
		"Merged":   stats.Merged,
		"Skipped":  stats.Skipped,
	})
}

func (s *Session) exportVCF(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsPath, nil)
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return s.describe(fmt.Errorf("%s: %w", config.ErrFileOpen, err), "")
	}

	count, err := engine.ExportVCards(ctx, f, s.Book)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return s.describe(err, "")
	}
	return s.T.Msg(config.TKeyExportVCFDone, map[string]any{"Count": count, "Path": path})
}

func (s *Session) exportICS(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return s.T.Msg(config.TKeyArgsPath, nil)
	}
	path := args[0]

	gen := &engine.CalendarGenerator{
		Clock: s.Clock,
		FormatSummary: func(name string, age int, yearKnown bool) string {
			if !yearKnown {
				return s.T.Msg(config.TKeyEvtSummary, map[string]any{"Name": name})
			}
			return s.T.Msg(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
		},
	}
	data, count, err := gen.Generate(ctx, s.Book, config.ICalTrigger)
	if err != nil {
		return s.describe(err, "")
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return s.describe(err, "")
	}
	return s.T.Msg(config.TKeyExportICSDone, map[string]any{"Count": count, "Path": path})
}

// describe turns a core error into the localized message for the user. name
// is the contact the command was about, used when a phone is missing.
func (s *Session) describe(err error, name string) string {
	var (
		vErr  *book.ValidationError
		nfErr *book.NotFoundError
	)

	switch {
	case errors.As(err, &vErr):
		key := config.TKeyErrName
		switch vErr.Field {
		case config.FieldPhone:
			key = config.TKeyErrPhone
		case config.FieldBirthday:
			key = config.TKeyErrBirthday
		}
		return s.T.Msg(key, map[string]any{"Value": vErr.Value})

	case errors.As(err, &nfErr):
		if nfErr.Kind == config.EntityPhone {
			return s.T.Msg(config.TKeyPhoneNotFound, map[string]any{"Name": name, "Phone": nfErr.Key})
		}
		return s.T.Msg(config.TKeyContactNotFound, map[string]any{"Name": nfErr.Key})

	default:
		slog.Error(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		return s.T.Msg(config.TKeyOperationFailed, map[string]any{"Error": err.Error()})
	}
}

// formatContact renders "name: phone, phone".
func formatContact(rec *book.Record) string {
	return fmt.Sprintf(config.FormatContactLine, rec.Name(), strings.Join(rec.PhoneNumbers(), config.PhoneSeparator))
}
