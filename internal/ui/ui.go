package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/engine"
	"github.com/tartampluch/go-contactbook/internal/storage"
)

// handlerFunc runs one command and returns the text shown to the user.
type handlerFunc func(ctx context.Context, args []string) string

// Session is the text command loop around one AddressBook.
// It owns the book for its whole lifetime and writes it back to Store when
// the user quits, the input ends or the context is cancelled.
type Session struct {
	Book    *book.AddressBook
	Store   storage.Store
	Clock   engine.Clock // Injected clock for testability
	T       *Translator
	Horizon int // default window of the birthdays command, in days

	in       io.Reader
	out      io.Writer
	commands map[string]handlerFunc
}

// NewSession wires a session reading commands from in and replying on out.
func NewSession(b *book.AddressBook, store storage.Store, tr *Translator, in io.Reader, out io.Writer) *Session {
	s := &Session{
		Book:    b,
		Store:   store,
		Clock:   engine.RealClock{}, // Default to real clock in production
		T:       tr,
		Horizon: config.DefaultHorizonDays,
		in:      in,
		out:     out,
	}
	s.commands = map[string]handlerFunc{
		config.CmdHello:        s.hello,
		config.CmdHelp:         s.help,
		config.CmdAdd:          s.addContact,
		config.CmdChange:       s.changeContact,
		config.CmdPhone:        s.findContact,
		config.CmdAll:          s.showAll,
		config.CmdAddBirthday:  s.addBirthday,
		config.CmdShowBirthday: s.showBirthday,
		config.CmdBirthdays:    s.birthdays,
		config.CmdDelete:       s.deleteContact,
		config.CmdRemovePhone:  s.removePhone,
		config.CmdImportVCF:    s.importVCF,
		config.CmdExportVCF:    s.exportVCF,
		config.CmdExportICS:    s.exportICS,
	}
	return s
}

// Run greets the user and processes commands until close/exit, end of input
// or cancellation of ctx. The book is saved in every case; the returned
// error is the save (or read) failure, if any.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, config.ChannelBufferSize)
	go s.readLines(done, lines, readErr)

	s.println(s.T.Msg(config.TKeyWelcome, nil))

	for {
		s.print(s.T.Msg(config.TKeyPrompt, nil))

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			s.println("")
			return s.save(context.WithoutCancel(ctx))

		case err := <-readErr:
			s.println("")
			if err != nil {
				slog.Error(config.ErrReadInput,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err,
				)
				err = fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			return errors.Join(err, s.save(ctx))

		case line := <-lines:
			reply, quit := s.Execute(ctx, line)
			if reply != "" {
				s.println(reply)
			}
			if quit {
				return s.save(ctx)
			}
		}
	}
}

// Execute runs a single command line. quit reports a close/exit command.
func (s *Session) Execute(ctx context.Context, line string) (reply string, quit bool) {
	cmd, args := parseInput(line)
	if cmd == "" {
		return "", false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)

	if cmd == config.CmdClose || cmd == config.CmdExit {
		return s.T.Msg(config.TKeyGoodbye, nil), true
	}

	handler, ok := s.commands[cmd]
	if !ok {
		return s.T.Msg(config.TKeyInvalidCommand, nil), false
	}
	return handler(ctx, args), false
}

// readLines feeds lines to the loop until EOF, then reports the scanner error
// (nil at a clean EOF).
func (s *Session) readLines(done <-chan struct{}, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
	readErr <- scanner.Err()
}

func (s *Session) save(ctx context.Context) error {
	if err := s.Store.Save(ctx, s.Book); err != nil {
		slog.Error(config.ErrStoreSave,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		s.println(s.T.Msg(config.TKeySaveFailed, map[string]any{"Error": err.Error()}))
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, s.Book.Len(),
	)
	return nil
}

func (s *Session) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

// parseInput splits a line on whitespace and lower-cases the command word.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
