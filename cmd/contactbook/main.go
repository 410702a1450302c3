package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/storage"
	"github.com/tartampluch/go-contactbook/internal/storage/jsonfile"
	"github.com/tartampluch/go-contactbook/internal/storage/sqlite"
	"github.com/tartampluch/go-contactbook/internal/ui"
	"github.com/tartampluch/go-contactbook/pkg/logging"
)

// options holds the parsed command line.
type options struct {
	dataPath string
	store    string
	lang     string
	horizon  int
}

// main delegates to runMain so deferred calls (closing the log file, the
// store) run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var opts options
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.StringVar(&opts.dataPath, config.FlagData, "", config.FlagDescData)
	flag.StringVar(&opts.store, config.FlagStore, config.DefaultStore, config.FlagDescStore)
	flag.StringVar(&opts.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flag.IntVar(&opts.horizon, config.FlagHorizon, config.DefaultHorizonDays, config.FlagDescHorizon)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	if logCloser := logging.Setup(*debugMode); logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run opens the store, loads the book and drives the session on stdin/stdout.
func run(ctx context.Context, opts options) error {
	path := opts.dataPath
	if path == "" {
		p, err := defaultDataPath(opts.store)
		if err != nil {
			return err
		}
		path = p
	}

	store, err := openStore(opts.store, path)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	slog.Info(config.MsgStoreOpen,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyStore, opts.store,
		config.LogKeyPath, path,
	)
	b := storage.LoadOrEmpty(ctx, store)

	session := ui.NewSession(b, store, ui.NewTranslator(opts.lang), os.Stdin, os.Stdout)
	if opts.horizon >= 0 {
		session.Horizon = opts.horizon
	}
	return session.Run(ctx)
}

// openStore builds the storage backend named by kind.
func openStore(kind, path string) (storage.Store, error) {
	switch kind {
	case config.StoreJSON:
		s, err := jsonfile.New(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreSQLite:
		s, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrStoreUnknown, kind)
	}
}

// defaultDataPath places the address book in the user config directory.
func defaultDataPath(kind string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}

	name := config.JSONFileName
	if kind == config.StoreSQLite {
		name = config.SQLiteFileName
	}
	return filepath.Join(configDir, config.AppID, name), nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
