// Package logging configures the default slog logger.
//
// A normal session writes JSON records to a log file in the user cache
// directory, leaving the terminal to the command loop. Debug mode switches to
// colored records on stderr via tint.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info, or debug with --debug)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Setup installs the default logger and returns the log file to close, or nil.
func Setup(debugMode bool) io.Closer {
	level := LevelFromEnv(debugMode)

	if debugMode {
		slog.SetDefault(slog.New(NewConsoleHandler(os.Stderr, level)))
		return nil
	}

	logPath, err := LogFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, "", err)
		slog.SetDefault(slog.New(NewFileHandler(os.Stderr, slog.LevelWarn)))
		return nil
	}

	// O_TRUNC resets logs on restart to prevent indefinite growth.
	f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		slog.SetDefault(slog.New(NewFileHandler(os.Stderr, slog.LevelWarn)))
		return nil
	}

	slog.SetDefault(slog.New(NewFileHandler(f, level)))
	return f
}

// NewConsoleHandler returns a colored handler for interactive debugging.
func NewConsoleHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// NewFileHandler returns the JSON handler used for the log file.
func NewFileHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// LevelFromEnv reads LOG_LEVEL. Without it, debugMode selects Debug and
// Info is used otherwise.
func LevelFromEnv(debugMode bool) slog.Level {
	fallback := slog.LevelInfo
	if debugMode {
		fallback = slog.LevelDebug
	}
	return ParseLevel(os.Getenv(config.EnvLogLevel), fallback)
}

// ParseLevel maps a level name to a slog.Level, returning fallback for
// empty or unknown names.
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// LogFilePath determines the platform-specific cache directory for logs.
func LogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
