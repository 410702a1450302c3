// Package storage defines how the address book is persisted between sessions.
package storage

import (
	"context"
	"log/slog"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Store persists a whole AddressBook as a unit.
// This abstraction allows swapping storage backends (JSON file, SQLite)
// without changing the session layer.
type Store interface {
	// Load returns the saved address book, or an empty one when nothing was
	// saved yet.
	Load(ctx context.Context) (*book.AddressBook, error)

	// Save replaces the saved state with b.
	Save(ctx context.Context, b *book.AddressBook) error

	// Close releases any resources held by the store.
	Close() error
}

// LoadOrEmpty loads from s and falls back to an empty book when the stored
// data is unreadable, so a corrupt file never prevents a session from starting.
func LoadOrEmpty(ctx context.Context, s Store) *book.AddressBook {
	b, err := s.Load(ctx)
	if err != nil {
		slog.Warn(config.MsgBookFresh,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyError, err,
		)
		return book.New()
	}

	slog.Info(config.MsgBookLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyCount, b.Len(),
	)
	return b
}
