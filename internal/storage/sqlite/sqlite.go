// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps the address book in a SQLite database.
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath, creating parent directories and running
// migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	db, err := sql.Open(config.SQLiteDriver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreOpen, err)
	}

	// PRAGMA foreign_keys is per connection; a single connection keeps it in force.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(config.SQLitePragmaFK); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrEnableFK, err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrMigrations, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load rebuilds the address book from the contacts and phones tables.
// Rows go back through the validating constructors.
func (s *Store) Load(ctx context.Context) (*book.AddressBook, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, birthday FROM contacts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
	}
	defer rows.Close()

	b := book.New()
	for rows.Next() {
		var (
			name     string
			birthday sql.NullString
		)
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
		}

		r, err := book.NewRecord(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
		}
		if birthday.Valid {
			bday, err := book.ParseStoredBirthday(birthday.String)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
			}
			r.SetBirthday(bday)
		}
		b.AddRecord(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
	}

	if err := s.loadPhones(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) loadPhones(ctx context.Context, b *book.AddressBook) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT contact_name, number FROM phones ORDER BY contact_name, position`)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, number string
		if err := rows.Scan(&name, &number); err != nil {
			return fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
		}
		r, err := b.Get(name)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
		}
		if err := r.AddPhone(number); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
		}
	}
	return rows.Err()
}

// Save replaces the stored contents with b in a single transaction.
func (s *Store) Save(ctx context.Context, b *book.AddressBook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrTxBegin, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}

	for _, r := range b.Records() {
		var birthday sql.NullString
		if bday, ok := r.Birthday(); ok {
			birthday = sql.NullString{String: bday.String(), Valid: true}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (name, birthday) VALUES (?, ?)`,
			r.Name(), birthday,
		); err != nil {
			return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
		}

		for pos, number := range r.PhoneNumbers() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO phones (contact_name, position, number) VALUES (?, ?, ?)`,
				r.Name(), pos, number,
			); err != nil {
				return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrTxCommit, err)
	}
	return nil
}
