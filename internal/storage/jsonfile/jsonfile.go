// Package jsonfile stores the address book as a single JSON snapshot file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// New creates a Store for path, creating its parent directory.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return &Store{path: path}, nil
}

// Load reads the snapshot. A missing file yields an empty book.
func (s *Store) Load(ctx context.Context) (*book.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
	}

	b := book.New()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	return b, nil
}

// Save writes the snapshot to a temporary file and renames it over the old
// one, so a crash mid-write leaves the previous snapshot intact.
func (s *Store) Save(ctx context.Context, b *book.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, config.JSONIndentPrefix, config.JSONIndentPadding)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *Store) Close() error {
	return nil
}
