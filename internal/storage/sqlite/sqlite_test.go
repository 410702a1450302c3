package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), config.SQLiteFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func record(t *testing.T, name, birthday string, phones ...string) *book.Record {
	t.Helper()
	r, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	if birthday != "" {
		require.NoError(t, r.AddBirthday(birthday))
	}
	return r
}

func TestStore_EmptyDatabase(t *testing.T) {
	store := setupTestDB(t)

	b, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, b.Len())
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	b := book.New()
	b.AddRecord(record(t, "John", "29.02.2000", "5556667777", "1112223333", "5556667777"))
	b.AddRecord(record(t, "Jane", ""))
	require.NoError(t, store.Save(ctx, b))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	john, ok := loaded.Find("John")
	require.True(t, ok)
	assert.Equal(t, []string{"5556667777", "1112223333", "5556667777"}, john.PhoneNumbers(), "Phone order and duplicates survive")
	bday, ok := john.Birthday()
	require.True(t, ok)
	assert.Equal(t, "29.02.2000", bday.String())

	jane, ok := loaded.Find("Jane")
	require.True(t, ok)
	_, ok = jane.Birthday()
	assert.False(t, ok)
}

func TestStore_BirthdayWithoutYear(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	ann := record(t, "Ann", "", "1112223333")
	ann.SetBirthday(book.BirthdayWithoutYear(time.March, 15))
	b := book.New()
	b.AddRecord(ann)
	require.NoError(t, store.Save(ctx, b))

	var stored string
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT birthday FROM contacts WHERE name = ?`, "Ann").Scan(&stored))
	assert.Equal(t, "15.03", stored)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	r, ok := loaded.Find("Ann")
	require.True(t, ok)
	bday, ok := r.Birthday()
	require.True(t, ok)
	assert.False(t, bday.YearKnown())
	assert.Equal(t, "15.03", bday.String())
}

func TestStore_SaveReplacesPreviousState(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first := book.New()
	first.AddRecord(record(t, "John", "", "1112223333"))
	first.AddRecord(record(t, "Gone", "", "5556667777"))
	require.NoError(t, store.Save(ctx, first))

	second := book.New()
	second.AddRecord(record(t, "John", "", "4445556666"))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	john, _ := loaded.Find("John")
	assert.Equal(t, []string{"4445556666"}, john.PhoneNumbers())

	var orphans int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM phones WHERE contact_name = 'Gone'`).Scan(&orphans))
	assert.Zero(t, orphans, "Phones are removed with their contact")
}

func TestStore_RejectsInvalidRows(t *testing.T) {
	store := setupTestDB(t)
	_, err := store.db.Exec(`INSERT INTO contacts (name, birthday) VALUES ('John', '2000-01-01')`)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, book.ErrValidation)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	store := setupTestDB(t)
	assert.NoError(t, runMigrations(store.db))
}

func TestStore_SaveAfterCloseWrapsError(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), config.SQLiteFileName))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	err = store.Save(context.Background(), book.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrTxBegin)
}
