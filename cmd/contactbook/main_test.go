package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range []string{config.StoreJSON, config.StoreSQLite} {
		t.Run(kind, func(t *testing.T) {
			path := filepath.Join(dir, kind, "book")
			store, err := openStore(kind, path)
			require.NoError(t, err)
			defer func() { _ = store.Close() }()

			b := book.New()
			rec, err := book.NewRecord("John")
			require.NoError(t, err)
			require.NoError(t, rec.AddPhone("1112223333"))
			b.AddRecord(rec)

			require.NoError(t, store.Save(context.Background(), b))

			loaded, err := store.Load(context.Background())
			require.NoError(t, err)
			got, ok := loaded.Find("John")
			require.True(t, ok)
			assert.Equal(t, []string{"1112223333"}, got.PhoneNumbers())
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := openStore("csv", filepath.Join(dir, "book.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrStoreUnknown)
	})
}

func TestDefaultDataPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	jsonPath, err := defaultDataPath(config.StoreJSON)
	require.NoError(t, err)
	assert.Equal(t, config.JSONFileName, filepath.Base(jsonPath))
	assert.Equal(t, config.AppID, filepath.Base(filepath.Dir(jsonPath)))

	dbPath, err := defaultDataPath(config.StoreSQLite)
	require.NoError(t, err)
	assert.Equal(t, config.SQLiteFileName, filepath.Base(dbPath))
}
