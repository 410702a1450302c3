package book_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

func newRecord(t *testing.T, name string, phones ...string) *book.Record {
	t.Helper()
	r, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r, err := book.NewRecord("John")
	require.NoError(t, err)
	assert.Equal(t, "John", r.Name())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)

	_, err = book.NewRecord("")
	assert.ErrorIs(t, err, book.ErrValidation)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecord(t, "John", "1112223333", "1112223333")
	assert.Equal(t, []string{"1112223333", "1112223333"}, r.PhoneNumbers(), "Duplicates are kept")

	err := r.AddPhone("123")
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.Len(t, r.Phones(), 2, "Invalid phone must not be appended")
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("Replaces existing phone", func(t *testing.T) {
		r := newRecord(t, "John", "1112223333", "5556667777")
		require.NoError(t, r.EditPhone("1112223333", "4445556666"))

		assert.Equal(t, []string{"5556667777", "4445556666"}, r.PhoneNumbers())
	})

	t.Run("Absent old phone", func(t *testing.T) {
		r := newRecord(t, "John", "1112223333")
		err := r.EditPhone("9999999999", "4445556666")

		require.Error(t, err)
		assert.ErrorIs(t, err, book.ErrNotFound)
		var nf *book.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, config.EntityPhone, nf.Kind)
		assert.Equal(t, "9999999999", nf.Key)
		assert.Equal(t, []string{"1112223333"}, r.PhoneNumbers(), "No mutation on failure")
	})

	t.Run("Invalid new phone", func(t *testing.T) {
		r := newRecord(t, "John", "1112223333")
		err := r.EditPhone("1112223333", "12ab")

		assert.ErrorIs(t, err, book.ErrValidation)
		assert.Equal(t, []string{"1112223333"}, r.PhoneNumbers(), "Old phone must survive a bad replacement")
	})

	t.Run("Only first match is replaced", func(t *testing.T) {
		r := newRecord(t, "John", "1112223333", "1112223333")
		require.NoError(t, r.EditPhone("1112223333", "4445556666"))

		assert.Equal(t, []string{"1112223333", "4445556666"}, r.PhoneNumbers())
	})
}

func TestRecord_FindAndRemovePhone(t *testing.T) {
	r := newRecord(t, "John", "1112223333", "5556667777")

	p, ok := r.FindPhone("5556667777")
	require.True(t, ok)
	assert.Equal(t, "5556667777", p.String())

	_, ok = r.FindPhone("0000000000")
	assert.False(t, ok)

	r.RemovePhone("0000000000")
	assert.Len(t, r.Phones(), 2, "Removing an absent phone is a no-op")

	r.RemovePhone("1112223333")
	assert.Equal(t, []string{"5556667777"}, r.PhoneNumbers())
}

func TestRecord_PhonesIsACopy(t *testing.T) {
	r := newRecord(t, "John", "1112223333")
	phones := r.Phones()
	phones[0] = book.Phone{}

	assert.Equal(t, []string{"1112223333"}, r.PhoneNumbers())
}

func TestRecord_AddBirthday(t *testing.T) {
	r := newRecord(t, "John")
	require.NoError(t, r.AddBirthday("01.02.1990"))
	require.NoError(t, r.AddBirthday("03.04.1991"))

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "03.04.1991", b.String(), "Re-adding replaces the birthday")

	assert.ErrorIs(t, r.AddBirthday("1991-04-03"), book.ErrValidation)
	b, _ = r.Birthday()
	assert.Equal(t, "03.04.1991", b.String())
}

func TestRecord_String(t *testing.T) {
	r := newRecord(t, "John", "1112223333", "5556667777")
	assert.Equal(t, "Contact name: John, phones: 1112223333; 5556667777", r.String())
}
