package library

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end pass over the façade: catalog setup, one full borrow/return
// cycle, and the delete guard firing along the way.
func TestLibraryLifecycle(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	lib, err := NewLibrary(filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })

	penguin, err := lib.CreatePublisher(&Publisher{
		Name: "Penguin Books", Address: "375 Hudson Street, New York, NY", Phone: "(212) 366-2000"})
	require.NoError(t, err)

	book := &Book{Title: "1984", Author: "George Orwell", PublicationYear: 1949, ISBN: "123456789"}
	book.SetPublisher(penguin)
	_, err = lib.CreateBook(book)
	require.NoError(t, err)

	_, err = lib.CreateCopy(&Copy{BookID: book.ID})
	require.NoError(t, err)
	_, err = lib.CreateCopy(&Copy{BookID: book.ID})
	require.NoError(t, err)

	available, err := lib.AvailableCopies(book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, available)

	alice, err := lib.CreateUser(&User{
		Name: "Alice", Email: "alice@example.com", Phone: "123-456", Address: "123 Main St"})
	require.NoError(t, err)

	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	borrowing, err := lib.BeginBorrowing(alice.ID, book.ID, today)
	require.NoError(t, err)
	assert.True(t, borrowing.Open())

	available, err = lib.AvailableCopies(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, available)

	// The book cannot be deleted while copies exist.
	err = lib.DeleteBook(book.ID)
	assert.True(t, IsConflict(err))

	settled, err := lib.SettleBorrowing(borrowing.ID, today)
	require.NoError(t, err)
	require.NotNil(t, settled.ReturnDate)
	assert.True(t, settled.ReturnDate.Equal(today))

	available, err = lib.AvailableCopies(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}
