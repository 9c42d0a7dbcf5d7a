package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTitles(t *testing.T) {
	s := testStore(t)
	user := mustUser(t, s, "alice")

	withCopies := mustBook(t, s, "1984", "123456789")
	mustCopy(t, s, withCopies.ID)
	mustCopy(t, s, withCopies.ID)

	mustBook(t, s, "Brave New World", "987654321") // no copies at all

	allBorrowed := mustBook(t, s, "Animal Farm", "555555555")
	mustCopy(t, s, allBorrowed.ID)
	_, err := s.BeginBorrowing(user.ID, allBorrowed.ID, time.Now())
	require.NoError(t, err)

	titles, err := s.AvailableTitles()
	require.NoError(t, err)

	// One row per title even with several available copies.
	require.Len(t, titles, 1)
	assert.Equal(t, withCopies.ID, titles[0].ID)
	assert.Equal(t, "1984", titles[0].Title)
}

func TestAllTitlesWithCopies(t *testing.T) {
	s := testStore(t)

	first := mustBook(t, s, "1984", "123456789")
	c1 := mustCopy(t, s, first.ID)
	c2 := mustCopy(t, s, first.ID)

	bare := mustBook(t, s, "Brave New World", "987654321")

	books, err := s.AllTitlesWithCopies()
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, first.ID, books[0].ID)
	require.Len(t, books[0].Copies, 2)
	assert.Equal(t, c1.ID, books[0].Copies[0].ID)
	assert.Equal(t, c2.ID, books[0].Copies[1].ID)

	assert.Equal(t, bare.ID, books[1].ID)
	assert.Empty(t, books[1].Copies)
}

func TestAvailableCopiesCount(t *testing.T) {
	s := testStore(t)
	book := mustBook(t, s, "1984", "123456789")

	n, err := s.AvailableCopies(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	mustCopy(t, s, book.ID)
	mustCopy(t, s, book.ID)

	n, err = s.AvailableCopies(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
