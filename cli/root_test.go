package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42", "user")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(bad, "user")
		assert.Error(t, err, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("03/01/2025")
	assert.Error(t, err)
}

func TestMaybeDateStr(t *testing.T) {
	assert.Equal(t, "-", maybeDateStr(nil))

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", maybeDateStr(&d))
}

// Every screen of the system has a subcommand registered on the root.
func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"users", "publishers", "books", "copies", "librarians",
		"borrowings", "titles", "history", "seed",
	} {
		assert.True(t, names[want], want)
	}
}
