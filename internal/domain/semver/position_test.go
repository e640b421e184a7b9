package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParsePosition verifies parsing of "all" and decimal occurrence indexes.
func TestParsePosition(t *testing.T) {
	t.Parallel()

	p, err := ParsePosition("all")
	require.NoError(t, err)
	require.True(t, p.IsAll())

	p, err = ParsePosition(" ALL ")
	require.NoError(t, err)
	require.True(t, p.IsAll())

	p, err = ParsePosition("0")
	require.NoError(t, err)
	require.False(t, p.IsAll())
	require.Equal(t, Nth(0), p)

	p, err = ParsePosition("7")
	require.NoError(t, err)
	require.Equal(t, Nth(7), p)
}

// TestParsePositionInvalid verifies rejection of inputs that are neither "all" nor an index.
func TestParsePositionInvalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "x", "-1", "1.5", "first", "4294967296"} {
		_, err := ParsePosition(s)
		require.ErrorIs(t, err, ErrInvalidPosition, s)
	}
}

// TestPositionMatches verifies occurrence selection for both policy forms.
func TestPositionMatches(t *testing.T) {
	t.Parallel()

	all := All()
	for _, index := range []uint32{0, 1, 7, 4294967295} {
		require.True(t, all.Matches(index))
	}

	nth := Nth(2)
	require.False(t, nth.Matches(0))
	require.False(t, nth.Matches(1))
	require.True(t, nth.Matches(2))
	require.False(t, nth.Matches(3))
}

// TestPositionString verifies the textual form used in logs and configuration.
func TestPositionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "all", All().String())
	require.Equal(t, "0", Position{}.String())
	require.Equal(t, "3", Nth(3).String())
}
