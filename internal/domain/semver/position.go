package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPosition is returned when a string is neither "all" nor a decimal occurrence index.
var ErrInvalidPosition = errors.New("invalid position")

// Position selects which occurrence(s) of a scanned buffer get rewritten.
// The zero value selects occurrence 0.
type Position struct {
	// all marks a position covering every occurrence.
	all bool
	// index is the selected zero-based occurrence index when all is false.
	index uint32
}

// All returns a position selecting every occurrence.
func All() Position {
	return Position{all: true}
}

// Nth returns a position selecting only the occurrence with the given zero-based index.
func Nth(index uint32) Position {
	return Position{index: index}
}

// ParsePosition converts string input to a position.
// Accepted forms are "all" (any case) and a decimal occurrence index.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return All(), nil
	}

	index, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	return Nth(uint32(index)), nil
}

// IsAll reports whether the position selects every occurrence.
func (p Position) IsAll() bool {
	return p.all
}

// Matches reports whether the occurrence with the given index is selected.
func (p Position) Matches(index uint32) bool {
	return p.all || p.index == index
}

// String returns "all" or the selected index in decimal.
func (p Position) String() string {
	if p.all {
		return "all"
	}

	return strconv.FormatUint(uint64(p.index), 10)
}
