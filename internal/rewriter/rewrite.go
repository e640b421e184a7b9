package rewriter

import (
	"fmt"
	"strings"

	"github.com/oshokin/verinc/internal/domain/semver"
)

// Change records one rewritten occurrence.
type Change struct {
	// Index is the zero-based occurrence index of the rewritten match.
	Index uint32
	// Old is the original matched text.
	Old string
	// New is the replacement written in its place.
	New string
}

// Rewrite replaces the occurrences of text selected by position with their
// form incremented per kind. Occurrences are numbered from 0 in scan order,
// counting every match whether selected or not, so numbering stays
// consistent with List. Non-selected occurrences and all non-matching text
// are copied into the output byte-for-byte.
//
// The returned changes describe the rewritten occurrences in order; callers
// decide whether and where to present them. When no occurrence matches the
// selection, the output equals the input and no error is reported. A match
// whose component exceeds the unsigned 32-bit range aborts the whole
// rewrite, selected or not, and so does an increment that would leave
// the range.
func Rewrite(text string, position semver.Position, kind semver.Kind) (string, []Change, error) {
	matches := Scan(text)
	if len(matches) == 0 {
		return text, nil, nil
	}

	var (
		result  strings.Builder
		changes []Change
		last    int
	)

	result.Grow(len(text))

	for i, m := range matches {
		index := uint32(i) //nolint:gosec // The occurrence count is bounded by the buffer length.

		triple, err := parseMatch(m, index)
		if err != nil {
			return "", nil, err
		}

		result.WriteString(text[last:m.Start])

		if position.Matches(index) {
			bumped, err := triple.Bump(kind)
			if err != nil {
				return "", nil, fmt.Errorf("occurrence %d (%q): %w", index, m.Text, err)
			}

			replacement := bumped.String()
			result.WriteString(replacement)

			changes = append(changes, Change{Index: index, Old: m.Text, New: replacement})
		} else {
			result.WriteString(m.Text)
		}

		last = m.End
	}

	result.WriteString(text[last:])

	return result.String(), changes, nil
}

// parseMatch converts the matched text of one occurrence into a triple.
// The matched text is a canonical X.Y.Z string by construction, so the only
// reachable failure is a component beyond the unsigned 32-bit range.
func parseMatch(m Match, index uint32) (semver.Triple, error) {
	triple, err := semver.ParseTriple(m.Text)
	if err != nil {
		return semver.Triple{}, fmt.Errorf("occurrence %d (%q): %w", index, m.Text, err)
	}

	return triple, nil
}
