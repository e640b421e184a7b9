package rewriter

import "regexp"

// versionPattern recognizes canonical X.Y.Z version triples.
// Each component is either 0 or a non-zero digit followed by more digits,
// so numerals with leading zeros never match. The compiled pattern is
// process-wide immutable state.
//
//nolint:gochecknoglobals // The pattern is a constant; compiling it once is intended.
var versionPattern = regexp.MustCompile(`(?P<major>0|[1-9]\d*)\.(?P<minor>0|[1-9]\d*)\.(?P<patch>0|[1-9]\d*)`)

// Match is one recognized version occurrence in a scanned buffer.
type Match struct {
	// Start and End are byte offsets of the occurrence in the buffer, End exclusive.
	Start int
	End   int
	// Text is the exact matched substring.
	Text string
	// Major, Minor and Patch hold the captured numeral groups, unparsed.
	Major string
	Minor string
	Patch string
}

// Scan returns every non-overlapping version occurrence in text, in
// left-to-right order. Scanning resumes immediately after each match, and
// there is no word-boundary requirement: a triple embedded in a longer run
// still matches on the triple substring. Scan performs no numeric parsing.
func Scan(text string) []Match {
	raw := versionPattern.FindAllStringSubmatchIndex(text, -1)
	if raw == nil {
		return nil
	}

	matches := make([]Match, 0, len(raw))
	for _, loc := range raw {
		matches = append(matches, Match{
			Start: loc[0],
			End:   loc[1],
			Text:  text[loc[0]:loc[1]],
			Major: text[loc[2]:loc[3]],
			Minor: text[loc[4]:loc[5]],
			Patch: text[loc[6]:loc[7]],
		})
	}

	return matches
}

// List returns the original text of every version occurrence, in scan
// order. The result carries the matched substrings unmodified; callers
// index them the same way Rewrite numbers occurrences.
func List(text string) []string {
	matches := Scan(text)
	if len(matches) == 0 {
		return nil
	}

	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		versions = append(versions, m.Text)
	}

	return versions
}
