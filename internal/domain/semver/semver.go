package semver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrComponentOverflow is returned when a version component does not fit the unsigned 32-bit range.
	ErrComponentOverflow = errors.New("version component exceeds 32-bit unsigned range")
	// ErrMalformedTriple is returned when a string is not a canonical X.Y.Z version number.
	ErrMalformedTriple = errors.New("malformed version triple")
	// ErrUnsupportedKind is returned when a string names no known increment kind.
	ErrUnsupportedKind = errors.New("unsupported increment kind")
)

// Kind selects which component of a version triple an increment targets.
// The zero value is KindPatch.
type Kind int

const (
	// KindPatch increments the patch component.
	KindPatch Kind = iota
	// KindMinor increments the minor component and resets patch to zero.
	KindMinor
	// KindMajor increments the major component and resets minor and patch to zero.
	KindMajor
)

// String returns the lowercase name of the kind, matching its CLI flag.
func (k Kind) String() string {
	switch k {
	case KindMajor:
		return "major"
	case KindMinor:
		return "minor"
	case KindPatch:
		return "patch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts string input to an increment kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return KindMajor, nil
	case "minor":
		return KindMinor, nil
	case "patch":
		return KindPatch, nil
	default:
		return KindPatch, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// Triple is an X.Y.Z version number.
// Triples are immutable values; Bump computes a new triple instead of mutating.
type Triple struct {
	// Major is the first component.
	Major uint32
	// Minor is the second component.
	Minor uint32
	// Patch is the third component.
	Patch uint32
}

// ParseTriple parses a canonical X.Y.Z version number.
// Each component must be a decimal numeral without leading zeros
// and must fit the unsigned 32-bit range.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Triple{}, fmt.Errorf("%w: %q", ErrMalformedTriple, s)
	}

	major, err := parseComponent("major", parts[0])
	if err != nil {
		return Triple{}, err
	}

	minor, err := parseComponent("minor", parts[1])
	if err != nil {
		return Triple{}, err
	}

	patch, err := parseComponent("patch", parts[2])
	if err != nil {
		return Triple{}, err
	}

	return Triple{Major: major, Minor: minor, Patch: patch}, nil
}

// parseComponent parses one version component as an unsigned 32-bit decimal numeral.
// The name is used only for error context.
func parseComponent(name, s string) (uint32, error) {
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: %s component %q has a leading zero", ErrMalformedTriple, name, s)
	}

	value, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s component %q", ErrComponentOverflow, name, s)
		}

		return 0, fmt.Errorf("%w: %s component %q", ErrMalformedTriple, name, s)
	}

	return uint32(value), nil
}

// Bump returns a new triple with the component selected by kind incremented
// and all lower-order components reset to zero. Incrementing a component
// already at the unsigned 32-bit maximum fails with ErrComponentOverflow
// instead of wrapping around.
func (t Triple) Bump(kind Kind) (Triple, error) {
	switch kind {
	case KindMajor:
		if t.Major == math.MaxUint32 {
			return Triple{}, fmt.Errorf("%w: major component %d cannot be incremented", ErrComponentOverflow, t.Major)
		}

		return Triple{Major: t.Major + 1, Minor: 0, Patch: 0}, nil
	case KindMinor:
		if t.Minor == math.MaxUint32 {
			return Triple{}, fmt.Errorf("%w: minor component %d cannot be incremented", ErrComponentOverflow, t.Minor)
		}

		return Triple{Major: t.Major, Minor: t.Minor + 1, Patch: 0}, nil
	default:
		if t.Patch == math.MaxUint32 {
			return Triple{}, fmt.Errorf("%w: patch component %d cannot be incremented", ErrComponentOverflow, t.Patch)
		}

		return Triple{Major: t.Major, Minor: t.Minor, Patch: t.Patch + 1}, nil
	}
}

// String formats the triple as X.Y.Z in canonical decimal.
func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}
