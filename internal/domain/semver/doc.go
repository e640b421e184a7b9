// Package semver contains core domain types for version rewriting.
//
// It defines Triple (an X.Y.Z version number with increment arithmetic),
// Kind (which component an increment targets) and Position (which
// occurrences of a scanned buffer are selected for rewriting).
package semver
