// Package bumper implements the rewrite run of the verinc binary.
//
// It loads settings, reads the target file, rewrites the selected version
// occurrences and either prints the result or applies it back in place,
// reporting old -> new notices on interactive runs.
package bumper
