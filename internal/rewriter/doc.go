// Package rewriter implements the version-locating-and-rewriting engine.
//
// Scan finds every X.Y.Z occurrence in a text buffer, Rewrite replaces the
// occurrences selected by a position with their incremented form, and List
// enumerates the matched substrings without modification. The engine is a
// pure text transformation over an immutable input: file handling, terminal
// detection and notice printing belong to the callers.
package rewriter
