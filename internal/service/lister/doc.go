// Package lister implements the read-only list run of the verinc binary.
//
// It reads the target file and prints every recognized version occurrence
// with its zero-based index, without modifying anything.
package lister
