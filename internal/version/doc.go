// Package version carries the build identity of the verinc binary.
//
// Version, Commit and BuildTime are populated through Go ldflags at release
// time and fall back to placeholder values in local builds. Short and Full
// format them for the version subcommand.
package version
