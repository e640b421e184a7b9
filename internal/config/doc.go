// Package config defines default settings for the verinc binary and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the default occurrence selection, increment kind,
// output mode and log level. Command-line flags override any of them.
package config
