package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks default filling and rejection of unsupported values.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings pick up every default.
	settings := new(Config)

	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultPosition, settings.Position)
	require.Equal(t, DefaultKind, settings.Kind)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)

	// Bad position.
	settings = &Config{Position: "first"}

	err := Validate(settings)
	require.Error(t, err)

	// Bad kind.
	settings = &Config{Kind: "prerelease"}

	err = Validate(settings)
	require.Error(t, err)

	// Bad log level.
	settings = &Config{LogLevel: "loud"}

	err = Validate(settings)
	require.Error(t, err)

	// Fully specified settings pass.
	settings = &Config{
		Position: "all",
		Kind:     "minor",
		Stdout:   true,
		LogLevel: "debug",
	}

	require.NoError(t, Validate(settings))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		Position: "2",
		Kind:     "major",
		Stdout:   true,
		LogLevel: "warn",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoadMissingDefault ensures an absent default settings file falls back to built-in defaults.
func TestLoadMissingDefault(t *testing.T) {
	// No t.Parallel: changing the working directory is not allowed in parallel tests.
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoadMissingExplicit ensures an explicitly named settings file must exist.
func TestLoadMissingExplicit(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestLoadRejectsInvalid ensures invalid persisted settings fail to load.
func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("position: nope\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
