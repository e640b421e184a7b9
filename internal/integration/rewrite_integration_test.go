package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/verinc/internal/config"
	"github.com/oshokin/verinc/internal/service/bumper"
	"github.com/oshokin/verinc/internal/service/lister"
)

// TestRewriteWorkflow_BumpAndList drives a full release bump: settings file,
// in-place rewrite, listing, then a flag-style override of the settings.
func TestRewriteWorkflow_BumpAndList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "Cargo.toml")

	const original = "[package]\nname = \"demo\"\nversion = \"1.2.3\"\n\n[dependencies]\nserde = \"1.0.188\"\n"

	require.NoError(t, os.WriteFile(manifest, []byte(original), 0o644))

	// Settings pick the first occurrence and a patch bump.
	cfgPath := filepath.Join(dir, "verinc-settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		Position: "0",
		Kind:     "patch",
	}))

	// Bump the package version, leaving the dependency pin alone.
	err := bumper.Run(context.Background(), &bumper.Options{
		ConfigPath: cfgPath,
		FilePath:   manifest,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	require.Equal(t,
		"[package]\nname = \"demo\"\nversion = \"1.2.4\"\n\n[dependencies]\nserde = \"1.0.188\"\n",
		string(data))

	// The listing reflects the rewritten file with stable indexes.
	var out bytes.Buffer

	require.NoError(t, lister.Run(context.Background(), &lister.Options{FilePath: manifest, Out: &out}))
	require.Equal(t, "0: 1.2.4\n1: 1.0.188\n", out.String())

	// Explicit options win over the settings file and bump the dependency pin.
	err = bumper.Run(context.Background(), &bumper.Options{
		ConfigPath: cfgPath,
		FilePath:   manifest,
		Position:   "1",
		Kind:       "minor",
	})
	require.NoError(t, err)

	data, err = os.ReadFile(manifest)
	require.NoError(t, err)
	require.Contains(t, string(data), "serde = \"1.1.0\"")
	require.Contains(t, string(data), "version = \"1.2.4\"")
}

// TestRewriteWorkflow_StdoutPreview verifies that a stdout run previews the
// change with notices while leaving the file untouched.
func TestRewriteWorkflow_StdoutPreview(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")

	const original = "release 2.9.9\n"

	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	var out, notices bytes.Buffer

	err := bumper.Run(context.Background(), &bumper.Options{
		FilePath:    path,
		Kind:        "minor",
		ToStdout:    true,
		Interactive: true,
		Out:         &out,
		NoticeOut:   &notices,
	})
	require.NoError(t, err)
	require.Equal(t, "release 2.10.0\n\n", out.String())
	require.Equal(t, "2.9.9 -> 2.10.0\n", notices.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, string(data))
}
