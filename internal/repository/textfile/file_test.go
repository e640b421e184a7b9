package textfile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.toml"))

	content, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, content)
}

// TestFileRepository_LoadSave_Roundtrip ensures rewritten content replaces the
// file in place while its permission bits survive.
func TestFileRepository_LoadSave_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1.2.3\"\n"), 0o640))

	repo := NewFileRepository(path)

	content, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "version = \"1.2.3\"\n", content)

	require.NoError(t, repo.Save(context.Background(), "version = \"1.2.4\"\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "version = \"1.2.4\"\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o640), info.Mode().Perm())

	// No backup is left behind.
	require.NoFileExists(t, path+".old")
}

// TestFileRepository_SaveMissingDir verifies that applying into a nonexistent
// directory surfaces an error.
func TestFileRepository_SaveMissingDir(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope", "file.txt"))

	err := repo.Save(context.Background(), "content")
	require.Error(t, err)
}
