package textfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	goupdate "github.com/doitdistributed/go-update"
)

// Repository defines storage operations for the file being rewritten.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, content string) error
}

// FileRepository reads a text file and applies rewritten content back in
// place. Replacement goes through go-update, which swaps the target via
// rename and restores the previous content if the write fails halfway.
type FileRepository struct {
	// path is the filesystem location of the text file.
	path string
	// mode is the permission set observed on Load and preserved on Save.
	mode fs.FileMode
}

// ErrNotFound is returned when the text file does not exist.
var ErrNotFound = errors.New("file not found")

// DefaultFileMode is used when saving a file whose permissions were never observed.
const DefaultFileMode fs.FileMode = 0o644

// NewFileRepository creates a repository for the file at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
		mode: DefaultFileMode,
	}
}

// Load reads the whole file as text and remembers its permission bits
// so that a later Save keeps them.
func (r *FileRepository) Load(_ context.Context) (string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", r.path, ErrNotFound)
		}

		return "", fmt.Errorf("stat input file: %w", err)
	}

	r.mode = info.Mode().Perm()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}

	return string(contents), nil
}

// Save applies the content to the file in place, keeping its permission bits.
func (r *FileRepository) Save(_ context.Context, content string) error {
	options := &goupdate.Options{
		TargetPath: r.path,
		TargetMode: r.mode,
	}

	if err := goupdate.Apply(strings.NewReader(content), *options); err != nil {
		return fmt.Errorf("apply rewritten file: %w", err)
	}

	// The applier may keep a backup next to the target; drop it.
	oldFileName := r.path + ".old"
	if _, err := os.Stat(oldFileName); err == nil {
		_ = os.Remove(oldFileName)
	}

	return nil
}
