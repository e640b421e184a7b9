package lister

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/verinc/internal/logger"
	"github.com/oshokin/verinc/internal/repository/textfile"
	"github.com/oshokin/verinc/internal/rewriter"
)

// Options configures a single list run.
type Options struct {
	// FilePath is the file whose version occurrences are listed.
	FilePath string

	// Out receives the listing. Defaults to os.Stdout.
	Out io.Writer

	// Repo overrides the storage for the input file.
	// Defaults to a FileRepository over FilePath.
	Repo textfile.Repository
}

// Run prints every recognized version occurrence of the file with its
// zero-based index, one "index: version" line per occurrence, in scan order.
// The indexes match the positions the rewrite run accepts.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "verinc")

	repo := opts.Repo
	if repo == nil {
		repo = textfile.NewFileRepository(opts.FilePath)
	}

	content, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	versions := rewriter.List(content)
	logger.DebugKV(ctx, "Listed version occurrences", "file", opts.FilePath, "count", len(versions))

	w := opts.Out
	if w == nil {
		w = os.Stdout
	}

	for index, version := range versions {
		if _, err = fmt.Fprintf(w, "%d: %s\n", index, version); err != nil {
			return fmt.Errorf("print versions: %w", err)
		}
	}

	return nil
}
