package bumper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/verinc/internal/config"
	"github.com/oshokin/verinc/internal/domain/semver"
	"github.com/oshokin/verinc/internal/logger"
	"github.com/oshokin/verinc/internal/repository/textfile"
	"github.com/oshokin/verinc/internal/rewriter"
)

// Options configures a single rewrite run.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// FilePath is the file whose version occurrences are rewritten.
	FilePath string

	// Position overrides the occurrence selection from config when specified:
	// "all" or a zero-based index.
	Position string

	// Kind overrides the increment kind from config when specified:
	// major, minor or patch.
	Kind string

	// LogLevel marks the diagnostic level as already set by the caller;
	// when empty, the config value applies.
	LogLevel string

	// ToStdout prints the rewritten buffer instead of writing the file in
	// place. When false and StdoutSet is false, the config value applies.
	ToStdout bool

	// StdoutSet marks ToStdout as explicitly chosen by the caller, letting
	// an explicit false win over the config value.
	StdoutSet bool

	// Interactive marks stdout as attached to a terminal; rewrite notices
	// are printed only in that case.
	Interactive bool

	// Out receives the rewritten buffer in stdout mode. Defaults to os.Stdout.
	Out io.Writer

	// NoticeOut receives the old -> new notices. Defaults to os.Stderr.
	NoticeOut io.Writer

	// Repo overrides the storage for the input file.
	// Defaults to a FileRepository over FilePath.
	Repo textfile.Repository
}

// Run rewrites the selected version occurrences of the file per options.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "verinc")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// The flag already set the level when LogLevel is non-empty.
	if opts.LogLevel == "" {
		if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok && level != logger.Level() {
			logger.SetLevel(level)
		}
	}

	position, kind, err := resolvePolicy(cfg, opts)
	if err != nil {
		return err
	}

	repo := repository(opts)

	content, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	result, changes, err := rewriter.Rewrite(content, position, kind)
	if err != nil {
		return err
	}

	logger.DebugKV(
		ctx,
		"Rewrote version occurrences",
		"file", opts.FilePath,
		"position", position.String(),
		"kind", kind.String(),
		"rewritten", len(changes),
	)

	// Notices describe what changed; the primary output stays clean.
	if opts.Interactive {
		writeNotices(noticeWriter(opts), changes)
	}

	// A true flag always counts as set; an explicit false needs StdoutSet
	// to win over the config value.
	toStdout := cfg.Stdout
	if opts.StdoutSet || opts.ToStdout {
		toStdout = opts.ToStdout
	}

	if toStdout {
		if _, err = fmt.Fprintln(outWriter(opts), result); err != nil {
			return fmt.Errorf("print result: %w", err)
		}

		return nil
	}

	if len(changes) == 0 {
		logger.DebugKV(ctx, "No occurrences selected, file left untouched", "file", opts.FilePath)

		return nil
	}

	return repo.Save(ctx, result)
}

// resolvePolicy applies the flag-over-config precedence and parses the result.
func resolvePolicy(cfg *config.Config, opts *Options) (semver.Position, semver.Kind, error) {
	rawPosition := cfg.Position
	if opts.Position != "" {
		rawPosition = opts.Position
	}

	position, err := semver.ParsePosition(rawPosition)
	if err != nil {
		return semver.Position{}, semver.KindPatch, err
	}

	rawKind := cfg.Kind
	if opts.Kind != "" {
		rawKind = opts.Kind
	}

	kind, err := semver.ParseKind(rawKind)
	if err != nil {
		return semver.Position{}, semver.KindPatch, err
	}

	return position, kind, nil
}

// writeNotices prints one "old -> new" line per rewritten occurrence, in occurrence order.
func writeNotices(w io.Writer, changes []rewriter.Change) {
	for _, change := range changes {
		_, _ = fmt.Fprintf(w, "%s -> %s\n", change.Old, change.New)
	}
}

// repository returns the storage the run reads and writes.
//
//nolint:ireturn,nolintlint // The storage implementation is chosen at run time.
func repository(opts *Options) textfile.Repository {
	if opts.Repo != nil {
		return opts.Repo
	}

	return textfile.NewFileRepository(opts.FilePath)
}

// outWriter returns the destination for the rewritten buffer.
func outWriter(opts *Options) io.Writer {
	if opts.Out != nil {
		return opts.Out
	}

	return os.Stdout
}

// noticeWriter returns the destination for rewrite notices.
func noticeWriter(opts *Options) io.Writer {
	if opts.NoticeOut != nil {
		return opts.NoticeOut
	}

	return os.Stderr
}
