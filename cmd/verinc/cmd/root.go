package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oshokin/verinc/internal/config"
	"github.com/oshokin/verinc/internal/logger"
	"github.com/oshokin/verinc/internal/service/bumper"
	"github.com/oshokin/verinc/internal/service/lister"
	"github.com/oshokin/verinc/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// listOnly switches the run to read-only listing of version occurrences.
	listOnly bool
	// position selects the occurrence to increment: "all" or a zero-based index.
	position string
	// toStdout prints the rewritten text instead of writing the file in place.
	toStdout bool
	// incrementMajor, incrementMinor and incrementPatch choose the increment kind.
	incrementMajor bool
	incrementMinor bool
	incrementPatch bool
	// logLevel overrides the diagnostic log level.
	logLevel string

	// rootCmd represents the base command rewriting version numbers in a file.
	rootCmd = &cobra.Command{
		Use:   "verinc [flags] <file>",
		Short: "Increment semantic version numbers inside a text file.",
		Long: `Rewrite semantic version numbers (X.Y.Z) inside a text file.

Scans the file for version numbers, counts the occurrences from 0 in order of
appearance, and increments the major, minor or patch component of the selected
occurrence (the patch of occurrence 0 by default). The rewritten text replaces
the file in place unless --stdout is given. Version numbers with leading
zeros, like 1.01.0, are never recognized.

Defaults for position, increment kind and output mode come from an optional
settings file; command-line flags win over settings. On interactive runs every
rewrite is reported as an "old -> new" line on stderr.`,
		Example: `  verinc Cargo.toml
  verinc --list Cargo.toml
  verinc --major --stdout --position 2 Cargo.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			applyLogLevel(ctx)

			filePath := args[0]

			// Listing ignores the rewrite flags, like the rewrite run ignores --list.
			if listOnly {
				return lister.Run(ctx, &lister.Options{
					FilePath: filePath,
					Out:      cmd.OutOrStdout(),
				})
			}

			options := &bumper.Options{
				ConfigPath:  configPath,
				FilePath:    filePath,
				Position:    position,
				Kind:        incrementKind(),
				LogLevel:    logLevel,
				ToStdout:    toStdout,
				StdoutSet:   cmd.Flags().Changed("stdout"),
				Interactive: term.IsTerminal(int(os.Stdout.Fd())),
				Out:         cmd.OutOrStdout(),
				NoticeOut:   cmd.ErrOrStderr(),
			}

			return bumper.Run(ctx, options)
		},
	}
)

// Execute runs the verinc CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+")")
	rootCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "list version occurrences with their indexes")
	rootCmd.Flags().StringVarP(&position, "position", "p", "",
		"occurrence to increment: zero-based index or \"all\" (default 0)")
	rootCmd.Flags().BoolVarP(&toStdout, "stdout", "s", false,
		"print the rewritten text instead of writing the file in place")
	rootCmd.Flags().BoolVar(&incrementMajor, "major", false, "increment the major component, resetting minor and patch")
	rootCmd.Flags().BoolVar(&incrementMinor, "minor", false, "increment the minor component, resetting patch")
	rootCmd.Flags().BoolVar(&incrementPatch, "patch", false, "increment the patch component")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "diagnostic log level: debug, info, warn or error")

	rootCmd.MarkFlagsMutuallyExclusive("major", "minor", "patch")
}

// incrementKind maps the kind flags to their setting value, empty when none was given.
func incrementKind() string {
	switch {
	case incrementMajor:
		return "major"
	case incrementMinor:
		return "minor"
	case incrementPatch:
		return "patch"
	default:
		return ""
	}
}

// applyLogLevel sets the global log level from the --log-level flag when provided.
func applyLogLevel(ctx context.Context) {
	if logLevel == "" {
		return
	}

	level, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		logger.Warnf(ctx, "Unknown log level %q, keeping %s", logLevel, logger.Level())

		return
	}

	logger.SetLevel(level)
}
