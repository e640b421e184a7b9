package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/verinc/internal/domain/semver"
	"github.com/oshokin/verinc/internal/logger"
)

// Config holds default settings applied when the matching command-line
// flags are not set.
type Config struct {
	// Position is the default occurrence selection: "all" or a zero-based index.
	Position string `yaml:"position"`
	// Kind is the default increment kind: major, minor or patch.
	Kind string `yaml:"kind"`
	// Stdout, when true, prints the rewritten text instead of writing the file in place.
	Stdout bool `yaml:"stdout"`
	// LogLevel is the zap level name for diagnostic logging.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for verinc settings.
	DefaultConfigFilename = "verinc-settings.yaml"

	// DefaultPosition selects the first occurrence.
	DefaultPosition = "0"

	// DefaultKind increments the patch component.
	DefaultKind = "patch"

	// DefaultLogLevel keeps routine diagnostics silent.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when the configured log level names no zap level.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns a configuration with built-in defaults.
func Default() *Config {
	return &Config{
		Position: DefaultPosition,
		Kind:     DefaultKind,
		Stdout:   false,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path means the default filename, whose absence is not an error:
// built-in defaults apply. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills omitted fields with defaults and checks the rest for
// supported values.
func Validate(settings *Config) error {
	if settings.Position == "" {
		settings.Position = DefaultPosition
	}

	if settings.Kind == "" {
		settings.Kind = DefaultKind
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, err := semver.ParsePosition(settings.Position); err != nil {
		return fmt.Errorf("position setting: %w", err)
	}

	if _, err := semver.ParseKind(settings.Kind); err != nil {
		return fmt.Errorf("kind setting: %w", err)
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	return nil
}
