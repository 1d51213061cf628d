package churn

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileCount is the number of files created per run.
	DefaultFileCount = 100
	// DefaultTextLength is the number of letters written into each file.
	DefaultTextLength = 100
	// DefaultPrefix is prepended to the file index to build each file name.
	DefaultPrefix = "FILE"
)

// Policy selects how the runner reacts to a failed file operation.
type Policy string

const (
	// PolicyFailFast aborts on the first failure and rolls back created files.
	PolicyFailFast Policy = "fail-fast"
	// PolicyKeepGoing skips failed files and reports every failure at the end.
	PolicyKeepGoing Policy = "keep-going"
)

// Config captures runtime parameters for a churn run.
type Config struct {
	FileCount  int
	TextLength int
	Dir        string
	Prefix     string
	Policy     Policy
	Verify     bool
	ReportPath string
	Seed       *uint64
	Banner     string
	Debug      bool
	Version    string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := Config{
		FileCount:  DefaultFileCount,
		TextLength: DefaultTextLength,
		Dir:        ".",
		Prefix:     DefaultPrefix,
		Policy:     PolicyFailFast,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.FileCount < 0 {
		return fmt.Errorf("file count must not be negative, got %d", c.FileCount)
	}
	if c.TextLength < 0 {
		return fmt.Errorf("text length must not be negative, got %d", c.TextLength)
	}
	if c.Prefix == "" {
		return errors.New("file prefix must be provided")
	}
	switch c.Policy {
	case PolicyFailFast, PolicyKeepGoing:
	default:
		return fmt.Errorf("unsupported failure policy %q", c.Policy)
	}
	return nil
}

// WithFileCount overrides how many files are created.
func WithFileCount(count int) ConfigOption {
	return func(cfg *Config) {
		cfg.FileCount = count
	}
}

// WithTextLength overrides how many letters each file holds.
func WithTextLength(length int) ConfigOption {
	return func(cfg *Config) {
		cfg.TextLength = length
	}
}

// WithDir sets the directory the files are created in.
func WithDir(dir string) ConfigOption {
	return func(cfg *Config) {
		if dir != "" {
			cfg.Dir = dir
		}
	}
}

// WithPrefix sets the file name prefix.
func WithPrefix(prefix string) ConfigOption {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.Prefix = prefix
		}
	}
}

// WithKeepGoing selects PolicyKeepGoing when enabled and PolicyFailFast otherwise.
func WithKeepGoing(enabled bool) ConfigOption {
	return func(cfg *Config) {
		if enabled {
			cfg.Policy = PolicyKeepGoing
			return
		}
		cfg.Policy = PolicyFailFast
	}
}

// WithVerify toggles the read-back check between the write and cleanup phases.
func WithVerify(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Verify = enabled
	}
}

// WithReportPath sets where the YAML run report is written.
func WithReportPath(path string) ConfigOption {
	return func(cfg *Config) {
		cfg.ReportPath = path
	}
}

// WithSeed makes the generated text reproducible.
func WithSeed(seed uint64) ConfigOption {
	return func(cfg *Config) {
		cfg.Seed = &seed
	}
}

// WithBanner sets the invocation path shown in the startup banner.
func WithBanner(invokedAs string) ConfigOption {
	return func(cfg *Config) {
		cfg.Banner = invokedAs
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}

// FileSettings mirrors the keys accepted in a YAML config file.
// Nil fields were not present in the file.
type FileSettings struct {
	Count     *int    `yaml:"count"`
	Length    *int    `yaml:"length"`
	Dir       *string `yaml:"dir"`
	Prefix    *string `yaml:"prefix"`
	KeepGoing *bool   `yaml:"keepGoing"`
	Verify    *bool   `yaml:"verify"`
}

// LoadFileSettings reads a YAML config file from fs.
func LoadFileSettings(fs afero.Fs, path string) (FileSettings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return FileSettings{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var settings FileSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return FileSettings{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return settings, nil
}

// Options converts the settings that were present into config options.
func (s FileSettings) Options() []ConfigOption {
	var opts []ConfigOption
	if s.Count != nil {
		opts = append(opts, WithFileCount(*s.Count))
	}
	if s.Length != nil {
		opts = append(opts, WithTextLength(*s.Length))
	}
	if s.Dir != nil {
		opts = append(opts, WithDir(*s.Dir))
	}
	if s.Prefix != nil {
		opts = append(opts, WithPrefix(*s.Prefix))
	}
	if s.KeepGoing != nil {
		opts = append(opts, WithKeepGoing(*s.KeepGoing))
	}
	if s.Verify != nil {
		opts = append(opts, WithVerify(*s.Verify))
	}
	return opts
}
