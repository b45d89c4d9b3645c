// internal/platform/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/platform/errors"
)

// Config is the CLI configuration. Sources are applied in order
// defaults -> YAML file -> URLSUMMARY_* environment -> flags.
type Config struct {
	Summary Summary `yaml:"summary"`
	Output  Output  `yaml:"output"`
	Log     Log     `yaml:"log"`

	// Inputs are the positional file arguments; empty means stdin.
	Inputs []string `yaml:"-"`

	ConfigFile   string `yaml:"-"`
	ShowHelp     bool   `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

// Summary tunes the summary build.
type Summary struct {
	TopItems          int    `yaml:"top_items"`
	TopURLs           int    `yaml:"top_urls"`
	RandomizeSample   bool   `yaml:"randomize_sample"`
	OnParseError      string `yaml:"on_parse_error"`
	RegisteredDomains bool   `yaml:"registered_domains"`
}

// Output selects the renderer and destination.
type Output struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"` // empty = stdout
	Title  string `yaml:"title"`
	Color  bool   `yaml:"color"`
}

// Log selects the log level. Verbose and Quiet are mutually exclusive.
type Log struct {
	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Summary: Summary{
			TopItems:        20,
			TopURLs:         3,
			RandomizeSample: true,
			OnParseError:    string(domain.ErrorPolicyAbort),
		},
		Output: Output{
			Format: "tree",
			Title:  "URL summary",
			Color:  true,
		},
	}
}

// EnvConfigFile names the environment variable that points at a YAML config file.
const EnvConfigFile = "URLSUMMARY_CONFIG"

// Load builds the configuration from args (without the program name).
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// Flags are parsed first to learn --config; their values are applied last.
	var flags Config
	flags.Summary = cfg.Summary
	flags.Output = cfg.Output
	var noRandom, noColor bool

	fs := newFlagSet(&flags, &noRandom, &noColor)
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	cfg.ShowHelp = flags.ShowHelp
	cfg.PrintVersion = flags.PrintVersion
	cfg.Inputs = fs.Args()
	if cfg.ShowHelp || cfg.PrintVersion {
		return cfg, nil
	}

	cfg.ConfigFile = flags.ConfigFile
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = getenv(EnvConfigFile, "")
	}
	if cfg.ConfigFile != "" {
		if err := loadFromFile(&cfg, cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}

	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "top-items":
			cfg.Summary.TopItems = flags.Summary.TopItems
		case "top-urls":
			cfg.Summary.TopURLs = flags.Summary.TopURLs
		case "no-random":
			cfg.Summary.RandomizeSample = !noRandom
		case "on-error":
			cfg.Summary.OnParseError = flags.Summary.OnParseError
		case "domains":
			cfg.Summary.RegisteredDomains = flags.Summary.RegisteredDomains
		case "format":
			cfg.Output.Format = flags.Output.Format
		case "out":
			cfg.Output.Path = flags.Output.Path
		case "title":
			cfg.Output.Title = flags.Output.Title
		case "no-color":
			cfg.Output.Color = !noColor
		case "verbose":
			cfg.Log.Verbose = flags.Log.Verbose
		case "quiet":
			cfg.Log.Quiet = flags.Log.Quiet
		}
	})

	normalize(&cfg)

	return cfg, cfg.Validate()
}

func newFlagSet(cfg *Config, noRandom, noColor *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("urlsummary", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.IntVarP(&cfg.Summary.TopItems, "top-items", "n", cfg.Summary.TopItems, "Number of facets to report")
	fs.IntVarP(&cfg.Summary.TopURLs, "top-urls", "s", cfg.Summary.TopURLs, "Sample URLs per facet")
	fs.BoolVar(noRandom, "no-random", false, "Sample the first URLs instead of a seeded random draw")
	fs.StringVar(&cfg.Summary.OnParseError, "on-error", cfg.Summary.OnParseError, "Malformed URL policy: abort or skip")
	fs.BoolVar(&cfg.Summary.RegisteredDomains, "domains", false, "Also group by registered domain (eTLD+1)")

	fs.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "Output format: tree, table, html, json, yaml")
	fs.StringVarP(&cfg.Output.Path, "out", "o", "", "Output file or directory (default stdout)")
	fs.StringVar(&cfg.Output.Title, "title", cfg.Output.Title, "Report title")
	fs.BoolVar(noColor, "no-color", false, "Disable terminal colours")

	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "YAML configuration file")
	fs.BoolVar(&cfg.Log.Verbose, "verbose", false, "Debug logging")
	fs.BoolVarP(&cfg.Log.Quiet, "quiet", "q", false, "Errors only")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "Show this help message")

	return fs
}

// loadFromFile merges a YAML file over cfg. Keys absent from the file keep their value.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "failed to parse config file %s: %v", path, err)
	}

	return nil
}

// loadFromEnv applies URLSUMMARY_* variables.
func loadFromEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"URLSUMMARY_TOP_ITEMS", &cfg.Summary.TopItems},
		{"URLSUMMARY_TOP_URLS", &cfg.Summary.TopURLs},
	}
	for _, e := range ints {
		v := getenv(e.key, "")
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &domain.ConfigError{Field: e.key, Value: v, Reason: "must be an integer"}
		}
		*e.dst = n
	}

	if v := getenv("URLSUMMARY_RANDOMIZE", ""); v != "" {
		cfg.Summary.RandomizeSample = parseBool(v)
	}
	if v := getenv("URLSUMMARY_ON_ERROR", ""); v != "" {
		cfg.Summary.OnParseError = v
	}
	if v := getenv("URLSUMMARY_DOMAINS", ""); v != "" {
		cfg.Summary.RegisteredDomains = parseBool(v)
	}
	if v := getenv("URLSUMMARY_FORMAT", ""); v != "" {
		cfg.Output.Format = v
	}
	if v := getenv("URLSUMMARY_OUT", ""); v != "" {
		cfg.Output.Path = v
	}
	if v := getenv("URLSUMMARY_TITLE", ""); v != "" {
		cfg.Output.Title = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Output.Color = false
	}

	return nil
}

func normalize(c *Config) {
	c.Summary.OnParseError = strings.ToLower(strings.TrimSpace(c.Summary.OnParseError))
	if c.Summary.OnParseError == "" {
		c.Summary.OnParseError = string(domain.ErrorPolicyAbort)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Path = strings.TrimSpace(c.Output.Path)
}

// Validate reports the first invalid setting as a *domain.ConfigError.
// The output format is checked by the exporter registry.
func (c Config) Validate() error {
	if c.Summary.TopItems < 0 {
		return &domain.ConfigError{Field: "top_items", Value: c.Summary.TopItems, Reason: "must be >= 0"}
	}
	if c.Summary.TopURLs < 0 {
		return &domain.ConfigError{Field: "top_urls", Value: c.Summary.TopURLs, Reason: "must be >= 0"}
	}
	if !domain.ErrorPolicy(c.Summary.OnParseError).IsValid() {
		return &domain.ConfigError{Field: "on_parse_error", Value: c.Summary.OnParseError, Reason: "must be abort or skip"}
	}
	if c.Log.Verbose && c.Log.Quiet {
		return &domain.ConfigError{Field: "verbose", Value: true, Reason: "cannot be combined with quiet"}
	}
	return nil
}

// ToYAML serializes the configuration (useful for debugging).
func (c Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
