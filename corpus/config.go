package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lvlx/format"
	"github.com/signadot/lvlx/split"
)

var ErrConfig = errors.New("config error")

// Config describes where a corpus conversion reads and writes. Relative
// paths are resolved against the directory of the config file.
type Config struct {
	// Levels is the level catalogue.
	Levels string `yaml:"levels"`
	// Worlds is the alias lookup document; empty disables aliases.
	Worlds string `yaml:"worlds,omitempty"`
	// Out receives the split levels.
	Out string `yaml:"out"`
	// Compact is the directory under Out receiving encoded levels.
	Compact  string        `yaml:"compact,omitempty"`
	Format   format.Format `yaml:"format,omitempty"`
	Comments *bool         `yaml:"comments,omitempty"`
	// Where filters encoded records, see package query.
	Where string `yaml:"where,omitempty"`
	Jobs  int    `yaml:"jobs,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Levels:  filepath.Join("orig-data", "levels.xml"),
		Worlds:  filepath.Join("orig-data", "worlds.xml"),
		Out:     "levels",
		Compact: "compact",
		Format:  format.CompactFormat,
		Jobs:    1,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrConfig, err)
	}
	cfg.resolve(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Levels, &c.Worlds, &c.Out} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch {
	case c.Levels == "":
		return fmt.Errorf("%w: levels is required", ErrConfig)
	case c.Out == "":
		return fmt.Errorf("%w: out is required", ErrConfig)
	case c.Jobs < 0:
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrConfig, c.Jobs)
	case filepath.IsAbs(c.Compact), c.Compact == "..", c.Compact == split.DataDir:
		return fmt.Errorf("%w: compact must be a directory name inside out, got %q", ErrConfig, c.Compact)
	}
	if _, err := c.Format.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// CompactDir is where encoded levels go.
func (c *Config) CompactDir() string {
	if c.Compact == "" {
		return c.Out
	}
	return filepath.Join(c.Out, c.Compact)
}

func (c *Config) comments() bool {
	return c.Comments == nil || *c.Comments
}
