package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/ramshell/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultTableCapacity is the number of entry slots in the table
	DefaultTableCapacity = 128

	// DefaultMaxNameLen is the longest full name an entry may carry
	DefaultMaxNameLen = 31

	// DefaultMaxFileSize is the content capacity of a single file in bytes
	DefaultMaxFileSize = 512

	// DefaultMaxLineLen is the longest input line the editor accepts
	DefaultMaxLineLen = 127

	// DefaultMaxCommandLen is the longest command token; extra bytes spill into the args
	DefaultMaxCommandLen = 15

	// DefaultHomeDir is the starting current directory, relative to root
	DefaultHomeDir = "user"

	DefaultColumns = 80
	DefaultRows    = 25
)

// Config contains runtime configuration values for the shell and its table.
type Config struct {
	ScreenOptions
	LogLvl        util.LogLevel // Internal log level (Default info)
	TableCapacity int           // Number of entry slots (Default 128)
	MaxNameLen    int           // Maximum full name length in bytes (Default 31)
	MaxFileSize   int           // Maximum content bytes per file (Default 512)
	MaxLineLen    int           // Maximum input line length (Default 127)
	MaxCommandLen int           // Maximum command token length (Default 15)
	HomeDir       string        // Initial current directory; "" is root (Default "user")
	Layout        string        // Optional layout definition file seeded at boot
}

// TableBytes returns the total content capacity of the table in bytes.
func (c *Config) TableBytes() int {
	return c.TableCapacity * c.MaxFileSize
}

// Validate reports the first setting the table or shell cannot work with.
func (c *Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		val  int
	}{
		{"table_capacity", c.TableCapacity},
		{"max_name_len", c.MaxNameLen},
		{"max_file_size", c.MaxFileSize},
		{"max_line_len", c.MaxLineLen},
		{"max_command_len", c.MaxCommandLen},
		{"columns", c.Columns},
		{"rows", c.Rows},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.val))
		}
	}
	if len(c.HomeDir) > c.MaxNameLen {
		errs = append(errs, fmt.Errorf("home_dir %q exceeds max_name_len %d", c.HomeDir, c.MaxNameLen))
	}
	return errors.Join(errs...)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	LogLvl        *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"` // CLI verbosity 1..5, not a util.LogLevel
	TableCapacity *int    `yaml:"table_capacity,omitempty" json:"table_capacity,omitempty"`
	MaxNameLen    *int    `yaml:"max_name_len,omitempty" json:"max_name_len,omitempty"`
	MaxFileSize   *int    `yaml:"max_file_size,omitempty" json:"max_file_size,omitempty"`
	MaxLineLen    *int    `yaml:"max_line_len,omitempty" json:"max_line_len,omitempty"`
	MaxCommandLen *int    `yaml:"max_command_len,omitempty" json:"max_command_len,omitempty"`
	HomeDir       *string `yaml:"home_dir,omitempty" json:"home_dir,omitempty"`
	Layout        *string `yaml:"layout,omitempty" json:"layout,omitempty"`
	Columns       *int    `yaml:"columns,omitempty" json:"columns,omitempty"`
	Rows          *int    `yaml:"rows,omitempty" json:"rows,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		ScreenOptions: ScreenOptions{
			Columns: DefaultColumns,
			Rows:    DefaultRows,
		},
		LogLvl:        DefaultLogLvl,
		TableCapacity: DefaultTableCapacity,
		MaxNameLen:    DefaultMaxNameLen,
		MaxFileSize:   DefaultMaxFileSize,
		MaxLineLen:    DefaultMaxLineLen,
		MaxCommandLen: DefaultMaxCommandLen,
		HomeDir:       DefaultHomeDir,
	}
}

// NewConfig returns the defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override == nil {
		return
	}
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.TableCapacity != nil {
		c.TableCapacity = *override.TableCapacity
	}
	if override.MaxNameLen != nil {
		c.MaxNameLen = *override.MaxNameLen
	}
	if override.MaxFileSize != nil {
		c.MaxFileSize = *override.MaxFileSize
	}
	if override.MaxLineLen != nil {
		c.MaxLineLen = *override.MaxLineLen
	}
	if override.MaxCommandLen != nil {
		c.MaxCommandLen = *override.MaxCommandLen
	}
	if override.HomeDir != nil {
		c.HomeDir = *override.HomeDir
	}
	if override.Layout != nil {
		c.Layout = *override.Layout
	}
	if override.Columns != nil {
		c.Columns = *override.Columns
	}
	if override.Rows != nil {
		c.Rows = *override.Rows
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
