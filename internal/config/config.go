package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gerunddev/notionbridge/internal/convert"
	"github.com/gerunddev/notionbridge/internal/parser"
)

// Config represents the notionbridge configuration
type Config struct {
	InputFormat       string `json:"input_format"`
	TitleFromMetadata bool   `json:"title_from_metadata"`
	IncludeMetadata   bool   `json:"include_metadata"`
	EquationNumbers   bool   `json:"equation_numbers"`
	Indent            string `json:"indent"`
	LogLevel          string `json:"log_level"`
	LogFile           string `json:"log_file,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	opts := convert.DefaultOptions()
	return &Config{
		InputFormat:       string(parser.Markdown),
		TitleFromMetadata: opts.TitleFromMetadata,
		IncludeMetadata:   opts.IncludeMetadata,
		EquationNumbers:   opts.EquationNumbers,
		Indent:            "  ",
		LogLevel:          "warn",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notionbridge", "config.json")
	}
	return filepath.Join(home, ".config", "notionbridge", "config.json")
}

// Load reads configuration from the config directory. Keys missing from
// the file keep their default values.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := parser.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("invalid input_format: %w", err)
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}
	for _, r := range c.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("indent must contain only spaces or tabs")
		}
	}
	return nil
}

// Format returns the configured input format.
func (c *Config) Format() parser.Format {
	f, err := parser.ParseFormat(c.InputFormat)
	if err != nil {
		return parser.Markdown
	}
	return f
}

// ConvertOptions maps the configuration onto conversion options.
func (c *Config) ConvertOptions() convert.Options {
	return convert.Options{
		TitleFromMetadata: c.TitleFromMetadata,
		IncludeMetadata:   c.IncludeMetadata,
		EquationNumbers:   c.EquationNumbers,
	}
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error
	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
