package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gerunddev/notionbridge/internal/parser"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputFormat != string(parser.Markdown) {
		t.Errorf("InputFormat = %q, want %q", cfg.InputFormat, parser.Markdown)
	}
	if !cfg.TitleFromMetadata {
		t.Error("Expected TitleFromMetadata to default to true")
	}
	if cfg.IncludeMetadata {
		t.Error("Expected IncludeMetadata to default to false")
	}
	if cfg.EquationNumbers {
		t.Error("Expected EquationNumbers to default to false")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "pandoc json input",
			mutate:  func(c *Config) { c.InputFormat = "pandoc-json" },
			wantErr: false,
		},
		{
			name:    "unknown input format",
			mutate:  func(c *Config) { c.InputFormat = "rst" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "tab indent",
			mutate:  func(c *Config) { c.Indent = "\t" },
			wantErr: false,
		},
		{
			name:    "non-whitespace indent",
			mutate:  func(c *Config) { c.Indent = "--" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func overrideConfigPath(t *testing.T, path string) {
	t.Helper()
	original := ConfigPath
	ConfigPath = func() string { return path }
	t.Cleanup(func() { ConfigPath = original })
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "nested", "config.json")
	overrideConfigPath(t, testConfigPath)

	testCfg := DefaultConfig()
	testCfg.InputFormat = "pandoc-json"
	testCfg.EquationNumbers = true
	testCfg.TitleFromMetadata = false
	testCfg.LogLevel = "debug"

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.Format() != parser.PandocJSON {
		t.Errorf("Format() = %v, want %v", loadedCfg.Format(), parser.PandocJSON)
	}
	opts := loadedCfg.ConvertOptions()
	if !opts.EquationNumbers || opts.TitleFromMetadata {
		t.Errorf("ConvertOptions() = %+v, want equation numbers on and title off", opts)
	}
	if loadedCfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", loadedCfg.LogLevel)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	overrideConfigPath(t, filepath.Join(t.TempDir(), "nonexistent.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if !cfg.TitleFromMetadata {
		t.Error("Expected default config from Load() on missing file")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	overrideConfigPath(t, path)

	if err := os.WriteFile(path, []byte(`{"equation_numbers": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.EquationNumbers {
		t.Error("equation_numbers from file was not applied")
	}
	if !cfg.TitleFromMetadata || cfg.LogLevel != "warn" || cfg.Indent != "  " {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	overrideConfigPath(t, path)

	if err := os.WriteFile(path, []byte(`{"log_level": "loud"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() should reject an invalid log_level")
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "tilde only", input: "~", want: homeDir},
		{name: "tilde expansion", input: "~/notionbridge.log", want: filepath.Join(homeDir, "notionbridge.log")},
		{name: "absolute path", input: "/tmp/test.log", want: "/tmp/test.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
