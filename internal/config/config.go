// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/c7harry/bayform/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	StorePath   string `json:"store_path,omitempty"`   // Path to the JSON resume store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (overrides store_path)
	RedisAddr   string `json:"redis_addr,omitempty"`   // Redis address for the render cache

	// Output
	OutputDir string `json:"output_dir,omitempty"` // Directory for rendered files

	// Rendering defaults
	PDFTemplate   string `json:"pdf_template,omitempty"`   // Default PDF template name
	LaTeXTemplate string `json:"latex_template,omitempty"` // Default LaTeX template name

	// Server
	ServerAddr string `json:"server_addr,omitempty"` // Listen address for the HTTP API

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration used when neither a config
// file nor a flag supplies a value.
func Defaults() Config {
	return Config{
		StorePath:     "bayform.json",
		OutputDir:     ".",
		PDFTemplate:   string(types.PDFModern),
		LaTeXTemplate: string(types.LaTeXModern),
		ServerAddr:    ":8080",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.PDFTemplate != "" {
		if _, err := types.ParsePDFTemplate(c.PDFTemplate); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.LaTeXTemplate != "" {
		if _, err := types.ParseLaTeXTemplate(c.LaTeXTemplate); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.PDFTemplate == "" {
		result.PDFTemplate = defaults.PDFTemplate
	}
	if result.LaTeXTemplate == "" {
		result.LaTeXTemplate = defaults.LaTeXTemplate
	}
	if result.ServerAddr == "" {
		result.ServerAddr = defaults.ServerAddr
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
