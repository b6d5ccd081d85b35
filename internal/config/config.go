// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the application configuration from YAML files in
// standard locations. Command-line flags override config values, which
// override built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Paths to external reference data
	Paths struct {
		Gazetteer string `yaml:"gazetteer"` // city list file; empty uses the embedded list
	} `yaml:"paths"`

	// Sampling defaults for the sample operation
	Sample struct {
		NumRecords       int     `yaml:"num_records"`
		PercentRelocated float64 `yaml:"percent_relocated"`
		PercentOfficers  float64 `yaml:"percent_officers"`
	} `yaml:"sample"`

	// Parse operation settings
	Parse struct {
		AddFederalState bool `yaml:"add_federal_state"` // suffix output filenames with the federal state
	} `yaml:"parse"`

	// Engine limits
	Limits struct {
		// MaxClauseLen caps clause length before rule matching to fence
		// pathological regex inputs. 0 disables the cap.
		MaxClauseLen int `yaml:"max_clause_len"`
	} `yaml:"limits"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{}
	config.Defaults.Format = "json"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Sample.NumRecords = 1000
	config.Sample.PercentRelocated = 20
	config.Sample.PercentOfficers = 60
	config.Limits.MaxClauseLen = 0

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks values a typo would silently break
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "json", "text", "csv":
	default:
		return fmt.Errorf("unknown output format %q", config.Defaults.Format)
	}
	if config.Sample.NumRecords < 0 {
		return fmt.Errorf("sample.num_records must not be negative")
	}
	if config.Sample.PercentRelocated < 0 || config.Sample.PercentOfficers < 0 ||
		config.Sample.PercentRelocated+config.Sample.PercentOfficers > 100 {
		return fmt.Errorf("sample percentages must be non-negative and sum to at most 100")
	}
	if config.Limits.MaxClauseLen < 0 {
		return fmt.Errorf("limits.max_clause_len must not be negative")
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	for _, name := range []string{
		"registry-parser.yaml",
		"registry-parser.yml",
		".registry-parser.yaml",
		".registry-parser.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	// Check the user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(configDir, "registry-parser", "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
