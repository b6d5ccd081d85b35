// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected default format=json, got %q", cfg.Defaults.Format)
	}
	if cfg.Sample.NumRecords != 1000 {
		t.Errorf("expected default num_records=1000, got %d", cfg.Sample.NumRecords)
	}
	if cfg.Sample.PercentRelocated != 20 || cfg.Sample.PercentOfficers != 60 {
		t.Errorf("unexpected sample percentages: %+v", cfg.Sample)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: csv
  verbose: true
sample:
  num_records: 50
limits:
  max_clause_len: 2000
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "csv" {
		t.Errorf("expected format=csv, got %q", cfg.Defaults.Format)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Sample.NumRecords != 50 {
		t.Errorf("expected num_records=50, got %d", cfg.Sample.NumRecords)
	}
	if cfg.Limits.MaxClauseLen != 2000 {
		t.Errorf("expected max_clause_len=2000, got %d", cfg.Limits.MaxClauseLen)
	}
	// Unset values keep their defaults
	if cfg.Sample.PercentOfficers != 60 {
		t.Errorf("expected default percent_officers=60, got %v", cfg.Sample.PercentOfficers)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte("defaults: ["), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"unknown format", func(c *Config) { c.Defaults.Format = "xml" }, true},
		{"negative records", func(c *Config) { c.Sample.NumRecords = -1 }, true},
		{"percent overflow", func(c *Config) { c.Sample.PercentRelocated = 60; c.Sample.PercentOfficers = 60 }, true},
		{"negative percent", func(c *Config) { c.Sample.PercentRelocated = -5 }, true},
		{"negative clause cap", func(c *Config) { c.Limits.MaxClauseLen = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig("")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(cfg)
			if err := ValidateConfig(cfg); (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
