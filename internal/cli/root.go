// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli wires the command-line surface: one subcommand per major
// operation, all sharing the flag and configuration handling here.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"registry-parser/internal/config"
	"registry-parser/internal/gazetteer"
	"registry-parser/internal/observability"
	"registry-parser/internal/parser"
	"registry-parser/internal/rules"
	"registry-parser/internal/sentences"
	"registry-parser/internal/version"
)

var (
	cfgFile      string
	verbose      bool
	debug        bool
	noColor      bool
	outputFormat string

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "registry-parser",
	Short: "Extract structured events from German commercial registry notices",
	Long: `registry-parser turns the free-text publications of the German
commercial registry (Handelsregister) into structured records: appointed
and dismissed officers, procuration changes, and seat relocations with
links to predecessor and successor registrations.

It operates on single notice files, on stdin, or in batch on gzipped
JSONL dumps of scraped notices.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfiguration,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: registry-parser.yaml in standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "step-by-step debug tracing on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (json, text, csv)")

	rootCmd.AddCommand(versionCmd)
}

// loadConfiguration resolves the config file and overlays any flags the
// user set explicitly.
func loadConfiguration(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}

	if !cmd.Flags().Changed("verbose") {
		verbose = cfg.Defaults.Verbose
	}
	if !cmd.Flags().Changed("debug") {
		debug = cfg.Defaults.Debug
	}
	if !cmd.Flags().Changed("no-color") {
		noColor = cfg.Defaults.NoColor
	}
	if outputFormat == "" {
		outputFormat = cfg.Defaults.Format
	}
	return nil
}

// newParser assembles the shared document parser from configuration.
func newParser() (*parser.Parser, error) {
	gaz := gazetteer.Default()
	if cfg.Paths.Gazetteer != "" {
		loaded, err := gazetteer.Load(cfg.Paths.Gazetteer)
		if err != nil {
			return nil, fmt.Errorf("loading gazetteer: %w", err)
		}
		gaz = loaded
	}

	splitter, err := sentences.NewGerman()
	if err != nil {
		return nil, err
	}

	p := parser.New(rules.BuildTable(), splitter, gaz)
	p.SetClauseCap(cfg.Limits.MaxClauseLen)

	if debug {
		debugObserver := observability.NewDebugObserver(os.Stderr)
		debugObserver.StandardObserver.DebugObserver = debugObserver
		p.SetObserver(debugObserver.StandardObserver)
	} else if verbose {
		p.SetObserver(observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr))
	}
	return p, nil
}
