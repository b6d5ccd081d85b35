// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"registry-parser/internal/pipeline"
)

var parseAddFederalState bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <infile> <outdir>",
	Short: "Parse a gzipped JSONL dump into per-notice result files",
	Long: `Parse processes every record of a scraped notice dump (jsonlines,
gzipped) and writes one JSON file per notice into the output directory,
each holding the original record next to the extracted events. Existing
JSON files in the output directory are removed first.

Statistics about the run are written alongside the results as
__detailed_stats.csv, __detailed_stats.txt and __global_stats.json.`,
	Args: cobra.ExactArgs(2),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseAddFederalState, "add-federal-state", false, "suffix output filenames with the notice's federal state")
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := newParser()
	if err != nil {
		return err
	}

	addFederalState := parseAddFederalState || cfg.Parse.AddFederalState

	var log io.Writer = io.Discard
	if verbose {
		log = os.Stderr
	}

	return pipeline.ParseRun(p, args[0], args[1], pipeline.ParseOptions{
		AddFederalState: addFederalState,
		Log:             log,
	})
}
