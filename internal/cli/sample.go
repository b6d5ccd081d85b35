// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"registry-parser/internal/pipeline"
)

var (
	sampleNumRecords       int
	samplePercentRelocated float64
	samplePercentOfficers  float64
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <infile> <outfile>",
	Short: "Draw a weighted random sample from a gzipped JSONL dump",
	Long: `Sample reads a scraped notice dump (jsonlines, gzipped) and writes a
random subset of the requested size, also gzipped. Records that mention
seat relocations and records that name officers are oversampled so the
rare cases are represented in evaluation sets.`,
	Args: cobra.ExactArgs(2),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleNumRecords, "num-records", 0, "number of records to sample")
	sampleCmd.Flags().Float64Var(&samplePercentRelocated, "percent-relocated", -1, "percentage of sampled records with relocation signs")
	sampleCmd.Flags().Float64Var(&samplePercentOfficers, "percent-officers", -1, "percentage of sampled records naming officers")
}

func runSample(cmd *cobra.Command, args []string) error {
	opts := pipeline.SampleOptions{
		NumRecords:       cfg.Sample.NumRecords,
		PercentRelocated: cfg.Sample.PercentRelocated,
		PercentOfficers:  cfg.Sample.PercentOfficers,
	}
	if sampleNumRecords > 0 {
		opts.NumRecords = sampleNumRecords
	}
	if samplePercentRelocated >= 0 {
		opts.PercentRelocated = samplePercentRelocated
	}
	if samplePercentOfficers >= 0 {
		opts.PercentOfficers = samplePercentOfficers
	}

	var log io.Writer = io.Discard
	if verbose {
		log = os.Stderr
	}
	opts.Log = log

	return pipeline.Sample(args[0], args[1], opts)
}
