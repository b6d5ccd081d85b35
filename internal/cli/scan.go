// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"registry-parser/internal/formatters"
	_ "registry-parser/internal/formatters/csv"
	_ "registry-parser/internal/formatters/json"
	_ "registry-parser/internal/formatters/text"
	"registry-parser/internal/parser"
	"registry-parser/internal/preprocessors"
)

var (
	scanEventType string
	scanOutput    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Parse one or more notice files and print the extracted events",
	Long: `Scan parses individual registry notices from plain-text or PDF files
and prints the extracted events in the selected output format. Pass "-"
to read a single notice from stdin.

Example:
  registry-parser scan notice.txt
  registry-parser scan --event-type Neueintragung --format text notice.pdf
  cat notice.txt | registry-parser scan -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanEventType, "event-type", "", "registry event type of the notice (e.g. Neueintragung, Veränderung, Löschung)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write output to file instead of stdout (single input only)")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output supports a single input file")
	}

	p, err := newParser()
	if err != nil {
		return err
	}

	options := formatters.FormatterOptions{Verbose: verbose, NoColor: noColor}

	for _, arg := range args {
		text, name, err := readNotice(arg)
		if err != nil {
			return err
		}

		result, _ := p.ParseDocument(parser.Document{
			FullText:  text,
			EventType: scanEventType,
			NoticeID:  name,
		})

		rendered, err := formatters.Export(outputFormat, result, options)
		if err != nil {
			return err
		}

		if scanOutput != "" {
			if err := os.WriteFile(scanOutput, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
			continue
		}
		if len(args) > 1 {
			fmt.Printf("==> %s <==\n", arg)
		}
		fmt.Println(rendered)
	}
	return nil
}

// readNotice loads notice text from a file argument, with "-" meaning
// stdin.
func readNotice(arg string) (text, name string, err error) {
	if arg == "-" {
		text, err = preprocessors.ReadAll(os.Stdin)
		return text, "stdin", err
	}
	if !preprocessors.CanProcess(arg) {
		return "", "", fmt.Errorf("unsupported notice file type: %s", arg)
	}
	text, err = preprocessors.ReadNoticeText(arg)
	return text, arg, err
}
