// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"registry-parser/internal/events"
	"registry-parser/internal/formatters"
	"registry-parser/internal/parser"
)

// Formatter implements human-readable terminal output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable output for terminal display"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// sectionOrder fixes the display order of event kinds.
var sectionOrder = []events.Kind{
	events.KindOfficers,
	events.KindNotices,
	events.KindLabels,
	events.KindFlags,
	events.KindErrors,
}

func (f *Formatter) Format(result parser.Result, options formatters.FormatterOptions) (string, error) {
	headerColor := color.New(color.FgCyan, color.Bold)
	classColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)
	if options.NoColor {
		headerColor.DisableColor()
		classColor.DisableColor()
		errorColor.DisableColor()
	}

	var b strings.Builder
	separator := strings.Repeat("-", terminalWidth())

	total := 0
	for _, kind := range sectionOrder {
		records := result[kind]
		if len(records) == 0 {
			continue
		}
		total += len(records)

		headerColor.Fprintf(&b, "%s (%d)\n", strings.ToUpper(string(kind)), len(records))
		b.WriteString(separator + "\n")

		for _, rec := range records {
			switch kind {
			case events.KindErrors:
				errorColor.Fprintf(&b, "  %v: %v\n", rec["kls"], rec["text"])
			case events.KindFlags:
				fmt.Fprintf(&b, "  %v\n", rec["flag"])
				if options.Verbose {
					fmt.Fprintf(&b, "    text: %v\n", rec["text"])
				}
			case events.KindLabels:
				fmt.Fprintf(&b, "  %v:%v\n", rec["label"], rec["text"])
			default:
				classColor.Fprintf(&b, "  %v\n", rec["class"])
				if payload, ok := rec["payload"].(map[string]any); ok {
					writePayload(&b, payload)
				} else {
					writePayload(&b, noticePayload(rec))
				}
				if options.Verbose {
					fmt.Fprintf(&b, "    text: %v\n", rec["text"])
				}
			}
		}
		b.WriteString("\n")
	}

	if total == 0 {
		return "No events extracted.\n", nil
	}
	return b.String(), nil
}

// writePayload prints payload fields in key order.
func writePayload(b *strings.Builder, payload map[string]any) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "    %s: %v\n", k, payload[k])
	}
}

// noticePayload collects the notice fields that live at the record's top
// level rather than under a payload key.
func noticePayload(rec map[string]any) map[string]any {
	payload := make(map[string]any)
	for k, v := range rec {
		if k == "class" || k == "text" {
			continue
		}
		payload[k] = v
	}
	return payload
}

// terminalWidth returns the current terminal width, falling back to 80
// columns when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > 120 {
		return 80
	}
	return width
}

func init() {
	formatters.Register(NewFormatter())
}
