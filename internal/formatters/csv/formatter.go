// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"registry-parser/internal/events"
	"registry-parser/internal/formatters"
	"registry-parser/internal/parser"
)

// Formatter implements CSV output formatting, one row per event.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Flat CSV output, one row per extracted event"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// kindOrder fixes the row ordering across runs.
var kindOrder = []events.Kind{
	events.KindOfficers,
	events.KindNotices,
	events.KindLabels,
	events.KindFlags,
	events.KindErrors,
}

func (f *Formatter) Format(result parser.Result, options formatters.FormatterOptions) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"kind", "class", "text", "detail"}); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, kind := range kindOrder {
		for _, rec := range result[kind] {
			if err := w.Write(row(kind, rec)); err != nil {
				return "", fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// row flattens one serialized record into the four CSV columns.
func row(kind events.Kind, rec map[string]any) []string {
	class := str(rec["class"])
	if class == "" {
		class = str(rec["label"])
	}
	if class == "" {
		class = str(rec["kls"])
	}

	detail := str(rec["flag"])
	if payload, ok := rec["payload"].(map[string]any); ok {
		detail = flatten(payload)
	}

	return []string{string(kind), class, str(rec["text"]), detail}
}

func str(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// flatten renders a payload map as "key=value" pairs in key order.
func flatten(payload map[string]any) string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%s=%v", k, payload[k])
	}
	return buf.String()
}

func init() {
	formatters.Register(NewFormatter())
}
