// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/olekukonko/tablewriter"
)

// Counters tallies named counts for one notice.
type Counters map[string]int

// Stats accumulates per-notice counters over a parse run.
type Stats struct {
	perNotice map[string]Counters
}

// NewStats creates an empty accumulator.
func NewStats() *Stats {
	return &Stats{perNotice: make(map[string]Counters)}
}

// Add increments a counter for a notice.
func (s *Stats) Add(noticeID, name string, delta int) {
	c, ok := s.perNotice[noticeID]
	if !ok {
		c = make(Counters)
		s.perNotice[noticeID] = c
	}
	c[name] += delta
}

// Global rolls all per-notice counters into one.
func (s *Stats) Global() Counters {
	global := make(Counters)
	for _, c := range s.perNotice {
		for name, v := range c {
			global[name] += v
		}
	}
	return global
}

// columns returns every counter name seen across all notices, sorted.
func (s *Stats) columns() []string {
	seen := map[string]bool{}
	for _, c := range s.perNotice {
		for name := range c {
			seen[name] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for name := range seen {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// sortedNoticeIDs orders notice IDs naturally, so notice 9 precedes
// notice 10.
func (s *Stats) sortedNoticeIDs() []string {
	ids := make([]string, 0, len(s.perNotice))
	for id := range s.perNotice {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

// WriteReports writes the three statistics artifacts into outDir:
// a per-notice CSV, the same table rendered as text, and a global
// JSON roll-up.
func (s *Stats) WriteReports(outDir string) error {
	cols := s.columns()
	ids := s.sortedNoticeIDs()

	header := append([]string{"notice_id"}, cols...)
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		row := make([]string, 0, len(header))
		row = append(row, id)
		for _, col := range cols {
			if v, ok := s.perNotice[id][col]; ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	if err := writeDetailedCSV(filepath.Join(outDir, "__detailed_stats.csv"), header, rows); err != nil {
		return err
	}
	if err := writeDetailedTable(filepath.Join(outDir, "__detailed_stats.txt"), header, rows); err != nil {
		return err
	}
	return writeGlobalJSON(filepath.Join(outDir, "__global_stats.json"), s.Global())
}

func writeDetailedCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stats CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing stats header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing stats row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeDetailedTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stats table: %w", err)
	}
	defer f.Close()

	table := tablewriter.NewWriter(f)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func writeGlobalJSON(path string, global Counters) error {
	data, err := json.MarshalIndent(global, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding global stats: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing global stats: %w", err)
	}
	return nil
}
