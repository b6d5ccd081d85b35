// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"registry-parser/internal/events"
	"registry-parser/internal/parser"
	"registry-parser/internal/person"
)

// ParseOptions controls a batch parse run.
type ParseOptions struct {
	// AddFederalState suffixes each output filename with the notice's
	// federal state, for dumps where notice IDs repeat across states.
	AddFederalState bool
	Log             io.Writer // progress output; nil discards
}

// noticeOutput is the shape of one per-notice result file: the
// original record verbatim next to what was extracted from it.
type noticeOutput struct {
	Orig   json.RawMessage `json:"orig"`
	Parsed parser.Result   `json:"parsed"`
}

// ParseRun parses every record of a gzipped JSONL dump, writing one
// JSON file per notice into outDir plus statistics artifacts. Existing
// JSON files in outDir are removed first.
func ParseRun(p *parser.Parser, inPath, outDir string, opts ParseOptions) error {
	outDir, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := wipeResults(outDir); err != nil {
		return err
	}

	log := opts.Log
	if log == nil {
		log = io.Discard
	}

	reader, err := OpenDump(inPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	stats := NewStats()
	parsed := 0

	bar := progressbar.Default(-1, "parsing notices")
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		bar.Add(1)

		result, _ := p.ParseDocument(rec.Doc)
		noticeID := rec.Doc.NoticeID
		updateStats(stats, noticeID, rec.Doc.FullText, result)

		name := noticeID + ".json"
		if opts.AddFederalState {
			name = fmt.Sprintf("%s_%s.json", noticeID, rec.Doc.FederalState)
		}
		if err := writeNoticeFile(filepath.Join(outDir, name), rec.Raw, result); err != nil {
			return err
		}
		parsed++
	}
	bar.Finish()

	fmt.Fprintf(log, "parsed %d notices into %s\n", parsed, outDir)
	return stats.WriteReports(outDir)
}

// updateStats records per-kind counts and the quality flags for one
// parsed notice.
func updateStats(stats *Stats, noticeID, fullText string, result parser.Result) {
	if result.Empty() {
		stats.Add(noticeID, "got_no_persons", 1)
		stats.Add(noticeID, "got_nothing", 1)
		return
	}

	for kind, recs := range result {
		stats.Add(noticeID, string(kind), len(recs))
	}

	// More date-of-birth markers in the raw text than extracted
	// officers means somebody slipped through.
	if person.CountDOBMarkers(fullText) > result.Count(events.KindOfficers) {
		stats.Add(noticeID, "might_have_unparsed_persons", 1)
	}
	if result.Count(events.KindOfficers) == 0 {
		stats.Add(noticeID, "got_no_persons", 1)
	}
}

func writeNoticeFile(path string, raw []byte, result parser.Result) error {
	if result == nil {
		result = parser.Result{}
	}
	data, err := json.MarshalIndent(noticeOutput{Orig: raw, Parsed: result}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding notice result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing notice result: %w", err)
	}
	return nil
}

// wipeResults removes JSON files left over from a previous run so
// stale results never mix with fresh ones.
func wipeResults(outDir string) error {
	matches, err := filepath.Glob(filepath.Join(outDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing previous results: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("removing previous result: %w", err)
		}
	}
	return nil
}
