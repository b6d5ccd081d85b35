// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline implements the batch operations over scraped notice
// dumps: sampling a balanced subset and parsing a whole dump into
// per-notice result files with statistics.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/gjson"

	"registry-parser/internal/parser"
)

// maxLineBytes bounds a single JSONL record. Notices run to a few KB;
// this leaves generous headroom for the largest dumps seen so far.
const maxLineBytes = 4 * 1024 * 1024

// Record is one line of a notice dump: the decoded document plus the
// raw JSON it came from, kept verbatim for passthrough output.
type Record struct {
	Doc parser.Document
	Raw []byte
}

// Reader streams records from a gzipped JSONL notice dump.
type Reader struct {
	f       *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
}

// OpenDump opens a gzipped JSONL dump for streaming reads.
func OpenDump(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading gzip header: %w", err)
	}
	return &Reader{f: f, gz: gz, scanner: newLineScanner(gz)}, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	return scanner
}

// Next returns the next record. It returns io.EOF after the last line.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		line := r.scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		raw := make([]byte, len(line))
		copy(raw, line)
		return Record{Doc: decodeDocument(raw), Raw: raw}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("reading dump line: %w", err)
	}
	return Record{}, io.EOF
}

// Reset rewinds the reader to the start of the dump for a second pass.
func (r *Reader) Reset() error {
	if _, err := r.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding dump: %w", err)
	}
	if err := r.gz.Reset(r.f); err != nil {
		return fmt.Errorf("resetting gzip stream: %w", err)
	}
	r.scanner = newLineScanner(r.gz)
	return nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	r.gz.Close()
	return r.f.Close()
}

// decodeDocument pulls the document fields out of one raw JSON record.
// Scraped dumps are inconsistent about notice_id being a number or a
// string, so fields are probed individually instead of unmarshalled
// into a struct.
func decodeDocument(raw []byte) parser.Document {
	return parser.Document{
		FullText:     gjson.GetBytes(raw, "full_text").String(),
		EventType:    gjson.GetBytes(raw, "event_type").String(),
		NoticeID:     gjson.GetBytes(raw, "notice_id").String(),
		FederalState: gjson.GetBytes(raw, "federal_state").String(),
	}
}
