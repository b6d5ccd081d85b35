// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/schollz/progressbar/v3"

	"registry-parser/internal/person"
)

// relocationSign pairs a cheap substring probe with the regex that
// confirms it. The probe keeps regex evaluation off the hot path for
// the vast majority of lines.
type relocationSign struct {
	name    string
	probe   string
	re      *regexp.Regexp
	penalty float64 // keep probability; 1.0 keeps every hit
}

// relocationSigns mark lines that likely reference a predecessor or
// successor registration. "nun" is far too common a German word, so
// only a fraction of its hits are kept.
var relocationSigns = []relocationSign{
	{"sitzverlegung", "sitzverlegung", regexp.MustCompile(`\bsitzverlegung\b`), 1.0},
	{"verlecht", "verlecht", regexp.MustCompile(`\bverlecht\b`), 1.0},
	{"nun", "nun", regexp.MustCompile(`\bnun\b`), 0.2},
	{"bisher", "bisher", regexp.MustCompile(`\bbisher\b`), 1.0},
	{"jetzt", "jetzt", regexp.MustCompile(`\bjetzt\b`), 1.0},
	{"nach", "nach", regexp.MustCompile(`\bnach.{1,8}amtsgericht\b`), 1.0},
}

// SampleOptions controls the composition of the sampled output.
type SampleOptions struct {
	NumRecords       int
	PercentRelocated float64
	PercentOfficers  float64
	Log              io.Writer // progress and bucket summaries; nil discards
}

// Sample draws a weighted random subset from a gzipped JSONL dump and
// writes it to outPath, also gzipped. Relocation-bearing and
// officer-bearing records are oversampled according to the options so
// downstream evaluation sets cover the rare cases.
func Sample(inPath, outPath string, opts SampleOptions) error {
	log := opts.Log
	if log == nil {
		log = io.Discard
	}

	numUsual := round(float64(opts.NumRecords) * (100 - opts.PercentRelocated - opts.PercentOfficers) / 100)
	numRelocated := round(float64(opts.NumRecords) * opts.PercentRelocated / 100)
	numOfficers := round(float64(opts.NumRecords) * opts.PercentOfficers / 100)

	reader, err := OpenDump(inPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	var relocated, officers [][]byte
	signUsage := map[string]int{}
	plainLines := 0

	bar := progressbar.Default(-1, "classifying records")
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		bar.Add(1)

		if sign, ok := matchRelocationSign(rec.Raw); ok {
			signUsage[sign]++
			relocated = append(relocated, rec.Raw)
			continue
		}
		if person.CountDOBMarkers(string(rec.Raw)) > 0 {
			officers = append(officers, rec.Raw)
			continue
		}
		plainLines++
	}
	bar.Finish()

	logSignUsage(log, signUsage)

	// Second pass: keeping every plain line in memory would dwarf the
	// other buckets, so collect roughly twice the needed count instead.
	var usual [][]byte
	if plainLines > 0 && numUsual > 0 {
		if err := reader.Reset(); err != nil {
			return err
		}
		keepProb := 2 * float64(numUsual) / float64(plainLines)

		bar = progressbar.Default(-1, "collecting plain records")
		for {
			rec, err := reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			bar.Add(1)

			if rand.Float64() < keepProb {
				usual = append(usual, rec.Raw)
			}
		}
		bar.Finish()
	}

	fmt.Fprintf(log, "usual: want %d, population %d\n", numUsual, plainLines)
	fmt.Fprintf(log, "relocated: want %d, population %d\n", numRelocated, len(relocated))
	fmt.Fprintf(log, "officers: want %d, population %d\n", numOfficers, len(officers))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating sample file: %w", err)
	}
	defer out.Close()
	gz := gzip.NewWriter(out)

	for _, bucket := range [][][]byte{
		drawFrom(usual, numUsual),
		drawFrom(relocated, numRelocated),
		drawFrom(officers, numOfficers),
	} {
		for _, line := range bucket {
			if _, err := gz.Write(line); err != nil {
				return fmt.Errorf("writing sample: %w", err)
			}
			if _, err := gz.Write([]byte("\n")); err != nil {
				return fmt.Errorf("writing sample: %w", err)
			}
		}
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("finishing sample: %w", err)
	}
	return nil
}

// matchRelocationSign reports the first relocation sign a raw record
// matches, honoring each sign's keep probability.
func matchRelocationSign(raw []byte) (string, bool) {
	lower := strings.ToLower(string(raw))
	for _, sign := range relocationSigns {
		if !strings.Contains(lower, sign.probe) || !sign.re.MatchString(lower) {
			continue
		}
		if rand.Float64() <= sign.penalty {
			return sign.name, true
		}
	}
	return "", false
}

// drawFrom samples n lines without replacement, clamping to the bucket
// size when the dump has fewer matching records than requested.
func drawFrom(bucket [][]byte, n int) [][]byte {
	if n > len(bucket) {
		n = len(bucket)
	}
	rand.Shuffle(len(bucket), func(i, j int) {
		bucket[i], bucket[j] = bucket[j], bucket[i]
	})
	return bucket[:n]
}

func logSignUsage(log io.Writer, usage map[string]int) {
	names := make([]string, 0, len(usage))
	for name := range usage {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(log, "sign %s: %d\n", name, usage[name])
	}
}

func round(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}
