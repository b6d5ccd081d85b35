// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gazetteer holds the reference list of known city names used to
// trim noisy location captures. The list is loaded once and is read-only
// afterwards, so a single Gazetteer is safe to share across parses.
package gazetteer

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed cities.txt
var defaultCities string

// Gazetteer is a normalized set of known city names.
type Gazetteer struct {
	known map[string]struct{}
}

// New builds a Gazetteer from a flat list of city names.
func New(names []string) *Gazetteer {
	g := &Gazetteer{known: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if key := normalizeKey(name); key != "" {
			g.known[key] = struct{}{}
		}
	}
	return g
}

// Default returns the Gazetteer built from the embedded city list.
func Default() *Gazetteer {
	return New(strings.Split(defaultCities, "\n"))
}

// Load reads a city list from path, one name per line. An empty path
// falls back to the embedded default list.
func Load(path string) (*Gazetteer, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading gazetteer: %w", err)
	}
	return New(strings.Split(string(data), "\n")), nil
}

// Len returns the number of distinct normalized entries.
func (g *Gazetteer) Len() int {
	return len(g.known)
}

// Contains reports whether the candidate matches a known city name after
// case, diacritic and punctuation normalization.
func (g *Gazetteer) Contains(candidate string) bool {
	_, ok := g.known[normalizeKey(candidate)]
	return ok
}

// CleanCapture trims a raw anchor-regex capture word-by-word from the
// right until the remaining prefix is a known city, stripping trailing
// noise like street suffixes and registry codes. When no prefix matches,
// the first word is used as a last resort.
func (g *Gazetteer) CleanCapture(raw string) string {
	words := strings.Fields(strings.Trim(raw, " ,;.:()"))
	if len(words) == 0 {
		return ""
	}
	for n := len(words); n >= 1; n-- {
		prefix := strings.Join(words[:n], " ")
		if g.Contains(prefix) {
			return prefix
		}
	}
	return strings.Trim(words[0], ",;.:()")
}

// normalizeKey lowercases, strips diacritics and drops everything but
// letters, digits and single internal spaces.
func normalizeKey(s string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}
