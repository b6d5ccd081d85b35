// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalizer locates the useful portion of a raw registry notice
// and applies the fixed textual substitutions the downstream rule table
// relies on.
package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"registry-parser/internal/events"
)

// usefulRegex matches the date heading that separates the notice header
// from the body when the event type is not present verbatim.
var usefulRegex = regexp.MustCompile(`(?m)\d{2}\.\d{2}\.\d{4}\n\n`)

// substitution is a single ordered literal replacement
type substitution struct {
	from string
	to   string
}

// buildSubstitutions returns the fixed, ordered substitution list.
// Every replacement is chosen so that re-running the list over already
// substituted text changes nothing.
func buildSubstitutions() []substitution {
	subs := []substitution{
		{"Dr.", "Doctor"},
		{"Prof.", "Professor"},
		{"geb.", "geborene"},
	}

	// Numbered list markers confuse both the sentence splitter and the
	// DOB scanner; ": 3." becomes ": 3)".
	for i := 1; i <= 9; i++ {
		subs = append(subs, substitution{
			from: fmt.Sprintf(": %d.", i),
			to:   fmt.Sprintf(": %d)", i),
		})
	}
	return subs
}

// Normalizer finds the useful text of a notice and rewrites known
// abbreviations. Build once, safe for concurrent use.
type Normalizer struct {
	subs []substitution
}

// New returns a Normalizer with the fixed substitution list compiled in.
func New() *Normalizer {
	return &Normalizer{subs: buildSubstitutions()}
}

// Result holds the normalized useful text plus any recovered errors.
type Result struct {
	Text   string
	Errors []events.Error
}

// Normalize extracts the useful portion of fullText and applies the
// substitution list. A missing event-type boundary is recorded as a
// NormalizationError and the whole text is used instead.
func (n *Normalizer) Normalize(fullText, eventType string) Result {
	res := Result{}

	useful := fullText
	switch {
	case eventType != "" && strings.Contains(fullText, eventType):
		_, after, _ := strings.Cut(fullText, eventType)
		useful = after
	default:
		if loc := usefulRegex.FindStringIndex(fullText); loc != nil {
			useful = fullText[loc[1]:]
		} else {
			res.Errors = append(res.Errors, events.Error{
				Kls:  "NormalizationError",
				Text: fmt.Sprintf("cannot locate event-type boundary in text %q", fullText),
			})
		}
	}

	for _, sub := range n.subs {
		useful = strings.ReplaceAll(useful, sub.from, sub.to)
	}

	res.Text = useful
	return res
}

// NormalizeClause collapses a clause into space-separated Unicode word
// segments, so that punctuation is uniformly set off by single spaces
// ("Geschäftsführer:" becomes "Geschäftsführer :"). The operation is
// idempotent: normalizing normalized text returns it unchanged.
func NormalizeClause(clause string) string {
	var b strings.Builder
	tokens := words.FromString(clause)
	for tokens.Next() {
		tok := strings.TrimSpace(tokens.Value())
		if tok == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}
