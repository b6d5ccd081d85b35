// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package relocation extracts company seat relocation notices from
// clause text: move origin, destination, registry court and number, plus
// the predecessor/successor direction of the registration.
package relocation

import (
	"fmt"
	"regexp"
	"strings"

	"registry-parser/internal/events"
	"registry-parser/internal/gazetteer"
)

var (
	// Combined predecessor anchor: origin, court, registry number and
	// destination in one pass, e.g.
	// "von Köln ( Amtsgericht Köln HRB 12345 ) nach München".
	combinedPredecessorRegex = regexp.MustCompile(
		`(?i)\bvon\s+(.+?)\s*\(\s*(?:AG|Amtsgericht)\s+(.+?)\s+(HR\s?[AB]|VR|GnR|PR)\s*(\d+)\s*\)\s*nach\s+([^,;.]+)`)

	originRegex   = regexp.MustCompile(`(?i)\bvon\s+(?:dem\s+)?(?:AG\s+|Amtsgericht\s+)?([^,;.()]+)`)
	destRegex     = regexp.MustCompile(`(?i)\bnach\s+(?:dem\s+)?(?:AG\s+|Amtsgericht\s+)?([^,;.()]+)`)
	newSeatRegex  = regexp.MustCompile(`(?i)\bneuer\s+sitz\s*:\s*([^,;.()]+)`)
	courtRegex    = regexp.MustCompile(`(?i)\b(?:AG|Amtsgericht)\s+([^,;.()0-9]+)`)
	registryRegex = regexp.MustCompile(`(?i)\b(HR\s?[AB]|VR|GnR|PR)\s*(\d+)`)

	successorMarkerRegex   = regexp.MustCompile(`(?i)\b(?:jetzt|nun|nunmehr)\b`)
	predecessorMarkerRegex = regexp.MustCompile(`(?i)\bbisher\b`)
)

// Category is the relocation direction implied by the enclosing
// document's declared event category.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNewRegistration
	CategoryDeletion
)

// CategoryFromEventType derives the Category from a document event type.
func CategoryFromEventType(eventType string) Category {
	lower := strings.ToLower(eventType)
	switch {
	case strings.Contains(lower, "neueintragung"):
		return CategoryNewRegistration
	case strings.Contains(lower, "löschung"):
		return CategoryDeletion
	default:
		return CategoryUnknown
	}
}

// Extractor builds relocation notices from clause text. It is read-only
// after construction and safe for concurrent use.
type Extractor struct {
	gaz *gazetteer.Gazetteer
}

// NewExtractor returns an Extractor backed by the given gazetteer.
func NewExtractor(gaz *gazetteer.Gazetteer) *Extractor {
	return &Extractor{gaz: gaz}
}

// ExtractError reports that no relocation anchor matched the clause.
type ExtractError struct {
	Subtype events.Subtype
	Text    string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("cannot parse a %s from %q: no relocation anchors matched", e.Subtype, e.Text)
}

// Extract builds a notice of the given subtype from clause text. The
// predecessor subtype tries the combined anchor before falling back to
// the independent origin/registry/destination anchors.
func (ex *Extractor) Extract(subtype events.Subtype, clause string, category Category) (events.Notice, error) {
	fields := events.NoticeFields{Registration: events.RegistrationUnknown}

	fromPos, toPos, courtPos := -1, -1, -1

	if subtype == events.PredecessorRelocationNotice {
		if m := combinedPredecessorRegex.FindStringSubmatchIndex(clause); m != nil {
			fields.From = ex.gaz.CleanCapture(slice(clause, m, 1))
			fields.Court = ex.gaz.CleanCapture(slice(clause, m, 2))
			fields.RegistryNumber = formatRegistryNumber(slice(clause, m, 3), slice(clause, m, 4))
			fields.To = ex.gaz.CleanCapture(slice(clause, m, 5))
			fields.UsedRules = append(fields.UsedRules, "pred_combined")
			fromPos, courtPos, toPos = m[2], m[4], m[10]
		}
	}

	if len(fields.UsedRules) == 0 {
		if m := courtRegex.FindStringSubmatchIndex(clause); m != nil {
			fields.Court = ex.gaz.CleanCapture(slice(clause, m, 1))
			fields.UsedRules = append(fields.UsedRules, "court_ag")
			courtPos = m[0]
		}
		if m := originRegex.FindStringSubmatchIndex(clause); m != nil {
			fields.From = ex.gaz.CleanCapture(slice(clause, m, 1))
			fields.UsedRules = append(fields.UsedRules, "origin_von")
			fromPos = m[0]
		}
		if m := destRegex.FindStringSubmatchIndex(clause); m != nil {
			fields.To = ex.gaz.CleanCapture(slice(clause, m, 1))
			fields.UsedRules = append(fields.UsedRules, "dest_nach")
			toPos = m[0]
		} else if m := newSeatRegex.FindStringSubmatchIndex(clause); m != nil {
			fields.To = ex.gaz.CleanCapture(slice(clause, m, 1))
			fields.UsedRules = append(fields.UsedRules, "dest_neuer_sitz")
			toPos = m[0]
		}
		if m := registryRegex.FindStringSubmatch(clause); m != nil {
			fields.RegistryNumber = formatRegistryNumber(m[1], m[2])
			fields.UsedRules = append(fields.UsedRules, "registry_number")
		}
	}

	if len(fields.UsedRules) == 0 {
		return events.Notice{}, &ExtractError{Subtype: subtype, Text: clause}
	}

	ex.classifyDirection(clause, &fields, fromPos, toPos, courtPos)
	markConflict(&fields, category)

	return events.Notice{Subtype: subtype, Text: clause, Fields: fields}, nil
}

// classifyDirection resolves the registration direction. Explicit
// "jetzt/nun/nunmehr" markers pin the successor view. "bisher" points at
// the predecessor view but also shows up in successor-view notices naming
// the former seat, so it stays a fuzzy signal. Without markers the
// direction is inferred from match positions relative to the court match.
func (ex *Extractor) classifyDirection(clause string, fields *events.NoticeFields, fromPos, toPos, courtPos int) {
	switch {
	case successorMarkerRegex.MatchString(clause):
		fields.Registration = events.RegistrationSuccessor
		fields.UsedRules = append(fields.UsedRules, "marker_now")
	case predecessorMarkerRegex.MatchString(clause):
		fields.Registration = events.RegistrationPredecessor
		fields.RegistrationFuzzy = true
		fields.UsedRules = append(fields.UsedRules, "marker_bisher")
	case courtPos >= 0 && toPos > courtPos:
		// The destination is mentioned after this record's court: the
		// court still holds the old registration.
		fields.Registration = events.RegistrationPredecessor
		fields.RegistrationFuzzy = true
		fields.UsedRules = append(fields.UsedRules, "positional")
	case courtPos >= 0 && fromPos > courtPos:
		fields.Registration = events.RegistrationSuccessor
		fields.RegistrationFuzzy = true
		fields.UsedRules = append(fields.UsedRules, "positional")
	}
}

// markConflict flags directions that contradict the enclosing document's
// declared event category. A soft signal for downstream review only.
func markConflict(fields *events.NoticeFields, category Category) {
	switch {
	case category == CategoryNewRegistration && fields.Registration == events.RegistrationPredecessor:
		fields.RegistrationConflict = true
	case category == CategoryDeletion && fields.Registration == events.RegistrationSuccessor:
		fields.RegistrationConflict = true
	}
}

// slice extracts capture group n from FindStringSubmatchIndex output.
func slice(s string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return s[m[2*n]:m[2*n+1]]
}

// formatRegistryNumber canonicalizes a registry number capture
// ("hrb", "12345" becomes "HRB 12345").
func formatRegistryNumber(prefix, number string) string {
	return strings.ToUpper(strings.ReplaceAll(prefix, " ", "")) + " " + number
}
