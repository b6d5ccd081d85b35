// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package person decomposes a free-text person or company description
// into structured fields using comma-chunk heuristics.
package person

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"registry-parser/internal/events"
)

const (
	// Comma splits occasionally mis-partition the text; chunks longer
	// than these thresholds are rejected as likely split failures.
	maxNameLen     = 30
	maxLastnameLen = 60
)

var (
	// dobRegex tolerates stray spaces and a mangled second separator,
	// e.g. "* 01 . 02 . 1980" or "*01.02,1980".
	dobRegex = regexp.MustCompile(`\*\s?\d{2}\s?\.\s?\d{2}\s?.\s?\d{4}`)

	// companyRegex recognizes company descriptions by legal-form or
	// registry-number markers.
	companyRegex = regexp.MustCompile(`(?i)\b(?:gmbh|mbh)\b|\bHR\s?[AB]\s?\d+`)

	refNumRegex = regexp.MustCompile(`^(\d+)\s?\)\s*`)
	digitRegex  = regexp.MustCompile(`\d`)
	digitRuns   = regexp.MustCompile(`\d+`)
)

// ParseError reports that a person could not be constructed from its
// text. It is always recoverable; callers convert it into an Error event.
type ParseError struct {
	Subtype events.Subtype
	Text    string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse a %s from %q: %s", e.Subtype, e.Text, e.Reason)
}

func failf(subtype events.Subtype, text, format string, args ...any) error {
	return &ParseError{Subtype: subtype, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// clean strips the leading/trailing junk a chunk picks up from the
// clause-normalized source text.
func clean(chunk string) string {
	return strings.Trim(chunk, " *;.")
}

// parseDOB extracts a calendar date from a "* DD . MM . YYYY" chunk.
func parseDOB(chunk string) (time.Time, error) {
	m := dobRegex.FindString(strings.Trim(chunk, " ;."))
	if m == "" {
		return time.Time{}, fmt.Errorf("no date of birth in %q", chunk)
	}
	runs := digitRuns.FindAllString(m, -1)
	if len(runs) != 3 {
		return time.Time{}, fmt.Errorf("malformed date of birth %q", m)
	}
	return time.Parse("02.01.2006", runs[0]+"."+runs[1]+"."+runs[2])
}

// CountDOBMarkers counts date-of-birth markers in raw text. Each marker
// is a strong hint that the text names a natural person.
func CountDOBMarkers(text string) int {
	return len(dobRegex.FindAllString(text, -1))
}

// tryDOBCity resolves the inconsistent city/DOB ordering in source text:
// the first candidate is tried as the DOB with the second as city, and on
// failure the roles are swapped.
func tryDOBCity(first, second string) (time.Time, string, error) {
	if dob, err := parseDOB(first); err == nil {
		return dob, clean(second), nil
	}
	dob, err := parseDOB(second)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("neither %q nor %q parses as a date of birth", first, second)
	}
	return dob, clean(first), nil
}

// translateFlag maps known German qualifier phrases to fixed English
// text; unknown phrases are stored verbatim.
func translateFlag(flag string) string {
	if tr, ok := translations[strings.ToLower(flag)]; ok {
		return tr
	}
	return flag
}

// Parse constructs a person of the given subtype from clause text.
// The text is split on commas; the chunk layout is inferred from the
// position of the date-of-birth chunk and the total chunk count.
func Parse(subtype events.Subtype, text string) (events.Person, error) {
	chunks := strings.Split(text, ",")

	dobIdx := -1
	for i, chunk := range chunks {
		if dobRegex.MatchString(chunk) {
			dobIdx = i
			break
		}
	}

	fields := events.PersonFields{}

	if dobIdx < 0 {
		if companyRegex.MatchString(text) {
			fields.CompanyName = clean(text)
			return finalize(subtype, text, fields), nil
		}

		switch len(chunks) {
		case 2:
			fields.Lastname = clean(chunks[0])
			fields.Name = clean(chunks[1])
		case 3:
			fields.Lastname = clean(chunks[0])
			fields.Name = clean(chunks[1])
			fields.City = clean(chunks[2])
		case 4:
			fields.Lastname = clean(chunks[0])
			fields.Name = clean(chunks[1])
			fields.Position = clean(chunks[2])
			fields.City = clean(chunks[3])
		default:
			return events.Person{}, failf(subtype, text,
				"person without date of birth, unexpected chunk count %d", len(chunks))
		}

		if err := validate(subtype, text, fields); err != nil {
			return events.Person{}, err
		}
		return finalize(subtype, text, fields), nil
	}

	switch len(chunks) {
	case 3:
		fields.Lastname = clean(chunks[0])
		fields.Name = clean(chunks[1])
		dob, err := parseDOB(chunks[2])
		if err != nil {
			return events.Person{}, failf(subtype, text, "%v", err)
		}
		fields.DOB = dob

	case 4:
		fields.Lastname = clean(chunks[0])
		fields.Name = clean(chunks[1])
		dob, city, err := tryDOBCity(chunks[2], chunks[3])
		if err != nil {
			return events.Person{}, failf(subtype, text, "%v", err)
		}
		fields.DOB = dob
		fields.City = city

	case 5:
		fields.Lastname = clean(chunks[0])
		fields.Name = clean(chunks[1])
		if dobIdx == 4 {
			// Trailing DOB leaves room for a position chunk before the city.
			fields.Position = clean(chunks[2])
			dob, city, err := tryDOBCity(chunks[4], chunks[3])
			if err != nil {
				return events.Person{}, failf(subtype, text, "%v", err)
			}
			fields.DOB = dob
			fields.City = city
		} else {
			dob, city, err := tryDOBCity(chunks[2], chunks[3])
			if err != nil {
				return events.Person{}, failf(subtype, text, "%v", err)
			}
			fields.DOB = dob
			fields.City = city
			fields.Flag = translateFlag(clean(chunks[4]))
		}

	case 6:
		fields.Lastname = clean(chunks[0])
		fields.Name = clean(chunks[1])
		dob, city, err := tryDOBCity(chunks[2], chunks[3])
		if err != nil {
			return events.Person{}, failf(subtype, text, "%v", err)
		}
		fields.DOB = dob
		fields.City = city
		// Qualifier phrases themselves contain a comma; the final two
		// chunks are one phrase split apart.
		fields.Flag = translateFlag(clean(chunks[4]) + " , " + clean(chunks[5]))

	default:
		return events.Person{}, failf(subtype, text,
			"person with date of birth, unexpected chunk count %d", len(chunks))
	}

	return finalize(subtype, text, fields), nil
}

// validate rejects field layouts that indicate the comma split
// mis-partitioned the text. Only the chunk-count-based dispatch without a
// DOB anchor needs this; a parsed DOB already pins the layout.
func validate(subtype events.Subtype, text string, fields events.PersonFields) error {
	if utf8.RuneCountInString(fields.Name) > maxNameLen {
		return failf(subtype, text, "name %q exceeds %d characters", fields.Name, maxNameLen)
	}
	if utf8.RuneCountInString(fields.Lastname) > maxLastnameLen {
		return failf(subtype, text, "lastname %q exceeds %d characters", fields.Lastname, maxLastnameLen)
	}
	if digitRegex.MatchString(fields.Name) {
		return failf(subtype, text, "name %q contains digits", fields.Name)
	}
	return nil
}

// maidenMarker separates a married name from the maiden name in the
// post-substitution text ("Müller geborene Schulz").
const maidenMarker = " geborene "

// finalize applies the serialization post-processing: maiden-name split,
// reference-number extraction, professional-title extraction and the
// static dismissed flag.
func finalize(subtype events.Subtype, text string, fields events.PersonFields) events.Person {
	if i := strings.Index(fields.Lastname, maidenMarker); i >= 0 {
		fields.MaidenName = strings.TrimSpace(fields.Lastname[i+len(maidenMarker):])
		fields.Lastname = strings.TrimSpace(fields.Lastname[:i])
	} else if i := strings.Index(fields.Name, maidenMarker); i >= 0 {
		fields.MaidenName = strings.TrimSpace(fields.Name[i+len(maidenMarker):])
		fields.Name = strings.TrimSpace(fields.Name[:i])
	}

	for _, target := range []*string{&fields.Lastname, &fields.CompanyName} {
		if m := refNumRegex.FindStringSubmatch(*target); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				fields.ReferenceNumber = n
			}
			*target = strings.TrimSpace((*target)[len(m[0]):])
		}
	}

	for _, title := range professionalTitles {
		if len(fields.Lastname) > len(title) &&
			strings.EqualFold(fields.Lastname[:len(title)], title) {
			fields.ProfessionalTitle = fields.Lastname[:len(title)]
			fields.Lastname = strings.TrimSpace(fields.Lastname[len(title):])
			break
		}
	}

	if subtype.Dismissed() {
		fields.Dismissed = true
	}

	return events.Person{Subtype: subtype, Text: text, Fields: fields}
}
