// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package events defines the typed parse events emitted by the clause
// matcher and the closed subtype catalogue they are constructed from.
package events

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single typed extraction result for one clause.
type Event interface {
	// EventKind returns the output group the event is aggregated under
	EventKind() Kind

	// Record returns the serialized form of the event
	Record() map[string]any
}

// Flag is a fixed-vocabulary annotation matched in a clause.
type Flag struct {
	Tag  string
	Text string // matched substring, or the whole clause when configured
}

func (f Flag) EventKind() Kind { return KindFlags }

func (f Flag) Record() map[string]any {
	return map[string]any{"flag": f.Tag, "text": f.Text}
}

func (f Flag) String() string {
	return fmt.Sprintf("[Flag: %s (%s)]", f.Tag, f.Text)
}

// Label names the remainder of a clause after a heading match.
type Label struct {
	Name string
	Text string // postfix text after the heading
}

func (l Label) EventKind() Kind { return KindLabels }

func (l Label) Record() map[string]any {
	return map[string]any{"label": l.Name, "text": l.Text}
}

func (l Label) String() string {
	return fmt.Sprintf("[Label/%s: %s]", l.Name, l.Text)
}

// Error records a recovered per-clause failure. It never aborts a parse.
type Error struct {
	Kls  string // error taxonomy name, e.g. "ParsingError"
	Text string
}

func (e Error) EventKind() Kind { return KindErrors }

func (e Error) Record() map[string]any {
	return map[string]any{"kls": e.Kls, "text": e.Text}
}

func (e Error) String() string {
	return fmt.Sprintf("[Error/%s: %s]", e.Kls, e.Text)
}

// PersonFields holds the structured fields extracted for one person or
// company. Zero values mean the field was not present in the source text.
type PersonFields struct {
	Lastname          string
	Name              string
	City              string
	DOB               time.Time
	Position          string
	Flag              string // free-text qualifier, possibly translated
	CompanyName       string
	MaidenName        string
	ReferenceNumber   int // leading list marker like "3)", 0 when absent
	ProfessionalTitle string
	Dismissed         bool
}

// Person is a successfully constructed officer record.
type Person struct {
	Subtype Subtype
	Text    string // original clause text the person was built from
	Fields  PersonFields
}

func (p Person) EventKind() Kind { return KindOfficers }

func (p Person) Record() map[string]any {
	payload := map[string]any{}
	if p.Fields.Name != "" {
		payload["name"] = p.Fields.Name
	}
	if p.Fields.Lastname != "" {
		payload["lastname"] = p.Fields.Lastname
	}
	if p.Fields.City != "" {
		payload["city"] = p.Fields.City
	}
	if !p.Fields.DOB.IsZero() {
		payload["dob"] = p.Fields.DOB.Format("2006-01-02")
	}
	if p.Fields.Position != "" {
		payload["position"] = p.Fields.Position
	}
	if p.Fields.Flag != "" {
		payload["flag"] = p.Fields.Flag
	}
	if p.Fields.CompanyName != "" {
		payload["company_name"] = p.Fields.CompanyName
	}
	if p.Fields.MaidenName != "" {
		payload["maidenname"] = p.Fields.MaidenName
	}
	if p.Fields.ReferenceNumber != 0 {
		payload["reference_number"] = p.Fields.ReferenceNumber
	}
	if p.Fields.ProfessionalTitle != "" {
		payload["professional_title"] = p.Fields.ProfessionalTitle
	}
	if p.Fields.Dismissed {
		payload["dismissed"] = true
	}
	return map[string]any{
		"class":   p.Subtype.String(),
		"text":    p.Text,
		"payload": payload,
	}
}

func (p Person) String() string {
	return fmt.Sprintf("[%s: %s]", p.Subtype, p.Text)
}

// Registration is the direction of a relocation notice.
type Registration string

const (
	RegistrationPredecessor Registration = "predecessor"
	RegistrationSuccessor   Registration = "successor"
	RegistrationUnknown     Registration = "unknown"
)

// NoticeFields holds the structured fields of a relocation notice.
type NoticeFields struct {
	From                 string
	To                   string
	Court                string
	RegistryNumber       string
	Registration         Registration
	RegistrationFuzzy    bool // direction inferred positionally, not from markers
	RegistrationConflict bool // direction contradicts the document event category
	UsedRules            []string
}

// Notice is a successfully constructed relocation notice.
type Notice struct {
	Subtype Subtype
	Text    string
	Fields  NoticeFields
}

func (n Notice) EventKind() Kind { return KindNotices }

func (n Notice) Record() map[string]any {
	rec := map[string]any{
		"class":        n.Subtype.String(),
		"text":         n.Text,
		"registration": string(n.Fields.Registration),
	}
	if n.Fields.From != "" {
		rec["from"] = n.Fields.From
	}
	if n.Fields.To != "" {
		rec["to"] = n.Fields.To
	}
	if n.Fields.Court != "" {
		rec["court"] = n.Fields.Court
	}
	if n.Fields.RegistryNumber != "" {
		rec["registry_number"] = n.Fields.RegistryNumber
	}
	if n.Fields.RegistrationFuzzy {
		rec["registration_fuzzy"] = true
	}
	if n.Fields.RegistrationConflict {
		rec["registration_conflict"] = true
	}
	if len(n.Fields.UsedRules) > 0 {
		rec["used_rules"] = strings.Join(n.Fields.UsedRules, " + ")
	}
	return rec
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s: %s -> %s]", n.Subtype, n.Fields.From, n.Fields.To)
}
