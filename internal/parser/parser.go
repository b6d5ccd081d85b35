// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parser drives the full extraction pipeline for one document:
// normalization, sentence and clause segmentation, rule matching with
// carry-forward, and event aggregation.
package parser

import (
	"fmt"
	"strings"

	"registry-parser/internal/events"
	"registry-parser/internal/gazetteer"
	"registry-parser/internal/normalizer"
	"registry-parser/internal/observability"
	"registry-parser/internal/person"
	"registry-parser/internal/relocation"
	"registry-parser/internal/rules"
	"registry-parser/internal/sentences"
)

// Document is one registry notice. Fields beyond FullText and EventType
// are the caller's bookkeeping and pass through untouched.
type Document struct {
	FullText     string
	EventType    string
	NoticeID     string
	FederalState string
}

// Result maps event kinds to ordered serialized records.
type Result map[events.Kind][]map[string]any

// Count returns the number of records under a kind.
func (r Result) Count(kind events.Kind) int {
	return len(r[kind])
}

// Empty reports whether the parse produced nothing at all.
func (r Result) Empty() bool {
	for _, recs := range r {
		if len(recs) > 0 {
			return false
		}
	}
	return true
}

// Diagnostics carries side information about a parse for callers that
// audit or sample results.
type Diagnostics struct {
	Sentences []string
}

// Parser is the document orchestrator. The rule table, gazetteer and
// sentence splitter it holds are read-only, so one Parser is safe for
// concurrent parses of independent documents.
type Parser struct {
	norm      *normalizer.Normalizer
	table     *rules.Table
	splitter  sentences.Splitter
	reloc     *relocation.Extractor
	observer  *observability.StandardObserver
	clauseCap int
}

// New assembles a Parser from its shared, immutable collaborators.
func New(table *rules.Table, splitter sentences.Splitter, gaz *gazetteer.Gazetteer) *Parser {
	return &Parser{
		norm:     normalizer.New(),
		table:    table,
		splitter: splitter,
		reloc:    relocation.NewExtractor(gaz),
	}
}

// SetObserver sets the observability component
func (p *Parser) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// SetClauseCap limits how long a clause may be before rule matching.
// Over-long clauses become Error events instead of regex inputs. A cap
// of 0 disables the limit.
func (p *Parser) SetClauseCap(cap int) {
	p.clauseCap = cap
}

// ParseDocument extracts all events from one document. It never fails:
// every per-clause problem is represented as an Error event under the
// "errors" kind and processing continues.
func (p *Parser) ParseDocument(doc Document) (Result, Diagnostics) {
	var finishTiming func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("parser", "parse_document", doc.NoticeID)
		if p.observer.DebugObserver != nil {
			finishStep = p.observer.DebugObserver.StartStep("parser", "parse_document", doc.NoticeID)
		}
	}

	res := Result{}
	add := func(ev events.Event) {
		res[ev.EventKind()] = append(res[ev.EventKind()], ev.Record())
	}

	normRes := p.norm.Normalize(doc.FullText, doc.EventType)
	for _, e := range normRes.Errors {
		add(e)
	}

	category := relocation.CategoryFromEventType(doc.EventType)
	sents := p.splitter.Split(normRes.Text)
	if p.observer != nil && p.observer.DebugObserver != nil {
		p.observer.DebugObserver.LogMetric("parser", "sentences", len(sents))
	}

	for _, sent := range sents {
		// Carry-forward state is scoped to the sentence.
		carried := events.SubtypeNone

		for _, rawClause := range strings.Split(sent, ";") {
			clause := normalizer.NormalizeClause(rawClause)
			if clause == "" {
				continue
			}
			if p.clauseCap > 0 && len(clause) > p.clauseCap {
				add(events.Error{Kls: "ClauseTooLong", Text: clause[:p.clauseCap]})
				continue
			}

			evts, gotPerson, gotNotice, builtSubtype := p.matchClause(clause, category)
			for _, ev := range evts {
				add(ev)
			}

			if gotPerson {
				carried = builtSubtype
				continue
			}
			if gotNotice || carried == events.SubtypeNone {
				continue
			}

			// Bare continuation clause: retry as the carried subtype.
			pers, err := person.Parse(carried, clause)
			if err != nil {
				if p.observer != nil && p.observer.DebugObserver != nil {
					p.observer.DebugObserver.LogDetail("parser", "carry-forward retry failed: "+err.Error())
				}
				add(events.Error{Kls: "ParsingError", Text: err.Error()})
				continue
			}
			add(pers)
		}
	}

	if finishTiming != nil {
		count := 0
		for _, recs := range res {
			count += len(recs)
		}
		finishTiming(true, map[string]interface{}{
			"event_count":    count,
			"sentence_count": len(sents),
		})
		if finishStep != nil {
			finishStep(true, fmt.Sprintf("%d events", count))
		}
	}

	return res, Diagnostics{Sentences: sents}
}

// matchClause runs the full rule table over one clause. Scanning never
// short-circuits, so independent flags and labels co-occur with an
// entity extraction; a guard keeps a clause from constructing a second
// person or a second notice once one has succeeded.
func (p *Parser) matchClause(clause string, category relocation.Category) (evts []events.Event, personBuilt, noticeBuilt bool, personSubtype events.Subtype) {
	for _, rule := range p.table.Rules() {
		start, end, ok := rule.Find(clause)
		if !ok {
			continue
		}

		for _, action := range rule.Actions() {
			switch a := action.(type) {
			case rules.EmitFlag:
				text := clause[start:end]
				if a.WholeClause {
					text = clause
				}
				evts = append(evts, events.Flag{Tag: a.Tag, Text: text})

			case rules.AssignLabel:
				evts = append(evts, events.Label{Name: a.Name, Text: clause[end:]})

			case rules.BuildEntity:
				if a.Subtype.IsNotice() {
					if noticeBuilt {
						continue
					}
					notice, err := p.reloc.Extract(a.Subtype, clause, category)
					if err != nil {
						evts = append(evts, events.Error{Kls: "ParsingError", Text: err.Error()})
						continue
					}
					evts = append(evts, notice)
					noticeBuilt = true
				} else {
					if personBuilt {
						continue
					}
					pers, err := person.Parse(a.Subtype, clause[end:])
					if err != nil {
						evts = append(evts, events.Error{Kls: "ParsingError", Text: err.Error()})
						continue
					}
					evts = append(evts, pers)
					personBuilt = true
					personSubtype = a.Subtype
				}
			}
		}
	}
	return evts, personBuilt, noticeBuilt, personSubtype
}
