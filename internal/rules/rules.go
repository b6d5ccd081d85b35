// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rules holds the immutable, priority-ordered table of
// text-matching rules the clause matcher runs against every clause.
package rules

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"registry-parser/internal/events"
)

// regexPriority sorts regex rules ahead of literal rules of any length:
// regexes model the semantically more general patterns and get first
// refusal.
const regexPriority = 1000

// Action is what a rule does when its pattern occurs in a clause.
type Action interface {
	isAction()
}

// EmitFlag yields a Flag event carrying the matched substring, or the
// whole clause when WholeClause is set.
type EmitFlag struct {
	Tag         string
	WholeClause bool
}

// AssignLabel yields a Label event carrying the clause text after the
// match.
type AssignLabel struct {
	Name string
}

// BuildEntity constructs a person (from the clause text after the match)
// or a relocation notice (from the whole clause) of the given subtype.
type BuildEntity struct {
	Subtype events.Subtype
}

func (EmitFlag) isAction()    {}
func (AssignLabel) isAction() {}
func (BuildEntity) isAction() {}

// Rule pairs a pattern with the actions to run on a match. Rules are
// immutable after construction.
type Rule struct {
	literal string // empty for regex-backed rules
	pattern string // regex source as declared, without compile flags
	re      *regexp.Regexp
	actions []Action
}

// Literal builds a rule matching the given text case-insensitively.
func Literal(pattern string, actions ...Action) Rule {
	return Rule{
		literal: pattern,
		re:      regexp.MustCompile(`(?i)` + regexp.QuoteMeta(pattern)),
		actions: actions,
	}
}

// Regex builds a rule from an uncompiled pattern; compilation adds
// case-insensitive matching.
func Regex(pattern string, actions ...Action) Rule {
	return Rule{
		pattern: pattern,
		re:      regexp.MustCompile(`(?i)` + pattern),
		actions: actions,
	}
}

// Priority is the sort key: literal length in runes, or the regex
// sentinel.
func (r Rule) Priority() int {
	if r.literal == "" {
		return regexPriority
	}
	return utf8.RuneCountInString(r.literal)
}

// IsRegex reports whether the rule is regex-backed.
func (r Rule) IsRegex() bool {
	return r.literal == ""
}

// Pattern returns the pattern as declared, for diagnostics.
func (r Rule) Pattern() string {
	if r.literal != "" {
		return r.literal
	}
	return r.pattern
}

// Actions returns the rule's action list.
func (r Rule) Actions() []Action {
	return r.actions
}

// Find locates the first occurrence of the rule's pattern in the clause,
// returning the byte span or ok=false.
func (r Rule) Find(clause string) (start, end int, ok bool) {
	loc := r.re.FindStringIndex(clause)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Table is the priority-ordered rule list. Read-only after construction,
// safe to share across concurrent parses.
type Table struct {
	rules []Rule
}

// NewTable sorts the given rules by descending priority. The sort is
// stable, so rules of equal priority keep their declaration order and
// re-sorting an already sorted table is a no-op.
func NewTable(rules []Rule) *Table {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Table{rules: sorted}
}

// Rules returns the ordered rule list. Callers must not modify it.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}
