// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"testing"

	"registry-parser/internal/events"
)

func TestNewTable_RegexBeforeLiterals(t *testing.T) {
	table := NewTable([]Rule{
		Literal("a very long literal pattern that still loses", AssignLabel{"literal"}),
		Regex(`\bshort\b`, AssignLabel{"regex"}),
	})

	first := table.Rules()[0]
	if !first.IsRegex() {
		t.Errorf("expected regex rule first, got literal %q", first.Pattern())
	}
}

func TestNewTable_LiteralsByDescendingLength(t *testing.T) {
	table := NewTable([]Rule{
		Literal("ab", AssignLabel{"short"}),
		Literal("abcdef", AssignLabel{"long"}),
		Literal("abcd", AssignLabel{"mid"}),
	})

	got := []string{}
	for _, r := range table.Rules() {
		got = append(got, r.Pattern())
	}
	want := []string{"abcdef", "abcd", "ab"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestNewTable_StableForEqualPriority(t *testing.T) {
	table := NewTable([]Rule{
		Regex(`\bfirst\b`, AssignLabel{"first"}),
		Regex(`\bsecond\b`, AssignLabel{"second"}),
	})

	if table.Rules()[0].Pattern() != `\bfirst\b` {
		t.Errorf("equal-priority rules reordered: got %q first", table.Rules()[0].Pattern())
	}

	// Re-sorting an already sorted table must be a no-op.
	resorted := NewTable(table.Rules())
	for i := range table.Rules() {
		if table.Rules()[i].Pattern() != resorted.Rules()[i].Pattern() {
			t.Fatalf("re-sort changed order at %d", i)
		}
	}
}

func TestPattern_OmitsCompileFlags(t *testing.T) {
	if got := Regex(`\bSitzverlegung\b`, EmitFlag{Tag: "relocation"}).Pattern(); got != `\bSitzverlegung\b` {
		t.Errorf("regex Pattern() = %q, want declared source", got)
	}
	if got := Literal("Inhaber :", BuildEntity{events.Owner}).Pattern(); got != "Inhaber :" {
		t.Errorf("literal Pattern() = %q, want declared text", got)
	}
}

func TestPriority_CountsRunes(t *testing.T) {
	table := NewTable([]Rule{
		Literal("ööö", AssignLabel{"umlauts"}), // 3 runes, 6 bytes
		Literal("abcd", AssignLabel{"ascii"}),  // 4 runes, 4 bytes
	})

	if got := table.Rules()[0].Pattern(); got != "abcd" {
		t.Errorf("expected the longer literal by rune count first, got %q", got)
	}
}

func TestLiteral_CaseInsensitiveFind(t *testing.T) {
	rule := Literal("Geschäftsführer :", BuildEntity{events.ManagingDirector})

	start, end, ok := rule.Find("geschäftsführer : Müller , Hans")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if start != 0 {
		t.Errorf("expected match at start, got %d", start)
	}
	if end == start {
		t.Error("expected non-empty match span")
	}
}

func TestLiteral_QuotesMetaCharacters(t *testing.T) {
	rule := Literal("Sitz / Zweigniederlassung :", AssignLabel{"company"})

	if _, _, ok := rule.Find("Sitz X Zweigniederlassung :"); ok {
		t.Error("literal slash must not act as a regex metacharacter")
	}
	if _, _, ok := rule.Find("Sitz / Zweigniederlassung : Berlin"); !ok {
		t.Error("expected literal match")
	}
}

func TestBuildTable_ProcurationChangeSplitsAtLastColon(t *testing.T) {
	clause := "Prokura geändert : nunmehr Einzelprokura : Schmidt , Anna"

	for _, rule := range BuildTable().Rules() {
		if rule.Pattern() != `Prokura geändert(.*):` {
			continue
		}
		_, end, ok := rule.Find(clause)
		if !ok {
			t.Fatal("expected match")
		}
		if got := clause[end:]; got != " Schmidt , Anna" {
			t.Errorf("postfix after match = %q, want the text after the last colon", got)
		}
		return
	}
	t.Fatal("procuration-change rule not in table")
}

func TestBuildTable_KnownHeadingsResolve(t *testing.T) {
	table := BuildTable()

	tests := []struct {
		name    string
		clause  string
		subtype events.Subtype
	}{
		{"managing director", "Geschäftsführer : Müller , Hans", events.ManagingDirector},
		{"dismissed wins over plain", "Nicht mehr Geschäftsführer : Müller , Hans", events.DismissedManagingDirector},
		{"single procuration", "Einzelprokura : Schmidt , Anna", events.SingleProcuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rule := range table.Rules() {
				if _, _, ok := rule.Find(tt.clause); !ok {
					continue
				}
				for _, action := range rule.Actions() {
					if build, isBuild := action.(BuildEntity); isBuild {
						if build.Subtype != tt.subtype {
							t.Errorf("first entity rule resolves to %v, want %v", build.Subtype, tt.subtype)
						}
						return
					}
				}
			}
			t.Fatal("no entity rule matched")
		})
	}
}
