// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"strings"
	"testing"
)

func TestNormalize_EventTypeCut(t *testing.T) {
	n := New()
	res := n.Normalize("HRB 12345: Firma GmbH Veränderung Geschäftsführer: Müller, Hans", "Veränderung")

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if strings.Contains(res.Text, "HRB 12345") {
		t.Errorf("expected header before event type to be cut, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "Geschäftsführer") {
		t.Errorf("expected body to survive, got %q", res.Text)
	}
}

func TestNormalize_DateHeadingFallback(t *testing.T) {
	n := New()
	res := n.Normalize("Amtsgericht Köln Aktenzeichen 01.02.2020\n\nGeschäftsführer: Müller, Hans", "")

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if strings.Contains(res.Text, "Aktenzeichen") {
		t.Errorf("expected header before date heading to be cut, got %q", res.Text)
	}
}

func TestNormalize_NoBoundaryKeepsWholeText(t *testing.T) {
	n := New()
	full := "Geschäftsführer: Müller, Hans"
	res := n.Normalize(full, "Löschung")

	if res.Text != full {
		t.Errorf("expected whole text to be kept, got %q", res.Text)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one recovered error, got %v", res.Errors)
	}
	if res.Errors[0].Kls != "NormalizationError" {
		t.Errorf("expected NormalizationError, got %q", res.Errors[0].Kls)
	}
}

func TestNormalize_Substitutions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"doctor", "Dr. Müller", "Doctor Müller"},
		{"professor", "Prof. Schmidt", "Professor Schmidt"},
		{"maiden name", "Meier geb. Schulz", "Meier geborene Schulz"},
		{"list marker", "Kapital: 3. Absatz", "Kapital: 3) Absatz"},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := n.Normalize("Veränderung "+tt.in, "Veränderung")
			if strings.TrimSpace(res.Text) != tt.want {
				t.Errorf("got %q, want %q", strings.TrimSpace(res.Text), tt.want)
			}
		})
	}
}

func TestNormalize_SubstitutionsIdempotent(t *testing.T) {
	n := New()
	first := n.Normalize("Veränderung Dr. Meier geb. Schulz: 3. Punkt", "Veränderung")
	second := n.Normalize("Veränderung"+first.Text, "Veränderung")

	if first.Text != second.Text {
		t.Errorf("substitutions not idempotent: %q vs %q", first.Text, second.Text)
	}
}

func TestNormalizeClause(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"colon separation", "Geschäftsführer:", "Geschäftsführer :"},
		{"collapses whitespace", "Müller ,   Hans", "Müller , Hans"},
		{"empty", "   ", ""},
		{"hyphenated heading", "Stamm- bzw. Grundkapital:", "Stamm - bzw . Grundkapital :"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeClause(tt.in); got != tt.want {
				t.Errorf("NormalizeClause(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeClause_Idempotent(t *testing.T) {
	clauses := []string{
		"Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980",
		"Sitzverlegung von Köln (Amtsgericht Köln HRB 12345) nach München",
	}
	for _, clause := range clauses {
		once := NormalizeClause(clause)
		twice := NormalizeClause(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q vs %q", clause, once, twice)
		}
	}
}
