// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"
	"testing"

	"registry-parser/internal/events"
	"registry-parser/internal/gazetteer"
	"registry-parser/internal/rules"
	"registry-parser/internal/sentences"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	splitter, err := sentences.NewGerman()
	if err != nil {
		t.Fatalf("building sentence splitter: %v", err)
	}
	return New(rules.BuildTable(), splitter,
		gazetteer.New([]string{"Berlin", "Köln", "München", "Hamburg"}))
}

func parseText(t *testing.T, fullText, eventType string) Result {
	t.Helper()
	p := newTestParser(t)
	res, _ := p.ParseDocument(Document{FullText: fullText, EventType: eventType, NoticeID: "1"})
	return res
}

func TestParseDocument_SingleOfficer(t *testing.T) {
	res := parseText(t,
		"Veränderung Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980.",
		"Veränderung")

	if res.Count(events.KindOfficers) != 1 {
		t.Fatalf("officers = %d, want 1: %v", res.Count(events.KindOfficers), res)
	}
	rec := res[events.KindOfficers][0]
	if rec["class"] != "ManagingDirector" {
		t.Errorf("class = %v", rec["class"])
	}
	payload := rec["payload"].(map[string]any)
	if payload["lastname"] != "Müller" || payload["name"] != "Hans" {
		t.Errorf("payload = %v", payload)
	}
	if payload["dob"] != "1980-02-01" {
		t.Errorf("dob = %v", payload["dob"])
	}
}

func TestParseDocument_CarryForward(t *testing.T) {
	// The second clause has no heading of its own and reuses the
	// carried subtype from the first.
	res := parseText(t,
		"Veränderung Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980; Schmidt, Anna, Hamburg, * 03.04.1985.",
		"Veränderung")

	if res.Count(events.KindOfficers) != 2 {
		t.Fatalf("officers = %d, want 2: %v", res.Count(events.KindOfficers), res)
	}
	second := res[events.KindOfficers][1]
	if second["class"] != "ManagingDirector" {
		t.Errorf("carried class = %v", second["class"])
	}
	payload := second["payload"].(map[string]any)
	if payload["lastname"] != "Schmidt" {
		t.Errorf("payload = %v", payload)
	}
}

func TestParseDocument_CarryForwardAfterFlagOnlyClause(t *testing.T) {
	// A clause that only raises a flag neither produces a person nor
	// clears the carried subtype, so the next bare clause still parses.
	res := parseText(t,
		"Veränderung Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980; Einzelprokura; Schmidt, Anna, Hamburg, * 03.04.1985.",
		"Veränderung")

	if res.Count(events.KindOfficers) != 2 {
		t.Fatalf("officers = %d, want 2: %v", res.Count(events.KindOfficers), res)
	}
	if res.Count(events.KindFlags) != 1 {
		t.Errorf("flags = %d, want 1", res.Count(events.KindFlags))
	}
}

func TestParseDocument_CarryForwardScopedToSentence(t *testing.T) {
	// The carried subtype dies at the sentence boundary: the second
	// sentence's bare clause becomes an error, not a person.
	res := parseText(t,
		"Veränderung Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980. Die Gesellschaft hat keinen Vertreter mehr.",
		"Veränderung")

	if res.Count(events.KindOfficers) != 1 {
		t.Fatalf("officers = %d, want 1: %v", res.Count(events.KindOfficers), res)
	}
}

func TestParseDocument_FailedRetryBecomesError(t *testing.T) {
	// The continuation clause is not parseable as a person; the failure
	// is recorded and processing continues.
	res := parseText(t,
		"Veränderung Geschäftsführer: Müller, Hans, Berlin, * 01.02.1980; nur Unsinn ohne Struktur; Schmidt, Anna, Hamburg, * 03.04.1985.",
		"Veränderung")

	if res.Count(events.KindOfficers) != 2 {
		t.Fatalf("officers = %d, want 2: %v", res.Count(events.KindOfficers), res)
	}
	if res.Count(events.KindErrors) == 0 {
		t.Error("expected a recovered error for the malformed clause")
	}
}

func TestParseDocument_LabelPostfix(t *testing.T) {
	res := parseText(t,
		"Veränderung Geschäftsanschrift: Musterstraße 1, 10115 Berlin.",
		"Veränderung")

	if res.Count(events.KindLabels) != 1 {
		t.Fatalf("labels = %d, want 1: %v", res.Count(events.KindLabels), res)
	}
	rec := res[events.KindLabels][0]
	if rec["label"] != "address" {
		t.Errorf("label = %v", rec["label"])
	}
	if !strings.Contains(rec["text"].(string), "Musterstraße") {
		t.Errorf("text = %v", rec["text"])
	}
}

func TestParseDocument_RelocationNotice(t *testing.T) {
	res := parseText(t,
		"Neueintragungen Sitzverlegung von Köln (Amtsgericht Köln HRB 12345) nach München.",
		"Neueintragungen")

	if res.Count(events.KindNotices) != 1 {
		t.Fatalf("notices = %d, want 1: %v", res.Count(events.KindNotices), res)
	}
	rec := res[events.KindNotices][0]
	if rec["from"] != "Köln" || rec["to"] != "München" {
		t.Errorf("notice = %v", rec)
	}
	if res.Count(events.KindFlags) != 1 {
		t.Errorf("flags = %d, want relocation flag", res.Count(events.KindFlags))
	}
}

func TestParseDocument_AtMostOneNoticePerClause(t *testing.T) {
	// Several notice rules match this clause; only one notice may be
	// built from it.
	res := parseText(t,
		"Veränderung Sitzverlegung, nun Amtsgericht München HRB 555.",
		"Veränderung")

	if got := res.Count(events.KindNotices); got > 1 {
		t.Errorf("notices = %d, want at most 1", got)
	}
}

func TestParseDocument_NoBoundaryProducesError(t *testing.T) {
	res := parseText(t, "Text ohne bekannte Struktur", "Löschungen")

	if res.Count(events.KindErrors) == 0 {
		t.Error("expected a normalization error record")
	}
}

func TestParseDocument_NeverEmptyHandedOnGarbage(t *testing.T) {
	p := newTestParser(t)
	res, _ := p.ParseDocument(Document{FullText: "", EventType: ""})

	// Parsing never fails outright; worst case is error records only.
	for kind := range res {
		if kind != events.KindErrors {
			t.Errorf("unexpected kind %q for empty input", kind)
		}
	}
}

func TestParseDocument_ClauseCap(t *testing.T) {
	p := newTestParser(t)
	p.SetClauseCap(40)

	long := "Veränderung Geschäftsführer: " + strings.Repeat("Müller Hans Berlin ", 20)
	res, _ := p.ParseDocument(Document{FullText: long, EventType: "Veränderung"})

	found := false
	for _, rec := range res[events.KindErrors] {
		if rec["kls"] == "ClauseTooLong" {
			found = true
		}
	}
	if !found {
		t.Error("expected ClauseTooLong error for capped clause")
	}
	if res.Count(events.KindOfficers) != 0 {
		t.Error("capped clause must not be matched")
	}
}

func TestParseDocument_Diagnostics(t *testing.T) {
	p := newTestParser(t)
	_, diag := p.ParseDocument(Document{
		FullText:  "Veränderung Erster Satz. Zweiter Satz.",
		EventType: "Veränderung",
	})

	if len(diag.Sentences) != 2 {
		t.Errorf("sentences = %d, want 2: %v", len(diag.Sentences), diag.Sentences)
	}
}
