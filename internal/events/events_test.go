// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"testing"
	"time"
)

func TestPersonRecord_OmitsZeroFields(t *testing.T) {
	p := Person{
		Subtype: ManagingDirector,
		Text:    "Müller , Hans",
		Fields:  PersonFields{Lastname: "Müller", Name: "Hans"},
	}

	rec := p.Record()
	if rec["class"] != "ManagingDirector" {
		t.Errorf("class = %v", rec["class"])
	}
	payload := rec["payload"].(map[string]any)
	if _, ok := payload["city"]; ok {
		t.Error("empty city must be omitted")
	}
	if _, ok := payload["dob"]; ok {
		t.Error("zero dob must be omitted")
	}
	if _, ok := payload["dismissed"]; ok {
		t.Error("false dismissed must be omitted")
	}
}

func TestPersonRecord_DOBFormat(t *testing.T) {
	p := Person{
		Subtype: ManagingDirector,
		Fields: PersonFields{
			Lastname: "Müller",
			DOB:      time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	payload := p.Record()["payload"].(map[string]any)
	if payload["dob"] != "1980-02-01" {
		t.Errorf("dob = %v, want ISO date", payload["dob"])
	}
}

func TestNoticeRecord_JoinsUsedRules(t *testing.T) {
	n := Notice{
		Subtype: PredecessorRelocationNotice,
		Text:    "von Köln nach München",
		Fields: NoticeFields{
			From:         "Köln",
			To:           "München",
			Registration: RegistrationPredecessor,
			UsedRules:    []string{"pred_combined", "marker_bisher"},
		},
	}

	rec := n.Record()
	if rec["used_rules"] != "pred_combined + marker_bisher" {
		t.Errorf("used_rules = %v", rec["used_rules"])
	}
	if rec["registration"] != "predecessor" {
		t.Errorf("registration = %v", rec["registration"])
	}
	if _, ok := rec["registration_fuzzy"]; ok {
		t.Error("false registration_fuzzy must be omitted")
	}
}

func TestSubtypeMetadata(t *testing.T) {
	tests := []struct {
		subtype   Subtype
		kind      Kind
		dismissed bool
	}{
		{ManagingDirector, KindOfficers, false},
		{DismissedManagingDirector, KindOfficers, true},
		{ProcurationCancelled, KindOfficers, true},
		{NotAProcurator, KindOfficers, true},
		{RemovedFromBoard, KindOfficers, true},
		{SuccessorRelocationNotice, KindNotices, false},
		{PredecessorRelocationNotice, KindNotices, false},
	}

	for _, tt := range tests {
		if got := tt.subtype.EventKind(); got != tt.kind {
			t.Errorf("%v kind = %v, want %v", tt.subtype, got, tt.kind)
		}
		if got := tt.subtype.Dismissed(); got != tt.dismissed {
			t.Errorf("%v dismissed = %v, want %v", tt.subtype, got, tt.dismissed)
		}
	}
}

func TestSubtypeIsNotice(t *testing.T) {
	if ManagingDirector.IsNotice() {
		t.Error("ManagingDirector is not a notice subtype")
	}
	if !SuccessorRelocationNotice.IsNotice() {
		t.Error("SuccessorRelocationNotice is a notice subtype")
	}
}
