// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package events

// Kind groups parse events for output aggregation
type Kind string

const (
	KindOfficers Kind = "officers"
	KindNotices  Kind = "notices"
	KindFlags    Kind = "flags"
	KindLabels   Kind = "labels"
	KindErrors   Kind = "errors"
)

// Subtype identifies one of the closed set of person or notice categories
// the engine can construct from a clause.
type Subtype int

const (
	SubtypeNone Subtype = iota
	ManagingDirector
	DismissedManagingDirector
	Owner
	SingleProcuration
	NewProcuration
	CommonProcuration
	ProcurationCancelled
	NotAProcurator
	PersonalPartner
	Liquidator
	AppointedBoard
	RemovedFromBoard
	SuccessorRelocationNotice
	PredecessorRelocationNotice
)

// subtypeInfo carries the static metadata attached to each subtype
type subtypeInfo struct {
	name      string
	kind      Kind
	dismissed bool
}

var subtypeTable = map[Subtype]subtypeInfo{
	ManagingDirector:            {"ManagingDirector", KindOfficers, false},
	DismissedManagingDirector:   {"DismissedManagingDirector", KindOfficers, true},
	Owner:                       {"Owner", KindOfficers, false},
	SingleProcuration:           {"SingleProcuration", KindOfficers, false},
	NewProcuration:              {"NewProcuration", KindOfficers, false},
	CommonProcuration:           {"CommonProcuration", KindOfficers, false},
	ProcurationCancelled:        {"ProcurationCancelled", KindOfficers, true},
	NotAProcurator:              {"NotAProcurator", KindOfficers, true},
	PersonalPartner:             {"PersonalPartner", KindOfficers, false},
	Liquidator:                  {"Liquidator", KindOfficers, false},
	AppointedBoard:              {"AppointedBoard", KindOfficers, false},
	RemovedFromBoard:            {"RemovedFromBoard", KindOfficers, true},
	SuccessorRelocationNotice:   {"SuccessorRelocationNotice", KindNotices, false},
	PredecessorRelocationNotice: {"PredecessorRelocationNotice", KindNotices, false},
}

// String returns the subtype name used in serialized output
func (s Subtype) String() string {
	if info, ok := subtypeTable[s]; ok {
		return info.name
	}
	return "Unknown"
}

// EventKind returns the output group the subtype belongs to
func (s Subtype) EventKind() Kind {
	if info, ok := subtypeTable[s]; ok {
		return info.kind
	}
	return KindErrors
}

// Dismissed reports whether persons of this subtype left their role
// (dismissal, cancelled procuration, board removal).
func (s Subtype) Dismissed() bool {
	if info, ok := subtypeTable[s]; ok {
		return info.dismissed
	}
	return false
}

// IsNotice reports whether the subtype builds a relocation notice
// rather than a person.
func (s Subtype) IsNotice() bool {
	return s.EventKind() == KindNotices
}
