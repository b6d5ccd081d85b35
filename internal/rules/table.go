// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"registry-parser/internal/events"
)

// BuildTable returns the rule table for German commercial-registry
// notices. Patterns are written in clause-normalized form (punctuation
// set off by spaces). Invoke once at startup; the result is immutable.
func BuildTable() *Table {
	return NewTable([]Rule{
		// Officer headings. The postfix after the colon describes the
		// person and is handed to the person field parser.
		Literal("Geschäftsführer :", BuildEntity{events.ManagingDirector}),
		Literal("Geschäftsführerin :", BuildEntity{events.ManagingDirector}),
		Literal("Nicht mehr Geschäftsführer :", BuildEntity{events.DismissedManagingDirector}),
		Literal("Nicht mehr Geschäftsführerin :", BuildEntity{events.DismissedManagingDirector}),
		Literal("Einzelprokura :", BuildEntity{events.SingleProcuration}),
		Literal("Bestellt Vorstand :", BuildEntity{events.AppointedBoard}),
		Literal("Bestellt als Vorstand :", BuildEntity{events.AppointedBoard}),
		Literal("Ausgeschieden Vorstand :", BuildEntity{events.RemovedFromBoard}),
		Literal("Nicht mehr Prokurist :", BuildEntity{events.NotAProcurator}),
		Literal("Nicht mehr Prokuristin :", BuildEntity{events.NotAProcurator}),
		Literal("Einzelprokura mit der Befugnis im Namen der Gesellschaft mit sich im eigenen Namen oder als Vertreter eines Dritten Rechtsgeschäfte abzuschließen :",
			BuildEntity{events.SingleProcuration}),
		Literal("Persönlich haftender Gesellschafter :", BuildEntity{events.PersonalPartner}),
		Literal("Gesamtprokura gemeinsam mit einem Geschäftsführer oder einem anderen Prokuristen :",
			BuildEntity{events.CommonProcuration}),
		// Greedy group: the person description follows the LAST colon.
		Regex(`Prokura geändert(.*):`, BuildEntity{events.NewProcuration}),
		Literal("Inhaber :", BuildEntity{events.Owner}),
		Literal("Inhaberin :", BuildEntity{events.Owner}),
		Literal("Liquidator :", BuildEntity{events.Liquidator}),
		Literal("Liquidatorin :", BuildEntity{events.Liquidator}),
		Literal("Prokura erloschen :", BuildEntity{events.ProcurationCancelled}),

		// Plain labels for clause headings that carry no person.
		Literal("Sitz / Zweigniederlassung :", AssignLabel{"company"}),
		Literal("B :", AssignLabel{"WHUT"}),
		Literal("Stamm - bzw . Grundkapital :", AssignLabel{"misc"}),
		Literal("Geschäftsanschrift :", AssignLabel{"address"}),

		// Relocation notices. The extractor re-reads the whole clause,
		// so these only decide which view is attempted first.
		Regex(`\bbisher\b.{0,60}\b(?:AG|Amtsgericht)\b`, BuildEntity{events.PredecessorRelocationNotice}),
		Regex(`\bnach\b.{1,8}\b(?:AG|Amtsgericht)\b`, BuildEntity{events.PredecessorRelocationNotice}),
		Regex(`\b(?:jetzt|nunmehr|nun)\b.{0,60}\b(?:AG|Amtsgericht)\b`, BuildEntity{events.SuccessorRelocationNotice}),
		Regex(`\bSitzverlegung\b`,
			EmitFlag{Tag: "relocation", WholeClause: true},
			BuildEntity{events.SuccessorRelocationNotice}),
		Regex(`\bSitz\b.{0,80}\bverlegt\b`,
			EmitFlag{Tag: "relocation", WholeClause: true},
			BuildEntity{events.SuccessorRelocationNotice}),
		Literal("Neuer Sitz :", BuildEntity{events.SuccessorRelocationNotice}),

		// Fixed-vocabulary boilerplate translated into English flags.
		Literal("mit der Befugnis die Gesellschaft allein zu vertreten mit der Befugnis Rechtsgeschäfte mit sich selbst oder als Vertreter Dritter abzuschließen",
			EmitFlag{Tag: "with the power to represent the company alone with the power to conclude legal transactions with itself or as a representative of third parties"}),
		Literal("Alleinvertretungsbefugnis kann erteilt werden .",
			EmitFlag{Tag: "Exclusive power of representation can be granted."}),
		Literal("Sind mehrere Geschäftsführer bestellt , wird die Gesellschaft gemeinschaftlich durch zwei Geschäftsführer oder durch einen Geschäftsführer in Gemeinschaft mit einem Prokuristen vertreten .",
			EmitFlag{Tag: "If several directors are appointed, the company will be jointly represented by two directors or by a managing director in company with an authorized signatory."}),
		Literal("mit der Befugnis Rechtsgeschäfte mit sich selbst oder als Vertreter Dritter abzuschließen",
			EmitFlag{Tag: "with the power to conclude legal transactions with itself or as a representative of third parties"}),
		Literal("Gesellschaft mit beschränkter Haftung .",
			EmitFlag{Tag: "Company with limited liability ."}),
		Literal("mit der Befugnis , im Namen der Gesellschaft mit sich im eigenen Namen oder als Vertreter eines Dritten Rechtsgeschäfte abzuschließen .",
			EmitFlag{Tag: "with the power to enter into legal transactions on behalf of the Company with itself or as a representative of a third party"}),
		Literal("Sind mehrere Geschäftsführer bestellt , so wird die Gesellschaft durch zwei Geschäftsführer oder durch einen Geschäftsführer gemeinsam mit einem Prokuristen vertreten .",
			EmitFlag{Tag: "If several managing directors are appointed, then the company is represented by two managing directors or by a managing director together with an authorized officer."}),
		Literal("mit der Befugnis die Gesellschaft allein zu vertreten",
			EmitFlag{Tag: "with the power to represent the company alone"}),
		Literal("Sind mehrere Geschäftsführer bestellt , wird die Gesellschaft durch sämtliche Geschäftsführer gemeinsam vertreten .",
			EmitFlag{Tag: "If several managing directors are appointed, the company is jointly represented by all managing directors."}),
		Literal("Ist nur ein Geschäftsführer bestellt , so vertritt er die Gesellschaft allein .",
			EmitFlag{Tag: "If only one managing director is appointed, he represents the company alone."}),
		Literal("Die Gesellschaft ist aufgelöst .",
			EmitFlag{Tag: "ignore_for_now"}),
		Literal("Einzelprokura", EmitFlag{Tag: "Single procuration"}),
		Literal("Einzelkaufmann", EmitFlag{Tag: "Sole trader"}),
		Literal("Der Inhaber handelt allein", EmitFlag{Tag: "The owner is acting alone"}),
		Literal("Kommanditgesellschaft .", EmitFlag{Tag: "Limited partnership."}),
		Literal("Sind mehrere Liquidatoren bestellt , wird die Gesellschaft durch sämtliche Liquidatoren gemeinsam vertreten .",
			EmitFlag{Tag: "If several liquidators are appointed, the company will be represented jointly by all liquidators."}),
	})
}
