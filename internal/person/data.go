// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package person

// translations maps known German qualifier phrases (in clause-normalized
// form, lowercased) to the fixed English text stored in the flag field.
var translations = map[string]string{
	"einzelvertretungsberechtigt": "sole representation",
	"mit der befugnis die gesellschaft allein zu vertreten": "with the power to represent the company alone",
	"mit der befugnis rechtsgeschäfte mit sich selbst oder als vertreter dritter abzuschließen": "with the power to conclude legal transactions with itself or as a representative of third parties",
	"mit der befugnis , im namen der gesellschaft mit sich im eigenen namen oder als vertreter eines dritten rechtsgeschäfte abzuschließen": "with the power to enter into legal transactions on behalf of the Company with itself or as a representative of a third party",
	"stets einzelvertretungsberechtigt": "always solely authorized to represent",
}

// professionalTitles is the closed list of titles recognized at the start
// of a lastname chunk. Abbreviated forms appear here in their expanded
// post-substitution spelling; hyphenated forms appear both raw and in
// clause-normalized spacing. Longer entries must come first so compound
// titles win over their prefixes.
var professionalTitles = []string{
	"Diplom - Kaufmann",
	"Diplom-Kaufmann",
	"Diplom - Ingenieur",
	"Diplom-Ingenieur",
	"Rechtsanwalt",
	"Steuerberater",
	"Wirtschaftsprüfer",
	"Professor",
	"Doctor",
}
