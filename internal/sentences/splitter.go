// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sentences wraps German sentence-boundary detection behind a
// small interface so the orchestrator never depends on the tokenizer
// library directly.
package sentences

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
)

// germanTraining is the Punkt training data for German shipped with the
// tokenizer library (its data/german.json).
//
//go:embed german.json
var germanTraining []byte

// Splitter segments text into ordered sentences. Implementations must be
// deterministic and side-effect free.
type Splitter interface {
	Split(text string) []string
}

// germanSplitter uses the Punkt German model.
type germanSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewGerman returns a Splitter trained on German legal/newswire text.
// Build once; the tokenizer is read-only afterwards.
func NewGerman() (Splitter, error) {
	training, err := sentences.LoadTraining(germanTraining)
	if err != nil {
		return nil, fmt.Errorf("loading german training data: %w", err)
	}
	return &germanSplitter{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

func (s *germanSplitter) Split(text string) []string {
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
