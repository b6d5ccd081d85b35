// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns supported input files into the raw notice
// text the parser consumes. Registry notices circulate as plain text or
// as published PDFs.
package preprocessors

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps PDF processing; registry notices are short documents
// and anything beyond this is not a notice.
const maxPDFPages = 50

// CanProcess reports whether the file extension is a supported notice
// input.
func CanProcess(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt", ".text", ".pdf":
		return true
	default:
		return false
	}
}

// ReadNoticeText loads the raw text of a single notice from a plain-text
// or PDF file.
func ReadNoticeText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt", ".text":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading notice file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return extractPDFText(filePath)
	default:
		return "", fmt.Errorf("unsupported notice file type: %s", filePath)
	}
}

// extractPDFText extracts the text layer of a published notice PDF.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the notice.
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	if buf.Len() == 0 {
		return "", fmt.Errorf("no extractable text in PDF: %s", filePath)
	}
	return buf.String(), nil
}

// ReadAll is a helper for callers that hand over an already opened
// stream (e.g. stdin) instead of a file path.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading notice stream: %w", err)
	}
	return string(data), nil
}
