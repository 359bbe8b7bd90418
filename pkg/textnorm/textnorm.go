// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes OCR output and tokens before they are counted.
//
// # Usage
//
// Scans mix full-width and half-width forms of the same character
// (e.g. "ＡＢＣ" and "ABC", "ｶﾀｶﾅ" and "カタカナ"). Folding them with NFKC
// keeps one Term row per word instead of one per glyph variant.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text applies NFKC and removes control characters left behind by OCR.
func Text(s string) string {
	t := transform.Chain(norm.NFKC, transform.RemoveFunc(isControl))
	result, _, err := transform.String(t, s)
	if err != nil {
		return norm.NFKC.String(s)
	}
	return result
}

// Term normalizes a single token. It returns "" for tokens that carry no
// word content (whitespace only).
func Term(s string) string {
	return strings.TrimSpace(Text(s))
}

// isControl reports whether r is a control character other than whitespace.
func isControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}
