package sku

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PadChar fills field positions that have no source character.
const PadChar = '_'

// EncodeWords encodes a label by taking the first lettersEach characters of
// each of the first wordCount words, uppercased. Words shorter than
// lettersEach are right-padded with PadChar, as are word slots beyond the
// last word of the label. An empty or all-whitespace label yields pads only.
// The result is always exactly wordCount*lettersEach characters wide.
//
// Characters are Unicode code points; uppercasing uses the Unicode mapping,
// and a rune whose uppercase form expands (e.g. ß -> SS) is truncated back
// so the fixed width holds. Non-positive wordCount or lettersEach
// contributes zero characters.
func EncodeWords(label string, wordCount, lettersEach int) string {
	if wordCount <= 0 || lettersEach <= 0 {
		return ""
	}

	words := strings.Fields(label)

	var b strings.Builder
	b.Grow(wordCount * lettersEach)
	for i := 0; i < wordCount; i++ {
		if i < len(words) {
			b.WriteString(fitRunes(upper(take(words[i], lettersEach)), lettersEach))
		} else {
			b.WriteString(strings.Repeat(string(PadChar), lettersEach))
		}
	}
	return b.String()
}

// EncodePrefix encodes a label as its first n characters, uppercased and
// right-padded with PadChar when shorter. An empty or all-whitespace label
// yields n pads. The result is always exactly n characters wide;
// non-positive n contributes zero characters.
func EncodePrefix(label string, n int) string {
	if n <= 0 {
		return ""
	}

	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return strings.Repeat(string(PadChar), n)
	}
	return fitRunes(upper(trimmed), n)
}

// upper applies the full Unicode uppercase mapping, so one-to-many mappings
// like ß -> SS happen before width is enforced. Casers are stateful, so a
// fresh one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// take returns the first n runes of s.
func take(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// fitRunes forces s to exactly n runes, truncating or padding with PadChar.
func fitRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) >= n {
		return string(runes[:n])
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(s)
	for i := len(runes); i < n; i++ {
		b.WriteRune(PadChar)
	}
	return b.String()
}
