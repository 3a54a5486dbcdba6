// Package slug derives URL-fragment identifiers from heading text.
//
// Slugs preserve CJK text verbatim (URL fragments may carry non-ASCII code
// points) and reduce everything else to lowercase ASCII words joined by
// single hyphens. Classification is pinned to Unicode 16.0 so the same
// heading yields the same slug on every platform.
package slug

import (
	"strings"
)

// Fallback is returned when heading text contains nothing sluggable.
const Fallback = "section"

type class int

const (
	classOther class = iota
	classASCII
	classCJK
)

func classify(r rune) class {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return classASCII
	case IsCJK(r):
		return classCJK
	}
	// Whitespace, punctuation, and any other script all behave as
	// separators: dropped, never hyphenated on their own.
	return classOther
}

// HasContent reports whether text contains at least one rune Generate
// would retain, i.e. whether Generate will produce something other than
// the fallback for it.
func HasContent(text string) bool {
	for _, r := range text {
		if classify(r) != classOther {
			return true
		}
	}
	return false
}

// Generate converts heading text into a slug candidate.
//
// ASCII letters and digits are lowercased and kept contiguous as words.
// CJK runes are kept contiguous as runs; separators between two CJK runes
// never split the run, because CJK text carries no inter-character
// word-break semantics. A single hyphen joins adjacent retained segments
// at a script boundary (CJK-ASCII in either direction) or between two
// ASCII words, and is emitted at most once per boundary no matter how many
// separators coincide with it. The result never starts or ends with a
// hyphen and never contains a doubled hyphen.
//
// Text with no retained runes yields Fallback, never the empty string.
func Generate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	last := classOther // class of the last retained rune
	pendingBreak := false

	for _, r := range text {
		switch classify(r) {
		case classASCII:
			if b.Len() > 0 && (last == classCJK || pendingBreak) {
				b.WriteByte('-')
			}
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
			last = classASCII
			pendingBreak = false
		case classCJK:
			// Separators between CJK runes are swallowed: the run
			// stays unbroken. A hyphen appears only when the
			// previous retained rune was ASCII.
			if b.Len() > 0 && last == classASCII {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			last = classCJK
			pendingBreak = false
		default:
			if b.Len() > 0 {
				pendingBreak = true
			}
		}
	}

	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}
