package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLemma canonicalizes a lemma for dictionary and index lookups.
// The pipeline:
// 1. Unicode NFC composition.
// 2. Case-fold to lower.
// 3. Collapse runs of separators (_, -, whitespace) into one space.
// 4. Trim.
//
// Examples:
//   - "Hot_Dog" -> "hot dog"
//   - "  part-of--speech " -> "part of speech"
func NormalizeLemma(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder

	b.Grow(len(s))

	pendingSep := false

	for _, r := range s {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			continue
		}

		if pendingSep {
			b.WriteByte(' ')

			pendingSep = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

// isSeparator returns true if the rune separates words inside a lemma.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
