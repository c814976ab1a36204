// Package cases converts vocabulary entries, such as "mbp:pagebreak", into
// the PascalCase fragments identifiers are built from.
package cases

import (
	"strings"
	"unicode"
)

// Separators are the runes that split an entry into words.
const Separators = ":-_"

// Pascal converts str to PascalCase: str is split into words at any of
// [Separators], and each word has its first rune upper-cased and the rest
// lower-cased. Empty words are dropped.
func Pascal(str string) string {
	var buf strings.Builder
	for word := range strings.FieldsFuncSeq(str, isSeparator) {
		for i, r := range word {
			if i == 0 {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(Separators, r)
}
