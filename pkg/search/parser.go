package search

import (
	"strings"
	"unicode"
)

// ParseTerms splits a raw query into search terms. Runs of whitespace
// and/or commas separate terms; empty terms are dropped. Input order is kept
// because Narrow applies terms in that order.
//
//	"Guduchi, Fever"   -> [Guduchi Fever]
//	"  ,, "            -> []
func ParseTerms(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
