// Package fuzzy holds the approximate string matchers used by the search
// layer. Matchers only see an Index, so they can be swapped without touching
// the caller's narrowing loop.
package fuzzy

import "fmt"

// Index is the read-only view a Matcher searches: Len documents, each
// exposing one text per field key.
type Index interface {
	Len() int
	Text(i int, key string) string
}

// Matcher finds the documents of an index that match a single term.
type Matcher interface {
	// Match returns the positions of the matching documents, best match
	// first. Documents without a match are omitted.
	Match(index Index, keys []string, term string) []int
}

const (
	KindApproximate = "approximate"
	KindSubsequence = "subsequence"
)

// New builds the matcher registered under kind.
func New(kind string, threshold float64) (Matcher, error) {
	switch kind {
	case "", KindApproximate:
		return NewApproximate(threshold), nil
	case KindSubsequence:
		return NewSubsequence(), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", kind)
	}
}
