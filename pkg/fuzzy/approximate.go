package fuzzy

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// DefaultThreshold is the share of a term's runes that may be edited and
// still count as a match.
const DefaultThreshold = 0.3

// Approximate matches a term anywhere inside a field, tolerating a bounded
// number of edits (insertions, deletions, substitutions). Matching is case
// insensitive. Documents are ranked by their best field, fewest edits first.
type Approximate struct {
	Threshold float64
}

func NewApproximate(threshold float64) *Approximate {
	if threshold < 0 || math.IsNaN(threshold) {
		threshold = DefaultThreshold
	}
	return &Approximate{Threshold: threshold}
}

type approximateHit struct {
	position int
	edits    int
}

func (a *Approximate) Match(index Index, keys []string, term string) []int {
	pattern := []rune(strings.ToLower(term))
	if len(pattern) == 0 {
		return nil
	}
	limit := a.MaxEdits(len(pattern))

	var hits []approximateHit
	for i := 0; i < index.Len(); i++ {
		best := -1
		for _, key := range keys {
			text := index.Text(i, key)
			if text == "" {
				continue
			}
			edits := substringDistance(pattern, []rune(strings.ToLower(text)), limit)
			if edits >= 0 && (best < 0 || edits < best) {
				best = edits
			}
			if best == 0 {
				break
			}
		}
		if best >= 0 {
			hits = append(hits, approximateHit{position: i, edits: best})
		}
	}

	slices.SortStableFunc(hits, func(x, y approximateHit) int {
		return cmp.Compare(x.edits, y.edits)
	})

	positions := make([]int, len(hits))
	for i, hit := range hits {
		positions[i] = hit.position
	}
	return positions
}

// MaxEdits is the largest edit count e with e/length <= Threshold. It is
// always below length so a term can never match arbitrary text.
func (a *Approximate) MaxEdits(length int) int {
	if length <= 0 {
		return 0
	}
	edits := int(math.Floor(a.Threshold*float64(length) + 1e-9))
	if edits >= length {
		edits = length - 1
	}
	return edits
}

// substringDistance returns the smallest edit distance between pattern and
// any substring of text, or -1 when it exceeds limit.
func substringDistance(pattern, text []rune, limit int) int {
	m := len(pattern)
	previous := make([]int, m+1)
	current := make([]int, m+1)
	for i := range previous {
		previous[i] = i
	}

	best := previous[m]
	for _, r := range text {
		// A match may start at any text position, so row 0 costs nothing.
		current[0] = 0
		for i := 1; i <= m; i++ {
			substitution := previous[i-1]
			if pattern[i-1] != r {
				substitution++
			}
			current[i] = min(substitution, previous[i]+1, current[i-1]+1)
		}
		if current[m] < best {
			best = current[m]
			if best == 0 {
				return 0
			}
		}
		previous, current = current, previous
	}

	if best > limit {
		return -1
	}
	return best
}
