package fuzzy

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var algoInit sync.Once

// Subsequence is fzf-style matching: every rune of the term must appear in
// the field in order, gaps allowed. Ranked by fzf score, highest first.
type Subsequence struct{}

func NewSubsequence() *Subsequence {
	algoInit.Do(func() {
		algo.Init("default")
	})
	return &Subsequence{}
}

type subsequenceHit struct {
	position int
	score    int
}

func (s *Subsequence) Match(index Index, keys []string, term string) []int {
	pattern := []rune(strings.ToLower(term))
	if len(pattern) == 0 {
		return nil
	}

	var hits []subsequenceHit
	for i := 0; i < index.Len(); i++ {
		best := -1
		for _, key := range keys {
			text := index.Text(i, key)
			if text == "" {
				continue
			}
			// No shared slab: Match runs concurrently across sessions.
			chars := util.ToChars([]byte(text))
			result, _ := algo.FuzzyMatchV2(false, false, true, &chars, pattern, false, nil)
			if result.Start >= 0 && result.Score > best {
				best = result.Score
			}
		}
		if best >= 0 {
			hits = append(hits, subsequenceHit{position: i, score: best})
		}
	}

	slices.SortStableFunc(hits, func(x, y subsequenceHit) int {
		return cmp.Compare(y.score, x.score)
	})

	positions := make([]int, len(hits))
	for i, hit := range hits {
		positions[i] = hit.position
	}
	return positions
}
