package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubsequenceMatchesNonContiguous(t *testing.T) {
	index := fakeIndex{
		{"name": "Guduchyadi Kashaya"},
		{"name": "Brahmi Ghrita"},
	}

	got := NewSubsequence().Match(index, []string{"name"}, "gdk")
	assert.Equal(t, []int{0}, got)
}

func TestSubsequenceIsCaseInsensitive(t *testing.T) {
	index := fakeIndex{
		{"indications": "FEVER, THIRST"},
	}

	got := NewSubsequence().Match(index, []string{"indications"}, "Fever")
	assert.Equal(t, []int{0}, got)
}

func TestSubsequenceRejectsOutOfOrder(t *testing.T) {
	index := fakeIndex{
		{"name": "Rasna"},
	}

	assert.Empty(t, NewSubsequence().Match(index, []string{"name"}, "anr"))
}

func TestSubsequenceRanksContiguousFirst(t *testing.T) {
	index := fakeIndex{
		{"name": "p a t o l a scattered"},
		{"name": "Patola"},
	}

	got := NewSubsequence().Match(index, []string{"name"}, "patola")
	assert.Equal(t, []int{1, 0}, got)
}
