package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeIndex []map[string]string

func (f fakeIndex) Len() int { return len(f) }

func (f fakeIndex) Text(i int, key string) string { return f[i][key] }

func TestSubstringDistance(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		limit   int
		want    int
	}{
		{name: "exact substring", pattern: "fever", text: "chronic fever and cough", limit: 1, want: 0},
		{name: "one substitution", pattern: "fever", text: "fevar", limit: 1, want: 1},
		{name: "one insertion in text", pattern: "gudchi", text: "guduchi", limit: 1, want: 1},
		{name: "one deletion in text", pattern: "guduchi", text: "gudchi", limit: 2, want: 1},
		{name: "over limit", pattern: "fever", text: "cough", limit: 1, want: -1},
		{name: "text shorter than pattern", pattern: "fever", text: "fe", limit: 1, want: -1},
		{name: "empty text", pattern: "fever", text: "", limit: 1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := substringDistance([]rune(tt.pattern), []rune(tt.text), tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApproximateMaxEdits(t *testing.T) {
	a := NewApproximate(DefaultThreshold)

	assert.Equal(t, 0, a.MaxEdits(1))
	assert.Equal(t, 0, a.MaxEdits(3))
	assert.Equal(t, 1, a.MaxEdits(4))
	assert.Equal(t, 1, a.MaxEdits(5))
	assert.Equal(t, 3, a.MaxEdits(10))

	loose := NewApproximate(1)
	assert.Equal(t, 4, loose.MaxEdits(5), "edits must stay below the term length")
}

func TestApproximateMatchIsCaseAndLocationInsensitive(t *testing.T) {
	index := fakeIndex{
		{"name": "Indukanta Ghrita", "indications": "Fever, Abdominal tumours"},
		{"name": "Guduchyadi Kashaya", "indications": "Burning sensation"},
	}

	got := NewApproximate(DefaultThreshold).Match(index, []string{"indications"}, "FEVER")
	assert.Equal(t, []int{0}, got)
}

func TestApproximateMatchRanksFewestEditsFirst(t *testing.T) {
	index := fakeIndex{
		{"name": "Fevar relief"},
		{"name": "Nothing relevant"},
		{"name": "Fever relief"},
	}

	got := NewApproximate(DefaultThreshold).Match(index, []string{"name"}, "fever")
	assert.Equal(t, []int{2, 0}, got)
}

func TestApproximateMatchUsesBestField(t *testing.T) {
	index := fakeIndex{
		{"name": "Patolādi", "ingredients": "Patola: 1 part"},
	}

	got := NewApproximate(DefaultThreshold).Match(index, []string{"name", "ingredients"}, "patola")
	assert.Equal(t, []int{0}, got)

	got = NewApproximate(DefaultThreshold).Match(index, []string{"name"}, "ingredients")
	assert.Empty(t, got)
}

func TestApproximateMatchEmptyTerm(t *testing.T) {
	index := fakeIndex{{"name": "anything"}}
	assert.Empty(t, NewApproximate(DefaultThreshold).Match(index, []string{"name"}, ""))
}

func TestNewMatcher(t *testing.T) {
	m, err := New("", DefaultThreshold)
	assert.NoError(t, err)
	assert.IsType(t, &Approximate{}, m)

	m, err = New(KindSubsequence, DefaultThreshold)
	assert.NoError(t, err)
	assert.IsType(t, &Subsequence{}, m)

	_, err = New("trigram", DefaultThreshold)
	assert.Error(t, err)
}
