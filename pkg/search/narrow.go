package search

import "sahasrayogam-be/pkg/fuzzy"

// TextFunc extracts the searchable text of one field of an item.
type TextFunc[T any] func(item T, key string) string

// documents adapts a slice to fuzzy.Index.
type documents[T any] struct {
	items []T
	text  TextFunc[T]
}

func (d documents[T]) Len() int { return len(d.items) }

func (d documents[T]) Text(i int, key string) string { return d.text(d.items[i], key) }

// Narrow returns the candidates matching every term of query (AND).
//
// Terms are applied one at a time and each term is matched against an
// index built over the survivors of the previous term, never over the
// original candidates. The loop stops at the first empty result. A query
// without terms returns candidates unchanged.
func Narrow[T any](candidates []T, query string, keys []string, matcher fuzzy.Matcher, text TextFunc[T]) []T {
	terms := ParseTerms(query)
	if len(terms) == 0 {
		return candidates
	}

	results := candidates
	for _, term := range terms {
		positions := matcher.Match(documents[T]{items: results, text: text}, keys, term)

		narrowed := make([]T, len(positions))
		for i, position := range positions {
			narrowed[i] = results[position]
		}
		results = narrowed

		if len(results) == 0 {
			break
		}
	}
	return results
}
