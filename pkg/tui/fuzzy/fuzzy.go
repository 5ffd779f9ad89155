// ABOUTME: Generic fuzzy filtering over any item type, backed by sahilm/fuzzy
// ABOUTME: Matches carry the item and the matched rune positions for highlighting

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked result.
type Match[T any] struct {
	Item           T
	Index          int
	MatchedIndexes []int
	Score          int
}

// source adapts a slice and key function to fuzzy.Source.
type source[T any] struct {
	items []T
	key   func(T) string
}

func (s source[T]) String(i int) string { return s.key(s.items[i]) }
func (s source[T]) Len() int            { return len(s.items) }

// Filter ranks items whose key matches pattern, best first. An empty
// pattern keeps every item in its original order.
func Filter[T any](pattern string, items []T, key func(T) string) []Match[T] {
	if pattern == "" {
		out := make([]Match[T], len(items))
		for i, it := range items {
			out[i] = Match[T]{Item: it, Index: i}
		}
		return out
	}
	results := fuzzy.FindFrom(pattern, source[T]{items: items, key: key})
	out := make([]Match[T], len(results))
	for i, r := range results {
		out[i] = Match[T]{
			Item:           items[r.Index],
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return out
}

// Find filters plain strings.
func Find(pattern string, items []string) []Match[string] {
	return Filter(pattern, items, func(s string) string { return s })
}
