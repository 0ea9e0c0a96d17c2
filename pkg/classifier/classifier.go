// Package classifier decides the OrderState of a single word.
package classifier

import (
	"cmp"
	"slices"

	"github.com/aretw0/ordercheck/pkg/domain"
)

// Classify compares the runes of word against their ascending and descending
// sorts. Ascending is checked first, so empty words, single runes and runs of
// one repeated rune are Ascending. Comparison is by raw code point; invalid
// UTF-8 bytes compare as U+FFFD.
func Classify(word string) domain.OrderState {
	runes := []rune(word)

	asc := slices.Clone(runes)
	slices.Sort(asc)
	if slices.Equal(runes, asc) {
		return domain.Ascending
	}

	desc := slices.Clone(runes)
	slices.SortFunc(desc, func(a, b rune) int { return cmp.Compare(b, a) })
	if slices.Equal(runes, desc) {
		return domain.Descending
	}

	return domain.Unordered
}

// Result classifies word and wraps it in an OrderResult.
func Result(word string) domain.OrderResult {
	return domain.OrderResult{Word: word, State: Classify(word)}
}
