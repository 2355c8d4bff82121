package textkit

import (
	"github.com/samber/lo"
)

// Counts maps each element of items to its occurrence count.
func Counts[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}

// Duplicates returns the values occurring more than once in items, ordered
// by first occurrence.
func Duplicates[T comparable](items []T) []T {
	counts := Counts(items)

	var dups []T
	seen := make(map[T]bool)
	for _, item := range items {
		if counts[item] > 1 && !seen[item] {
			dups = append(dups, item)
			seen[item] = true
		}
	}
	return dups
}

// Distinct returns items with later repeats removed, first occurrence order
// preserved.
func Distinct[T comparable](items []T) []T {
	return lo.Uniq(items)
}
