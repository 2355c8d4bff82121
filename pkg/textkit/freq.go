// Package textkit implements small pure text transformations: frequency
// counting, duplicate detection and word reversal. Nothing in here keeps
// state between calls.
package textkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type freqOptions struct {
	fold      bool
	skipSpace bool
}

type FreqOption func(*freqOptions)

// WithCaseFold counts "A" and "a" as the same token, using full Unicode
// case folding.
func WithCaseFold() FreqOption {
	return func(o *freqOptions) {
		o.fold = true
	}
}

// WithoutSpace excludes whitespace runes from character counts.
func WithoutSpace() FreqOption {
	return func(o *freqOptions) {
		o.skipSpace = true
	}
}

func buildFreqOptions(opts []FreqOption) freqOptions {
	var o freqOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// CharFrequency maps each rune of s to its occurrence count. Input is NFC
// normalized first so composed and decomposed forms count as one character.
// The returned map carries no ordering.
func CharFrequency(s string, opts ...FreqOption) map[rune]int {
	o := buildFreqOptions(opts)

	s = norm.NFC.String(s)
	if o.fold {
		s = cases.Fold().String(s)
	}

	counts := make(map[rune]int)
	for _, r := range s {
		if o.skipSpace && unicode.IsSpace(r) {
			continue
		}
		counts[r]++
	}
	return counts
}

// WordFrequency maps each whitespace-separated word of s to its occurrence
// count.
func WordFrequency(s string, opts ...FreqOption) map[string]int {
	o := buildFreqOptions(opts)

	s = norm.NFC.String(s)
	folder := cases.Fold()

	counts := make(map[string]int)
	for _, w := range strings.Fields(s) {
		if o.fold {
			w = folder.String(w)
		}
		counts[w]++
	}
	return counts
}
