package textkit

import (
	"strings"
	"unicode"
)

type WhitespacePolicy int

const (
	// WhitespaceCollapse joins the reversed words with single spaces and
	// drops leading/trailing whitespace.
	WhitespaceCollapse WhitespacePolicy = iota
	// WhitespacePreserve keeps every original whitespace run in place and
	// only reorders the words between them.
	WhitespacePreserve
)

// ReverseWords returns s with its word order reversed.
func ReverseWords(s string, policy WhitespacePolicy) string {
	if policy == WhitespacePreserve {
		return reversePreserving(s)
	}

	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

func reversePreserving(s string) string {
	segments := splitRuns(s)

	// collect word segment positions, then swap their contents end to end
	var wordAt []int
	for i, seg := range segments {
		if !seg.space {
			wordAt = append(wordAt, i)
		}
	}
	for i, j := 0, len(wordAt)-1; i < j; i, j = i+1, j-1 {
		a, b := wordAt[i], wordAt[j]
		segments[a].text, segments[b].text = segments[b].text, segments[a].text
	}

	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.text)
	}
	return sb.String()
}

type run struct {
	text  string
	space bool
}

// splitRuns cuts s into maximal runs of whitespace and non-whitespace.
func splitRuns(s string) []run {
	var runs []run
	start := 0
	var inSpace bool
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			runs = append(runs, run{text: s[start:i], space: inSpace})
			start = i
			inSpace = isSpace
		}
	}
	if start < len(s) {
		runs = append(runs, run{text: s[start:], space: inSpace})
	}
	return runs
}
