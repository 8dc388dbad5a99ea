package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a nice list of things based on their display name.
//
// TODO: turn this into a generic function that accepts displayable OR ~string
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

// OrderedKeys returns the keys of m sorted for deterministic iteration, used
// throughout the LALR driver so that table dumps and cache population don't
// depend on Go's randomized map order.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Alphabetized returns a sorted copy of sl.
func Alphabetized[T ~string](sl []T) []T {
	out := make([]T, len(sl))
	copy(out, sl)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ArticleFor returns "a" or "an" depending on whether phrase begins with a
// vowel sound, capitalized if capital is true. Used when composing
// human-readable expected-token lists for syntax errors.
func ArticleFor(phrase string, capital bool) string {
	article := "a"
	if len(phrase) > 0 && strings.ContainsRune("aeiouAEIOU", rune(phrase[0])) {
		article = "an"
	}
	if capital {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}

// EqualSlices reports whether two slices of comparable elements contain the
// same elements in the same order.
func EqualSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
