// Package lex classifies the words produced by the scanner into brivla,
// cmene, or raw cmavo text (spec section 4.2).
package lex

import (
	"fmt"
	"strings"

	"github.com/dekarrin/valsiparse/internal/token"
)

// forbiddenCmeneSubstrings are cmene-internal substrings that are illegal
// unless preceded by a vowel; occurrences are only diagnosed, not rejected.
var forbiddenCmeneSubstrings = []string{"la", "doi", "h", "w", "q"}

// Word is one classified unit ready for the filter stage: either a whole
// word (brivla/cmene) or a cmavo prefix with the unconsumed remainder of
// the original word queued for the next call.
type Word struct {
	Category  token.Category
	Text      string
	Remainder string
}

// Classifier turns scanner words into Words, re-queuing cmavo remainders
// that the scanner already delivered as a single word (scanner splits only
// on whitespace/"."; the lexer further splits a word into its leading
// cmavo and any trailing cmavo concatenated onto it without spaces, e.g.
// "mibabi" need not arise in practice but a run like "le'enai" does).
type Classifier struct {
	pending string
	warn    func(string)
}

// NewClassifier creates a Classifier. warn, if non-nil, receives
// diagnostic messages for forbidden cmene substrings.
func NewClassifier(warn func(string)) *Classifier {
	return &Classifier{warn: warn}
}

// Feed queues a scanner word for classification; Next must be called until
// it reports no more words from this feed before the next Feed.
func (c *Classifier) Feed(word string) {
	c.pending = word
}

// Pending reports whether there is queued text left to classify.
func (c *Classifier) Pending() bool {
	return c.pending != ""
}

// Next classifies and consumes the next cmavo/brivla/cmene unit from the
// currently fed word. ok is false if nothing is queued.
func (c *Classifier) Next() (Word, bool) {
	if c.pending == "" {
		return Word{}, false
	}
	text := c.pending
	c.pending = ""

	if isCmene(text) {
		c.checkForbidden(text)
		return Word{Category: token.CMENE, Text: text}, true
	}
	if isBrivla(text) {
		return Word{Category: token.BRIVLA, Text: text}, true
	}

	prefix, rest := cmavoPrefix(text)
	c.pending = rest
	return Word{Category: token.Unknown, Text: prefix}, true
}

// isCmene reports whether word ends in a Lojban consonant.
func isCmene(word string) bool {
	if word == "" {
		return false
	}
	last := word[len(word)-1]
	return token.IsConsonant(last)
}

// isBrivla reports whether word contains two consecutive consonants,
// ignoring 'y' and apostrophes.
func isBrivla(word string) bool {
	filtered := stripYAndApostrophe(word)
	for i := 0; i+1 < len(filtered); i++ {
		if token.IsConsonant(filtered[i]) && token.IsConsonant(filtered[i+1]) {
			return true
		}
	}
	return false
}

func stripYAndApostrophe(word string) string {
	var sb strings.Builder
	for i := 0; i < len(word); i++ {
		if word[i] == 'y' || word[i] == '\'' {
			continue
		}
		sb.WriteByte(word[i])
	}
	return sb.String()
}

// cmavoPrefix extracts the longest leading prefix of word containing no
// internal consonant start: scan from position 1 until the first
// consonant, per spec section 4.2.
func cmavoPrefix(word string) (prefix, remainder string) {
	if word == "" {
		return "", ""
	}
	end := 1
	for end < len(word) && !token.IsConsonant(word[end]) {
		end++
	}
	return word[:end], word[end:]
}

func (c *Classifier) checkForbidden(word string) {
	if c.warn == nil {
		return
	}
	for _, bad := range forbiddenCmeneSubstrings {
		idx := 0
		for {
			pos := strings.Index(word[idx:], bad)
			if pos < 0 {
				break
			}
			at := idx + pos
			precededByVowel := at > 0 && token.IsVowel(word[at-1])
			if !precededByVowel {
				c.warn(fmt.Sprintf("cmene %q contains forbidden substring %q at column %d", word, bad, at))
			}
			idx = at + 1
		}
	}
}
