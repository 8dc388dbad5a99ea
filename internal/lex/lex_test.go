package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/valsiparse/internal/token"
)

func drain(c *Classifier) []Word {
	var out []Word
	for {
		w, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

func Test_Classifier_Next_classifiesCmene(t *testing.T) {
	c := NewClassifier(nil)
	c.Feed("klamat")

	words := drain(c)

	assert.Equal(t, []Word{{Category: token.CMENE, Text: "klamat"}}, words)
}

func Test_Classifier_Next_classifiesBrivla(t *testing.T) {
	c := NewClassifier(nil)
	c.Feed("klama")

	words := drain(c)

	assert.Equal(t, []Word{{Category: token.BRIVLA, Text: "klama"}}, words)
}

func Test_Classifier_Next_classifiesPlainCmavo(t *testing.T) {
	c := NewClassifier(nil)
	c.Feed("mi")

	words := drain(c)

	assert.Equal(t, []Word{{Category: token.Unknown, Text: "mi"}}, words)
}

func Test_Classifier_Next_splitsConcatenatedCmavo(t *testing.T) {
	c := NewClassifier(nil)
	c.Feed("le'enai")

	words := drain(c)

	assert.Equal(t, []Word{
		{Category: token.Unknown, Text: "le'e"},
		{Category: token.Unknown, Text: "nai"},
	}, words)
}

func Test_Classifier_Pending_tracksQueuedRemainder(t *testing.T) {
	c := NewClassifier(nil)
	c.Feed("le'enai")

	assert.True(t, c.Pending())
	c.Next()
	assert.True(t, c.Pending(), "remainder should still be queued after first Next")
	c.Next()
	assert.False(t, c.Pending())
}

func Test_Classifier_Next_returnsFalseWhenNothingFed(t *testing.T) {
	c := NewClassifier(nil)

	_, ok := c.Next()

	assert.False(t, ok)
}

func Test_Classifier_checkForbidden_warnsOnUnprecededSubstring(t *testing.T) {
	var warnings []string
	c := NewClassifier(func(s string) { warnings = append(warnings, s) })

	c.Feed("lasnog")
	drain(c)

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "lasnog")
	assert.Contains(t, warnings[0], `"la"`)
}

func Test_Classifier_checkForbidden_silentWhenPrecededByVowel(t *testing.T) {
	var warnings []string
	c := NewClassifier(func(s string) { warnings = append(warnings, s) })

	c.Feed("bilatrog")
	drain(c)

	assert.Empty(t, warnings, "substring preceded by a vowel is not forbidden")
}

func Test_isCmene(t *testing.T) {
	assert.True(t, isCmene("klamat"))
	assert.False(t, isCmene("klama"))
	assert.False(t, isCmene(""))
}

func Test_isBrivla(t *testing.T) {
	assert.True(t, isBrivla("klama"))
	assert.False(t, isBrivla("mi"))
	assert.False(t, isBrivla("ko'a"), "y and apostrophe must not count toward consonant runs")
}

func Test_cmavoPrefix(t *testing.T) {
	prefix, rest := cmavoPrefix("le'enai")
	assert.Equal(t, "le'e", prefix)
	assert.Equal(t, "nai", rest)

	prefix, rest = cmavoPrefix("mi")
	assert.Equal(t, "mi", prefix)
	assert.Equal(t, "", rest)

	prefix, rest = cmavoPrefix("")
	assert.Equal(t, "", prefix)
	assert.Equal(t, "", rest)
}
