package selmao

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/valsiparse/internal/token"
)

func Test_VowelCode(t *testing.T) {
	cases := []struct {
		text string
		want token.Category
	}{
		{"i", token.Category(vI)},
		{"a", token.Category(vA)},
		{"ai", token.Category(vAI)},
		{"au", token.Category(vAU)},
		{"o'a", token.Category(vOhA)},
		{"y", token.Category(vY)},
		{"ia", token.Category(vIA)},
		{"zz", token.Unknown},
		{"", token.Unknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, VowelCode(c.text), "VowelCode(%q)", c.text)
	}
}

func Test_rawLookup_knownCmavo(t *testing.T) {
	cases := []struct {
		text string
		want token.Category
	}{
		{"mi", token.KOhA},
		{"la", token.LA},
		{"le", token.LE},
		{"lo", token.LE},
		{"ku", token.KU},
		{"pa", token.PA},
		{"ko'a", token.KOhA},
		{"y", token.Y},
		{"xi", token.XI},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, rawLookup(c.text), "rawLookup(%q)", c.text)
	}
}

func Test_rawLookup_unknownAndExperimental(t *testing.T) {
	assert.Equal(t, token.Unknown, rawLookup("zz"))
	assert.Equal(t, token.Experimental, rawLookup("xo'a"))
}

func Test_Lookup_downgradesUnknownAndExperimentalToUI(t *testing.T) {
	var warnings []string
	warn := func(s string) { warnings = append(warnings, s) }

	assert.Equal(t, token.UI, Lookup("zz", warn))
	assert.Equal(t, token.UI, Lookup("xo'a", warn))
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "unknown cmavo")
	assert.Contains(t, warnings[1], "experimental cmavo")
}

func Test_Lookup_knownCmavoProducesNoWarning(t *testing.T) {
	called := false
	warn := func(string) { called = true }

	assert.Equal(t, token.KOhA, Lookup("mi", warn))
	assert.False(t, called)
}

func Test_Lookup_nilWarnIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Lookup("zz", nil)
	})
}

func Test_IsKnownCmavo(t *testing.T) {
	assert.True(t, IsKnownCmavo("mi"))
	assert.True(t, IsKnownCmavo("MI"), "should lowercase before lookup")
	assert.False(t, IsKnownCmavo("zz"))
}

func Test_Dump_hasOneLinePerRow(t *testing.T) {
	out := Dump()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(rowConsonants))
	assert.True(t, strings.HasPrefix(lines[0], "(vowel)"))
	assert.Contains(t, out, "KOhA")
}
