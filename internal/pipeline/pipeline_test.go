package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/valsiparse/internal/scanner"
	"github.com/dekarrin/valsiparse/internal/token"
)

func newPipeline(t *testing.T, text string) (*Pipeline, *token.Arena) {
	t.Helper()
	var a token.Arena
	p := New(&a, scanner.New(strings.NewReader(text)), nil)
	return p, &a
}

func Test_Pipeline_Next_plainWordsThenFAhOThenEndOfText(t *testing.T) {
	p, a := newPipeline(t, "mi klama")

	r1 := p.Next()
	r2 := p.Next()
	r3 := p.Next()
	r4 := p.Next()
	r5 := p.Next()

	assert.Equal(t, token.KOhA, a.Get(r1).Category)
	assert.Equal(t, token.BRIVLA, a.Get(r2).Category)
	assert.Equal(t, token.FAhO, a.Get(r3).Category)
	assert.Equal(t, token.EndOfText, a.Get(r4).Category)
	assert.Equal(t, token.EndOfText, a.Get(r5).Category, "calls after termination keep returning end-of-text")
}

func Test_Pipeline_Next_absorbsTrailingIndicator(t *testing.T) {
	p, a := newPipeline(t, "klama cai")

	host := p.Next()

	assert.Equal(t, token.BRIVLA, a.Get(host).Category)
	children := a.Children(host)
	assert.Len(t, children, 2)
	assert.Equal(t, token.BRIVLA, a.Get(children[0]).Category)
	assert.Equal(t, token.CAI, a.Get(children[1]).Category)
}

func Test_Pipeline_Next_lerfuConvertsHostPlusBU(t *testing.T) {
	p, a := newPipeline(t, "mi bu")

	host := p.Next()

	assert.Equal(t, token.BY, a.Get(host).Category)
	children := a.Children(host)
	assert.Len(t, children, 2)
	assert.Equal(t, token.KOhA, a.Get(children[0]).Category)
	assert.Equal(t, token.BU, a.Get(children[1]).Category)
}

func Test_Pipeline_Next_fabsorbsLeadingBAhE(t *testing.T) {
	p, a := newPipeline(t, "ba'e klama")

	host := p.Next()

	assert.Equal(t, token.BRIVLA, a.Get(host).Category, "wrapper takes the category of the token BAhE modifies")
	children := a.Children(host)
	assert.Len(t, children, 2)
	assert.Equal(t, token.BAhE, a.Get(children[0]).Category)
	assert.Equal(t, token.BRIVLA, a.Get(children[1]).Category)
}

func Test_Pipeline_Next_gluesZeiChain(t *testing.T) {
	p, a := newPipeline(t, "klama zei klama")

	host := p.Next()

	assert.Equal(t, token.BRIVLA, a.Get(host).Category)
	children := a.Children(host)
	assert.Len(t, children, 3)
	assert.Equal(t, token.BRIVLA, a.Get(children[0]).Category)
	assert.Equal(t, token.ZEI, a.Get(children[1]).Category)
	assert.Equal(t, token.BRIVLA, a.Get(children[2]).Category)
}

func Test_Pipeline_Next_zoQuotesExactlyOneWord(t *testing.T) {
	p, a := newPipeline(t, "zo bansu")

	zo := p.Next()
	quoted := p.Next()

	assert.Equal(t, token.ZO, a.Get(zo).Category)
	assert.Equal(t, token.AnyWord, a.Get(quoted).Category)
	assert.Equal(t, "bansu", a.Get(quoted).Text)
}

func Test_Pipeline_Next_zoiQuotesUntilDelimiterRepeats(t *testing.T) {
	p, a := newPipeline(t, "zoi broda mi klama broda")

	zoi := p.Next()
	open := p.Next()
	body := p.Next()
	close_ := p.Next()

	assert.Equal(t, token.ZOI, a.Get(zoi).Category)

	assert.Equal(t, token.AnyWord, a.Get(open).Category)
	assert.Equal(t, "broda", a.Get(open).Text)

	assert.Equal(t, token.Anything, a.Get(body).Category)
	bodyChildren := a.Children(body)
	assert.Len(t, bodyChildren, 2)
	assert.Equal(t, "mi", a.Get(bodyChildren[0]).Text)
	assert.Equal(t, "klama", a.Get(bodyChildren[1]).Text)

	assert.Equal(t, token.AnyWord, a.Get(close_).Category)
	assert.Equal(t, "broda", a.Get(close_).Text)
}

func Test_Pipeline_SetTrace_receivesOneLinePerEmittedToken(t *testing.T) {
	p, _ := newPipeline(t, "mi klama")

	var lines []string
	p.SetTrace(func(s string) { lines = append(lines, s) })

	p.Next()
	p.Next()

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "mi")
	assert.Contains(t, lines[1], "klama")
}

func Test_Pipeline_SetTrace_nilDisablesIt(t *testing.T) {
	p, _ := newPipeline(t, "mi")

	p.SetTrace(func(string) { t.Fatal("trace should not fire once disabled") })
	p.SetTrace(nil)

	assert.NotPanics(t, func() { p.Next() })
}
