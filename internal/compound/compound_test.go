package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/valsiparse/internal/token"
)

// fakeSource serves a fixed list of refs, then repeats a tail category
// (end-of-text by default) forever, mimicking a pipeline that has run dry.
type fakeSource struct {
	arena *token.Arena
	refs  []token.Ref
	i     int
	tail  token.Category
}

func (f *fakeSource) Next() token.Ref {
	if f.i < len(f.refs) {
		r := f.refs[f.i]
		f.i++
		return r
	}
	if f.tail == 0 {
		f.tail = token.EndOfText
	}
	return f.arena.New(f.tail, "")
}

func newCompounder(t *testing.T, cats ...token.Category) (*Compounder, *token.Arena) {
	t.Helper()
	var a token.Arena
	refs := make([]token.Ref, len(cats))
	for i, c := range cats {
		refs[i] = a.New(c, "")
	}
	src := &fakeSource{arena: &a, refs: refs}
	return New(src, &a), &a
}

func Test_Compounder_Next_fallsThroughToBareEK(t *testing.T) {
	c, a := newCompounder(t, token.A)

	result := c.Next()

	assert.Equal(t, token.LexerEK, a.Get(result).Category)
	children := a.Children(result)
	assert.Len(t, children, 1)
	assert.Equal(t, token.A, a.Get(children[0]).Category)
}

func Test_Compounder_Next_naheBo(t *testing.T) {
	c, a := newCompounder(t, token.NAhE, token.BO)

	result := c.Next()

	assert.Equal(t, token.LexerNAhEBO, a.Get(result).Category)
	children := a.Children(result)
	assert.Len(t, children, 2)
	assert.Equal(t, token.NAhE, a.Get(children[0]).Category)
	assert.Equal(t, token.BO, a.Get(children[1]).Category)
}

func Test_Compounder_Next_naKu(t *testing.T) {
	c, a := newCompounder(t, token.NA, token.KU)

	result := c.Next()

	assert.Equal(t, token.LexerNAKU, a.Get(result).Category)
	children := a.Children(result)
	assert.Len(t, children, 2)
	assert.Equal(t, token.NA, a.Get(children[0]).Category)
	assert.Equal(t, token.KU, a.Get(children[1]).Category)
}

func Test_Compounder_Next_naWithoutKuFallsBackToRawToken(t *testing.T) {
	c, a := newCompounder(t, token.NA, token.A)

	result := c.Next()

	assert.Equal(t, token.NA, a.Get(result).Category, "NAKU must fail and push NA back unchanged")

	next := c.Next()
	assert.Equal(t, token.LexerEK, a.Get(next).Category)
}

func Test_Compounder_Next_numberConsumesRunOfDigits(t *testing.T) {
	c, a := newCompounder(t, token.PA, token.PA, token.PA)

	result := c.Next()

	assert.Equal(t, token.LexerNumber, a.Get(result).Category)
	assert.Len(t, a.Children(result), 3)
}

func Test_Compounder_Next_uttOrdinalTakesPriorityOverLerfuString(t *testing.T) {
	c, a := newCompounder(t, token.BY, token.BY)

	first := c.Next()
	second := c.Next()

	assert.Equal(t, token.LexerUttOrdinal, a.Get(first).Category)
	assert.Len(t, a.Children(first), 1, "UttOrdinal is tried first in the BY dispatch list and only consumes one BY")
	assert.Equal(t, token.LexerUttOrdinal, a.Get(second).Category)
}

func Test_Compounder_Next_categoryWithNoDriversPassesThrough(t *testing.T) {
	c, a := newCompounder(t, token.BRIVLA)

	result := c.Next()

	assert.Equal(t, token.BRIVLA, a.Get(result).Category)
	assert.Empty(t, a.Children(result))
}

func Test_Compounder_SetTrace_firesOnEnterAndOnReduce(t *testing.T) {
	c, _ := newCompounder(t, token.NA, token.KU)

	var entered, reduced []string
	c.SetTrace(
		func(s string) { entered = append(entered, s) },
		func(s string) { reduced = append(reduced, s) },
	)

	c.Next()

	assert.NotEmpty(t, entered)
	assert.Equal(t, []string{"lexer_J"}, reduced)
}

func Test_Queue_PushBack_restoresOriginalOrder(t *testing.T) {
	var a token.Arena
	r1 := a.New(token.A, "")
	r2 := a.New(token.BO, "")
	src := &fakeSource{arena: &a}
	q := NewQueue(src, &a)

	q.PushBack(r1, r2)

	assert.Equal(t, r1, q.Next())
	assert.Equal(t, r2, q.Next())
}

func Test_Queue_Expect_pushesBackOnMismatch(t *testing.T) {
	var a token.Arena
	r1 := a.New(token.A, "")
	src := &fakeSource{arena: &a}
	q := NewQueue(src, &a)
	q.PushBack(r1)

	_, ok := q.Expect(token.BO)
	assert.False(t, ok)

	got, ok := q.Expect(token.A)
	assert.True(t, ok)
	assert.Equal(t, r1, got)
}
