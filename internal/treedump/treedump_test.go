package treedump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/valsiparse/internal/token"
)

func Test_Tab_singleLeaf(t *testing.T) {
	var a token.Arena
	leaf := a.New(token.KOhA, "mi")

	out := Tab(&a, leaf, Options{})

	assert.Equal(t, "KOhA(mi)\n", out)
}

func Test_Tab_collapsesSingleChildChainsByDefault(t *testing.T) {
	var a token.Arena
	leaf := a.New(token.KOhA, "mi")
	mid := a.New(token.Unknown, "")
	root := a.New(token.Unknown, "")
	a.AddChild(mid, leaf)
	a.AddChild(root, mid)

	out := Tab(&a, root, Options{})

	assert.Equal(t, "UNK\n\tKOhA(mi)\n", out, "the single-child intermediate node should be skipped entirely")
}

func Test_Tab_keepsSingleChildChainsWhenRequested(t *testing.T) {
	var a token.Arena
	leaf := a.New(token.KOhA, "mi")
	mid := a.New(token.Unknown, "")
	root := a.New(token.Unknown, "")
	a.AddChild(mid, leaf)
	a.AddChild(root, mid)

	out := Tab(&a, root, Options{KeepSingleChild: true})

	assert.Equal(t, "UNK\n\tUNK\n\t\tKOhA(mi)\n", out)
}

func Test_Tab_multiChildNodeIsNotCollapsed(t *testing.T) {
	var a token.Arena
	c1 := a.New(token.KOhA, "mi")
	c2 := a.New(token.BRIVLA, "klama")
	root := a.New(token.Unknown, "")
	a.AddChild(root, c1)
	a.AddChild(root, c2)

	out := Tab(&a, root, Options{})

	assert.Equal(t, "UNK\n\tKOhA(mi)\n\tBRIVLA(klama)\n", out)
}

func Test_Prolog_leafWithText(t *testing.T) {
	var a token.Arena
	leaf := a.New(token.KOhA, "mi")

	out := Prolog(&a, leaf, Options{})

	assert.Equal(t, `KOhA("mi").`, out)
}

func Test_Prolog_leafWithoutTextHasNoParens(t *testing.T) {
	var a token.Arena
	leaf := a.New(token.Unknown, "")

	out := Prolog(&a, leaf, Options{})

	assert.Equal(t, "UNK.", out)
}

func Test_Prolog_internalNodeNestsChildren(t *testing.T) {
	var a token.Arena
	c1 := a.New(token.KOhA, "mi")
	c2 := a.New(token.BRIVLA, "klama")
	root := a.New(token.Unknown, "")
	a.AddChild(root, c1)
	a.AddChild(root, c2)

	out := Prolog(&a, root, Options{})

	assert.Equal(t, `UNK(KOhA("mi"), BRIVLA("klama")).`, out)
}

func Test_wrap_noopWhenMaxLineWidthIsZeroOrLess(t *testing.T) {
	assert.Equal(t, "hello", wrap("hello", Options{MaxLineWidth: 0}))
	assert.Equal(t, "hello", wrap("hello", Options{MaxLineWidth: -5}))
}

func Test_wrap_leavesShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello", wrap("hello", Options{MaxLineWidth: 80}))
}
