package lojtab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/valsiparse/internal/token"
)

func refsFor(a *token.Arena, cats ...token.Category) []token.Ref {
	refs := make([]token.Ref, len(cats))
	for i, c := range cats {
		refs[i] = a.New(c, "")
	}
	return refs
}

func Test_Build_succeeds(t *testing.T) {
	p, g, err := Build()

	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, NText0, g.StartSymbol())
}

func Test_CategoryForTerminal_knownAndUnknown(t *testing.T) {
	cat, ok := CategoryForTerminal(termName(token.KOhA))
	assert.True(t, ok)
	assert.Equal(t, token.KOhA, cat)

	_, ok = CategoryForTerminal("nosuchterminal")
	assert.False(t, ok)
}

func Test_Parse_simpleBridi(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.KOhA, token.BRIVLA, token.EndOfText)

	root, err := Parse(p, &a, refs, false)

	require.NoError(t, err)
	assert.Equal(t, NBridiCategory(t), a.Get(root).Category)
}

// NBridiCategory resolves the rule-assigned category for NBridi, since
// ruleCategory is package-private and the test lives in the same package.
func NBridiCategory(t *testing.T) token.Category {
	t.Helper()
	cat, ok := ruleCategory[NBridi]
	require.True(t, ok)
	return cat
}

func Test_Parse_bridiWithCu(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.KOhA, token.CU, token.BRIVLA, token.EndOfText)

	root, err := Parse(p, &a, refs, false)

	require.NoError(t, err)
	children := a.Children(root)
	require.Len(t, children, 3)
	assert.Equal(t, token.CU, a.Get(children[1]).Category)
}

func Test_Parse_laCmeneSumti(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.LA, token.CMENE, token.BRIVLA, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.NoError(t, err)
}

func Test_Parse_descriptionSumti(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.LE, token.BRIVLA, token.KU, token.BRIVLA, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.NoError(t, err)
}

func Test_Parse_anyWordSumti(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.AnyWord, token.BRIVLA, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.NoError(t, err)
}

func Test_Parse_bareCoi(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.COI, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.NoError(t, err)
}

func Test_Parse_leadingI(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.I, token.KOhA, token.BRIVLA, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.NoError(t, err)
}

func Test_Parse_invalidInputFails(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.BRIVLA, token.EndOfText)

	_, err = Parse(p, &a, refs, false)

	assert.Error(t, err)
}

func Test_ParseTraced_elisionExhaustedReturnsOriginalError(t *testing.T) {
	var a token.Arena
	p, _, err := Build()
	require.NoError(t, err)

	refs := refsFor(&a, token.BRIVLA, token.EndOfText)

	noElideRoot, noElideErr := Parse(p, &a, refs, false)
	require.Error(t, noElideErr)
	assert.Equal(t, token.Ref(0), noElideRoot)

	var elided []string
	_, elideErr := ParseTraced(p, &a, refs, true, func(s string) { elided = append(elided, s) })

	require.Error(t, elideErr)
	assert.Equal(t, noElideErr.Error(), elideErr.Error(), "every elision candidate should fail and the original error should surface")
	assert.Empty(t, elided, "onElide must not fire when no candidate lets the parse succeed")
}

func Test_SaveLoadTables_roundTrips(t *testing.T) {
	_, g, err := Build()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "grammar.bin")
	require.NoError(t, SaveTables(g, path))

	p, loaded, err := LoadTables(path)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, g.StartSymbol(), loaded.StartSymbol())

	var a token.Arena
	refs := refsFor(&a, token.KOhA, token.BRIVLA, token.EndOfText)
	_, err = Parse(p, &a, refs, false)
	assert.NoError(t, err)
}
