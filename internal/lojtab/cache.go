package lojtab

import (
	"os"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/valsiparse/internal/ictiobus/grammar"
	"github.com/dekarrin/valsiparse/internal/ictiobus/parse"
	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
)

func humanClass(human string) types.TokenClass {
	return types.MakeDefaultClass(human)
}

// serializedRule is the rezi-friendly projection of a grammar.Rule: plain
// strings and slices only, so rezi's reflection-based binary codec (the
// same one the teacher uses for its on-disk game state) can round-trip it
// without needing custom marshal methods on the grammar package's types.
type serializedRule struct {
	NonTerminal string
	Productions [][]string
}

type serializedGrammar struct {
	Start     string
	Terms     []string
	TermHuman []string
	Rules     []serializedRule
}

func snapshot(g grammar.Grammar) serializedGrammar {
	snap := serializedGrammar{Start: g.StartSymbol()}
	for _, term := range g.Terminals() {
		snap.Terms = append(snap.Terms, term)
		snap.TermHuman = append(snap.TermHuman, g.Term(term).Human())
	}
	for _, nt := range g.NonTerminals() {
		rule := g.Rule(nt)
		sr := serializedRule{NonTerminal: rule.NonTerminal}
		for _, p := range rule.Productions {
			sr.Productions = append(sr.Productions, []string(p))
		}
		snap.Rules = append(snap.Rules, sr)
	}
	return snap
}

func (snap serializedGrammar) rebuild() grammar.Grammar {
	var g grammar.Grammar
	g.Start = snap.Start
	for i, term := range snap.Terms {
		g.AddTerm(term, humanClass(snap.TermHuman[i]))
	}
	for _, r := range snap.Rules {
		for _, p := range r.Productions {
			g.AddRule(r.NonTerminal, p)
		}
	}
	return g
}

// SaveTables rezi-encodes the grammar definition (not the constructed LALR
// table itself, which is cheap to rebuild from the grammar) to path.
func SaveTables(g grammar.Grammar, path string) error {
	data := rezi.EncBinary(snapshot(g))
	return os.WriteFile(path, data, 0o644)
}

// LoadTables reads a grammar snapshot previously written by SaveTables and
// rebuilds its LALR(1) parser.
func LoadTables(path string) (parse.Parser, grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, grammar.Grammar{}, err
	}

	var snap serializedGrammar
	if _, err := rezi.DecBinary(data, &snap); err != nil {
		return nil, grammar.Grammar{}, err
	}

	g := snap.rebuild()
	p, err := parse.NewLALRParser(g)
	if err != nil {
		return nil, grammar.Grammar{}, err
	}
	return p, g, nil
}
