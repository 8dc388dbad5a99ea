// Package parse implements table-driven LR parsing. The only table
// constructor wired up here is LALR(1) (constructLALR1ParseTable in
// lalr.go); the driver itself (lrParser.Parse, in lr.go) is generic over any
// LRParseTable.
package parse

import (
	"github.com/dekarrin/valsiparse/internal/ictiobus/automaton"
	"github.com/dekarrin/valsiparse/internal/ictiobus/grammar"
	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
)

// Parser runs a token stream through a constructed parse table to produce a
// parse tree.
type Parser interface {
	Parse(stream types.TokenStream) (types.ParseTree, error)
	Type() types.ParserType
	TableString() string
	RegisterTraceListener(func(string))
	GetDFA() *automaton.DFA[string]
}

// NewLALRParser builds the LALR(1) table for g and returns a Parser that
// drives it. Returns an error if g is not LALR(1) (the table construction
// finds a shift/reduce or reduce/reduce conflict).
func NewLALRParser(g grammar.Grammar) (Parser, error) {
	table, err := constructLALR1ParseTable(g)
	if err != nil {
		return nil, err
	}
	return &lrParser{table: table, parseType: types.ParserLALR1, gram: g}, nil
}
