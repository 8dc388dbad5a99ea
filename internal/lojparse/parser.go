// Package lojparse glues the scanner, lexer, pipeline, compounder, and
// LALR driver into the single top-level entry point the CLI (and tests)
// call: ParseString in, a token tree and memory-accounting totals out.
package lojparse

import (
	"io"
	"strings"

	"github.com/dekarrin/valsiparse/internal/compound"
	"github.com/dekarrin/valsiparse/internal/ictiobus/parse"
	"github.com/dekarrin/valsiparse/internal/lojtab"
	"github.com/dekarrin/valsiparse/internal/pipeline"
	"github.com/dekarrin/valsiparse/internal/scanner"
	"github.com/dekarrin/valsiparse/internal/token"
)

// Result is the outcome of a successful parse: the tree root plus the
// memory-accounting totals spec section 1/5 requires the core to expose.
type Result struct {
	Root        token.Ref
	Arena       *token.Arena
	TokensBuilt int
}

// ParseError is returned by ParseString/ParseReader when the LALR driver
// could not recover (spec section 7: the "errtype, errlastreduce" snapshot
// the CLI reports). LastGood approximates "last good construct" as the
// selma'o of the last token before the end-of-text sentinel, which need not
// be the token at which the parse failed; this implementation doesn't keep
// a full reduction log, so it's a coarser signal than the reference's
// snapshot.
type ParseError struct {
	Cause    error
	LastGood token.Category
}

func (e ParseError) Error() string { return e.Cause.Error() }
func (e ParseError) Unwrap() error { return e.Cause }

// Parser owns one arena and one compiled grammar parser, and may run many
// parses serially (spec section 5: "each call invokes reset first;
// separate instances are independent").
type Parser struct {
	arena token.Arena
	lalr  parse.Parser
	elide bool
	warn  func(string)

	traceWords      func(string)
	traceCompoundIn func(string)
	traceReduce     func(string)
	traceElide      func(string)
}

// NewParser builds the LALR(1) table once and returns a reusable Parser.
// warn receives lexical diagnostics (unknown/experimental cmavo, forbidden
// cmene substrings); it may be nil. elide controls whether the LALR driver
// may synthesize elided terminators (spec section 4.9, the "-e" flag
// disables this).
func NewParser(warn func(string), elide bool) (*Parser, error) {
	p, _, err := lojtab.Build()
	if err != nil {
		return nil, err
	}
	return &Parser{lalr: p, warn: warn, elide: elide}, nil
}

// Reset clears the arena, ready for the next ParseString/ParseReader call.
func (p *Parser) Reset() {
	p.arena.Reset()
}

// Trace registers a listener that receives the LALR driver's internal
// trace lines (spec section 6's "-dl"/"-dr" flags: tokens entering the
// parser and each reduction it makes). Pass nil to silence it again.
func (p *Parser) Trace(listener func(string)) {
	p.lalr.RegisterTraceListener(listener)
}

// TraceWords registers the "-dv" listener (one line per word as lexed).
func (p *Parser) TraceWords(listener func(string)) { p.traceWords = listener }

// TraceCompounderIn registers the "-dL" listener (one line per token
// entering the compounder).
func (p *Parser) TraceCompounderIn(listener func(string)) { p.traceCompoundIn = listener }

// TraceCompounderReductions registers the "-dR" listener (one line per
// successful compounder driver).
func (p *Parser) TraceCompounderReductions(listener func(string)) { p.traceReduce = listener }

// TraceElisions registers the "-de" listener (one line per synthesized
// elidable terminator).
func (p *Parser) TraceElisions(listener func(string)) { p.traceElide = listener }

// ParseString parses src in full and returns the resulting tree.
func (p *Parser) ParseString(src string) (Result, error) {
	return p.ParseReader(strings.NewReader(src))
}

// ParseReader parses every word r yields before end-of-input. The scanner
// treats a newline as ordinary whitespace, so a line break does not end
// the utterance; the CLI's interactive mode gets its "one line is one
// utterance" behavior by passing each line in its own call.
func (p *Parser) ParseReader(r io.Reader) (Result, error) {
	p.Reset()

	scan := scanner.New(r)
	pl := pipeline.New(&p.arena, scan, p.warn)
	pl.SetTrace(p.traceWords)
	cpd := compound.New(pl, &p.arena)
	cpd.SetTrace(p.traceCompoundIn, p.traceReduce)

	var refs []token.Ref
	for {
		ref := cpd.Next()
		cat := p.arena.Get(ref).Category
		if cat == token.FAhO {
			// fa'o marks end-of-text for the pipeline (spec section 4.7) but
			// is not itself a grammar symbol; the end-of-text sentinel right
			// behind it is what the LALR driver needs to see.
			continue
		}
		refs = append(refs, ref)
		if cat == token.EndOfText {
			break
		}
	}

	root, err := lojtab.ParseTraced(p.lalr, &p.arena, refs, p.elide, p.traceElide)
	if err != nil {
		lastGood := token.Unknown
		if len(refs) >= 2 {
			lastGood = p.arena.Get(refs[len(refs)-2]).Category
		}
		return Result{}, ParseError{Cause: err, LastGood: lastGood}
	}

	return Result{Root: root, Arena: &p.arena, TokensBuilt: p.arena.Len()}, nil
}
