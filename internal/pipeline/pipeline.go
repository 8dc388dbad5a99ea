// Package pipeline assembles the filter, selmao, absorption, glue, and
// termination stages (spec sections 4.3-4.7) into a single token source
// that the compounder consumes. Each stage keeps its lookahead state as a
// field of the Pipeline instance rather than function-local statics, so
// that one process can run many parses serially or many in parallel (spec
// section 9, "function-level global state -> parser-instance state").
package pipeline

import (
	"github.com/dekarrin/valsiparse/internal/lex"
	"github.com/dekarrin/valsiparse/internal/scanner"
	"github.com/dekarrin/valsiparse/internal/selmao"
	"github.com/dekarrin/valsiparse/internal/token"
)

// indicatorCategories are absorbed as trailing children by the absorb
// stage (spec section 4.5).
var indicatorCategories = map[token.Category]bool{
	token.UI:   true,
	token.CAI:  true,
	token.Y:    true,
	token.DAhO: true,
	token.FUhE: true,
	token.FUhO: true,
}

// Pipeline turns scanned, lexed words into a fully-absorbed, ZEI-glued,
// termination-guaranteed token stream.
type Pipeline struct {
	arena *token.Arena
	scan  *scanner.Scanner
	cls   *lex.Classifier
	warn  func(string)

	// filter state
	mode        quoteMode
	delimText   string
	quoteHost   token.Ref
	sawZoInLohu bool
	pendingOut  []token.Ref

	// lerfu lookahead pushback (the one token of lookahead the lerfu stage
	// peeked but did not consume)
	pushbackLerfu []token.Ref

	// glue lookahead pushback, same role as pushbackLerfu but one stage up
	pushbackGlue []token.Ref

	// termin state
	lastCategory token.Category
	terminated   bool

	// trace receives one line per token Next() emits (spec section 6's
	// "-dv" flag); nil disables it.
	trace func(string)
}

// SetTrace registers a listener invoked once per token Next() returns.
// Pass nil to disable it again.
func (p *Pipeline) SetTrace(listener func(string)) {
	p.trace = listener
}

type quoteMode int

const (
	modeNormal quoteMode = iota
	modeZO
	modeZOIStart
	modeZOIString
	modeLOhU
)

// New builds a Pipeline reading from scan, allocating tokens in arena.
// warn receives diagnostic messages (unknown/experimental cmavo, forbidden
// cmene substrings); it may be nil.
func New(arena *token.Arena, scan *scanner.Scanner, warn func(string)) *Pipeline {
	return &Pipeline{
		arena: arena,
		scan:  scan,
		cls:   lex.NewClassifier(warn),
		warn:  warn,
	}
}

// rawWord pulls the next lexical unit (brivla/cmene/cmavo-prefix) as a leaf
// token, returning the end-of-text sentinel once the scanner is exhausted.
func (p *Pipeline) rawWord() token.Ref {
	for !p.cls.Pending() {
		w, ok := p.scan.Next()
		if !ok {
			return p.arena.New(token.EndOfText, "")
		}
		p.cls.Feed(w)
	}
	word, _ := p.cls.Next()
	return p.arena.New(word.Category, word.Text)
}

// withSelmao resolves a leaf's category via the cmavo skeleton table if it
// wasn't already assigned by lex (CMENE/BRIVLA) or filter (any_word /
// anything). Spec section 4.4.
func (p *Pipeline) withSelmao() token.Ref {
	ref := p.filter()
	n := p.arena.Get(ref)
	if n.Category == token.Unknown {
		n.Category = selmao.Lookup(n.Text, p.warn)
	}
	return ref
}

// Next returns the next fully processed token: filtered, selma'o-assigned,
// absorbed, glued, and guaranteed-terminated.
func (p *Pipeline) Next() token.Ref {
	if p.terminated {
		return p.arena.New(token.EndOfText, "")
	}
	ref := p.glue()
	cat := p.arena.Get(ref).Category

	if cat == token.EndOfText {
		if p.lastCategory != token.FAhO {
			p.lastCategory = token.FAhO
			ref = p.arena.New(token.FAhO, "(fa'o)")
			p.traceToken(ref)
			return ref
		}
		p.terminated = true
		return ref
	}
	p.lastCategory = cat
	p.traceToken(ref)
	return ref
}

func (p *Pipeline) traceToken(ref token.Ref) {
	if p.trace == nil {
		return
	}
	n := p.arena.Get(ref)
	p.trace(n.Category.Name() + " " + n.Text)
}
