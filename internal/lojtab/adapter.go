package lojtab

import (
	"fmt"

	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
	"github.com/dekarrin/valsiparse/internal/token"
)

// arenaToken adapts a token.Arena leaf into the types.Token interface the
// ictiobus LALR driver consumes.
type arenaToken struct {
	ref   token.Ref
	arena *token.Arena
	class types.TokenClass
}

func (a arenaToken) Class() types.TokenClass { return a.class }
func (a arenaToken) Lexeme() string          { return a.arena.Get(a.ref).Text }

// Precise source position isn't threaded through the arena; diagnostics
// fall back to the token's own text for context.
func (a arenaToken) LinePos() int     { return 0 }
func (a arenaToken) Line() int        { return 0 }
func (a arenaToken) FullLine() string { return a.arena.Get(a.ref).Text }
func (a arenaToken) String() string {
	return fmt.Sprintf("%s %q", a.class.ID(), a.Lexeme())
}

// tokenStream adapts a flat slice of arena refs into types.TokenStream.
type tokenStream struct {
	arena *token.Arena
	refs  []token.Ref
	pos   int
}

func newTokenStream(arena *token.Arena, refs []token.Ref) *tokenStream {
	return &tokenStream{arena: arena, refs: refs}
}

func (s *tokenStream) classFor(ref token.Ref) types.TokenClass {
	cat := s.arena.Get(ref).Category
	if cat == token.EndOfText {
		return types.TokenEndOfText
	}
	return types.MakeDefaultClass(cat.Name())
}

func (s *tokenStream) Next() types.Token {
	tok := s.Peek()
	if s.pos < len(s.refs) {
		s.pos++
	}
	return tok
}

func (s *tokenStream) Peek() types.Token {
	if s.pos >= len(s.refs) {
		last := s.refs[len(s.refs)-1]
		return arenaToken{ref: last, arena: s.arena, class: types.TokenEndOfText}
	}
	ref := s.refs[s.pos]
	return arenaToken{ref: ref, arena: s.arena, class: s.classFor(ref)}
}

func (s *tokenStream) HasNext() bool {
	return s.pos < len(s.refs)
}
