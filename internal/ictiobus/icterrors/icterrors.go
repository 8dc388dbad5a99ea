// Package icterrors adapts internal/lojerr's SyntaxError to the
// token-producing types the LALR driver works with, so that parse/lr.go can
// raise a properly positioned diagnostic without depending on lojerr's
// higher-level session/log machinery directly.
package icterrors

import (
	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
	"github.com/dekarrin/valsiparse/internal/lojerr"
)

// NewSyntaxErrorFromToken builds a lojerr.SyntaxError anchored at tok.
func NewSyntaxErrorFromToken(msg string, tok types.Token) lojerr.SyntaxError {
	return lojerr.NewSyntaxError(msg, tokenSource{tok})
}

type tokenSource struct {
	tok types.Token
}

func (ts tokenSource) Lexeme() string   { return ts.tok.Lexeme() }
func (ts tokenSource) Line() int        { return ts.tok.Line() }
func (ts tokenSource) LinePos() int     { return ts.tok.LinePos() }
func (ts tokenSource) FullLine() string { return ts.tok.FullLine() }
