// Package lojerr holds the diagnostic types produced anywhere in the parsing
// pipeline, in the style of tunascript's error.go: a SyntaxError carrying the
// offending line and a cursor to the exact column, plus a longer-form grammar
// log used by the LALR driver's --tfile output.
package lojerr

import (
	"fmt"

	"github.com/google/uuid"
)

// SyntaxError is returned by the LALR driver when it cannot continue
// processing input; the earlier pipeline stages do not return errors. Two
// SyntaxErrors with the same Error() string are considered equivalent.
type SyntaxError struct {
	sourceLine string
	source     string

	// line the error occurred on, 1-indexed. 0 means unset (no particular
	// line caused the problem, such as premature end of text).
	line int

	// pos is the 1-indexed character position within the line.
	pos int

	message string
}

// Source is anything capable of reporting its own lexed text and position,
// satisfied by the ictiobus types.Token interface.
type Source interface {
	Lexeme() string
	Line() int
	LinePos() int
	FullLine() string
}

// NewSyntaxError builds a SyntaxError anchored at src with the given message.
func NewSyntaxError(msg string, src Source) SyntaxError {
	return SyntaxError{
		message:    msg,
		sourceLine: src.FullLine(),
		source:     src.Lexeme(),
		pos:        src.LinePos(),
		line:       src.Line(),
	}
}

// NewUnanchoredSyntaxError builds a SyntaxError with no specific source
// position, for cases such as unexpected end of text.
func NewUnanchoredSyntaxError(msg string) SyntaxError {
	return SyntaxError{message: msg}
}

func (se SyntaxError) Error() string {
	if se.line == 0 {
		return fmt.Sprintf("syntax error: %s", se.message)
	}
	return fmt.Sprintf("syntax error: around line %d, char %d: %s", se.line, se.pos, se.message)
}

// Source returns the exact lexed text that caused the error, or "" if none.
func (se SyntaxError) Source() string {
	return se.source
}

// Line returns the 1-indexed line the error occurred on, or 0 if unset.
func (se SyntaxError) Line() int {
	return se.line
}

// Position returns the 1-indexed character position of the error, or 0 if
// unset.
func (se SyntaxError) Position() int {
	return se.pos
}

// FullMessage renders the error message along with the offending source line
// and a cursor pointing at the exact column.
func (se SyntaxError) FullMessage() string {
	msg := se.Error()
	if se.line != 0 {
		msg = se.SourceLineWithCursor() + "\n" + msg
	}
	return msg
}

// SourceLineWithCursor renders the offending line of source with a cursor
// directly beneath the offending column. Returns "" if no source line is
// attached to this error.
func (se SyntaxError) SourceLineWithCursor() string {
	if se.sourceLine == "" {
		return ""
	}

	cursorLine := ""
	for i := 0; i < se.pos-1; i++ {
		cursorLine += " "
	}
	cursorLine += "^"

	return se.sourceLine + "\n" + cursorLine
}

// SessionID is a per-parser-instance identifier, attached to entries in a
// shared GrammarLog so that concurrent parser instances writing to the same
// --tfile can be told apart.
type SessionID = uuid.UUID

// NewSessionID allocates a fresh session identifier for a parser instance.
func NewSessionID() SessionID {
	return uuid.New()
}
