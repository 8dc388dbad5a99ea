package lojerr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	lexeme   string
	line     int
	linePos  int
	fullLine string
}

func (f fakeSource) Lexeme() string   { return f.lexeme }
func (f fakeSource) Line() int        { return f.line }
func (f fakeSource) LinePos() int     { return f.linePos }
func (f fakeSource) FullLine() string { return f.fullLine }

func Test_NewSyntaxError_capturesSourcePosition(t *testing.T) {
	src := fakeSource{lexeme: "xy", line: 3, linePos: 5, fullLine: "mi xy klama"}

	err := NewSyntaxError("unexpected token", src)

	assert.Equal(t, "xy", err.Source())
	assert.Equal(t, 3, err.Line())
	assert.Equal(t, 5, err.Position())
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "char 5")
	assert.Contains(t, err.Error(), "unexpected token")
}

func Test_NewUnanchoredSyntaxError_hasNoLineOrPosition(t *testing.T) {
	err := NewUnanchoredSyntaxError("premature end of text")

	assert.Equal(t, 0, err.Line())
	assert.Equal(t, 0, err.Position())
	assert.Equal(t, "syntax error: premature end of text", err.Error())
	assert.Equal(t, "", err.SourceLineWithCursor())
}

func Test_SourceLineWithCursor_pointsAtColumn(t *testing.T) {
	src := fakeSource{lexeme: "xy", line: 1, linePos: 4, fullLine: "mi xy"}
	err := NewSyntaxError("bad", src)

	out := err.SourceLineWithCursor()

	lines := strings.Split(out, "\n")
	assert.Equal(t, "mi xy", lines[0])
	assert.Equal(t, "   ^", lines[1], "cursor line should have pos-1 leading spaces then the cursor")
}

func Test_FullMessage_includesCursorWhenAnchored(t *testing.T) {
	src := fakeSource{lexeme: "xy", line: 1, linePos: 4, fullLine: "mi xy"}
	err := NewSyntaxError("bad", src)

	full := err.FullMessage()

	assert.Contains(t, full, "mi xy")
	assert.Contains(t, full, "syntax error")
}

func Test_NewSessionID_generatesDistinctIDs(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.NotEqual(t, a, b)
}

func Test_GrammarLog_Logf_tagsEntryWithSession(t *testing.T) {
	var buf bytes.Buffer
	gl := NewGrammarLog(&buf)
	session := NewSessionID()

	gl.Logf(session, "parsed %d tokens", 3)

	out := buf.String()
	assert.Contains(t, out, session.String())
	assert.Contains(t, out, "parsed 3 tokens")
}

func Test_GrammarLog_LogError_writesFullMessage(t *testing.T) {
	var buf bytes.Buffer
	gl := NewGrammarLog(&buf)
	session := NewSessionID()
	src := fakeSource{lexeme: "xy", line: 1, linePos: 4, fullLine: "mi xy"}
	err := NewSyntaxError("bad", src)

	gl.LogError(session, err)

	out := buf.String()
	assert.Contains(t, out, "mi xy")
	assert.Contains(t, out, "syntax error")
}
