package lojerr

import (
	"fmt"
	"io"
	"sync"
)

// GrammarLog appends diagnostic entries to a shared writer (the --tfile
// destination), tagging each entry with the session that produced it so
// multiple parser instances can log to the same file without interleaving
// their messages illegibly.
type GrammarLog struct {
	mu sync.Mutex
	w  io.Writer
}

// NewGrammarLog wraps w for use as a grammar error log.
func NewGrammarLog(w io.Writer) *GrammarLog {
	return &GrammarLog{w: w}
}

// Logf writes a single tagged entry to the log. It is safe for concurrent
// use by multiple parser instances sharing the same underlying writer.
func (gl *GrammarLog) Logf(session SessionID, format string, args ...interface{}) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	fmt.Fprintf(gl.w, "[%s] ", session.String())
	fmt.Fprintf(gl.w, format, args...)
	fmt.Fprintln(gl.w)
}

// LogError writes a SyntaxError's full message to the log under session.
func (gl *GrammarLog) LogError(session SessionID, err SyntaxError) {
	gl.Logf(session, "%s", err.FullMessage())
}
