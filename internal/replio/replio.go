// Package replio supplies the CLI's interactive-mode utterance reader: GNU
// readline when connected to a real terminal, a direct line reader
// otherwise, exactly the DirectCommandReader/InteractiveCommandReader split
// the teacher's own command-input package used.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader yields one utterance (spec section 5: "a single newline triggers
// end-of-text") per call to ReadUtterance.
type Reader interface {
	ReadUtterance() (string, error)
	Close() error
}

// direct reads raw lines from r with no editing support; used when stdin
// isn't a TTY or the "-d"-style direct flag forces it.
type direct struct {
	r *bufio.Reader
}

// NewDirect wraps r in a line-oriented Reader with no readline support.
func NewDirect(r io.Reader) Reader {
	return &direct{r: bufio.NewReader(r)}
}

func (d *direct) ReadUtterance() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *direct) Close() error { return nil }

// interactive reads lines via GNU readline, giving history and line editing
// to a session run against a real terminal.
type interactive struct {
	rl *readline.Instance
}

// NewInteractive starts a readline-backed Reader with the given prompt.
func NewInteractive(prompt string) (Reader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &interactive{rl: rl}, nil
}

func (i *interactive) ReadUtterance() (string, error) {
	line, err := i.rl.Readline()
	if err != nil {
		return "", err
	}
	return line, nil
}

func (i *interactive) Close() error { return i.rl.Close() }
