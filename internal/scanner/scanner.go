// Package scanner implements the character-level word scanner (getword):
// it turns a raw byte stream into whitespace/"."-delimited words, folding
// case, expanding digits to their cmavo spellings, and stripping comments
// and escapes, while tracking line/column for diagnostics.
package scanner

import (
	"bufio"
	"io"
)

// digitCmavo maps a decimal digit to its Lojban number-cmavo spelling
// (spec section 4.1).
var digitCmavo = [10]string{
	"no", "pa", "re", "ci", "vo", "mu", "xa", "ze", "bi", "so",
}

// Scanner reads words from an underlying byte stream. The zero value is not
// usable; construct with New.
type Scanner struct {
	r      *bufio.Reader
	line   int
	column int
	eof    bool
}

// New wraps r for word-at-a-time scanning.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), line: 1, column: 0}
}

// Line returns the 1-based line of the most recently returned character.
func (s *Scanner) Line() int { return s.line }

// Column returns the 0-based column of the most recently returned character.
func (s *Scanner) Column() int { return s.column }

func (s *Scanner) readByte() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		s.eof = true
		return 0, false
	}
	if b == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return b, true
}

// Next returns the next word, with case folded to lower and digits expanded
// to their cmavo spellings. ok is false once end-of-input has been reached;
// subsequent calls continue to report ok=false (spec section 4.1, "after
// end-of-input is reached, subsequent calls yield the end-of-input
// sentinel").
func (s *Scanner) Next() (word string, ok bool) {
	if s.eof {
		return "", false
	}

	var buf []byte
	for {
		b, got := s.readByte()
		if !got {
			if len(buf) > 0 {
				return string(buf), true
			}
			return "", false
		}

		switch {
		case b == '/':
			s.skipComment()
		case b == '\\':
			s.consumeEscape()
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '.':
			if len(buf) > 0 {
				return string(buf), true
			}
			// leading whitespace/period before any word text: keep scanning
		case b >= 'A' && b <= 'Z':
			buf = append(buf, b-'A'+'a')
		case b >= 'a' && b <= 'z':
			buf = append(buf, b)
		case b == '\'':
			buf = append(buf, b)
		case b >= '0' && b <= '9':
			buf = append(buf, digitCmavo[b-'0']...)
		default:
			// any other character is silently discarded
		}
	}
}

// skipComment discards characters until the matching "/", or end-of-input.
func (s *Scanner) skipComment() {
	for {
		b, got := s.readByte()
		if !got {
			return
		}
		if b == '/' {
			return
		}
	}
}

// consumeEscape discards the escaped character. A newline immediately after
// "\\" is consumed silently (spec section 4.1) while still advancing
// line/column bookkeeping, which readByte already does.
func (s *Scanner) consumeEscape() {
	s.readByte()
}
