package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Scanner_Next_splitsOnWhitespaceAndPeriod(t *testing.T) {
	s := New(strings.NewReader("mi klama. le zarci"))

	words := []string{}
	for {
		w, ok := s.Next()
		if !ok {
			break
		}
		words = append(words, w)
	}

	assert.Equal(t, []string{"mi", "klama", "le", "zarci"}, words)
}

func Test_Scanner_Next_foldsCase(t *testing.T) {
	s := New(strings.NewReader("MI KLAMA"))

	w1, ok1 := s.Next()
	w2, ok2 := s.Next()

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, "mi", w1)
	assert.Equal(t, "klama", w2)
}

func Test_Scanner_Next_expandsDigits(t *testing.T) {
	s := New(strings.NewReader("123"))

	w, ok := s.Next()

	assert.True(t, ok)
	assert.Equal(t, "pareci", w)
}

func Test_Scanner_Next_keepsApostrophes(t *testing.T) {
	s := New(strings.NewReader("ko'a"))

	w, ok := s.Next()

	assert.True(t, ok)
	assert.Equal(t, "ko'a", w)
}

func Test_Scanner_Next_skipsCommentsBetweenSlashes(t *testing.T) {
	s := New(strings.NewReader("mi /this is a comment/ klama"))

	w1, _ := s.Next()
	w2, _ := s.Next()

	assert.Equal(t, "mi", w1)
	assert.Equal(t, "klama", w2)
}

func Test_Scanner_Next_unterminatedCommentConsumesRestOfInput(t *testing.T) {
	s := New(strings.NewReader("mi /comment never closes"))

	w1, ok1 := s.Next()
	_, ok2 := s.Next()

	assert.True(t, ok1)
	assert.Equal(t, "mi", w1)
	assert.False(t, ok2)
}

func Test_Scanner_Next_escapeConsumesNextCharacter(t *testing.T) {
	s := New(strings.NewReader("mi\\.klama"))

	w, ok := s.Next()

	assert.True(t, ok)
	assert.Equal(t, "miklama", w)
}

func Test_Scanner_Next_discardsUnrecognizedCharacters(t *testing.T) {
	s := New(strings.NewReader("mi#!klama"))

	w, ok := s.Next()

	assert.True(t, ok)
	assert.Equal(t, "miklama", w)
}

func Test_Scanner_Next_reportsFalseAfterExhausted(t *testing.T) {
	s := New(strings.NewReader("mi"))

	_, ok1 := s.Next()
	_, ok2 := s.Next()
	_, ok3 := s.Next()

	assert.True(t, ok1)
	assert.False(t, ok2)
	assert.False(t, ok3, "calls after end-of-input must keep reporting false")
}

func Test_Scanner_LineColumn_tracksPosition(t *testing.T) {
	s := New(strings.NewReader("mi\nklama"))

	s.Next()
	assert.Equal(t, 2, s.Line())

	s.Next()
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, 5, s.Column())
}
