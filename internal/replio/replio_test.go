package replio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_direct_ReadUtterance_splitsOnNewline(t *testing.T) {
	r := NewDirect(strings.NewReader("mi klama\nle zarci\n"))

	u1, err1 := r.ReadUtterance()
	u2, err2 := r.ReadUtterance()
	_, err3 := r.ReadUtterance()

	assert.NoError(t, err1)
	assert.Equal(t, "mi klama", u1)
	assert.NoError(t, err2)
	assert.Equal(t, "le zarci", u2)
	assert.ErrorIs(t, err3, io.EOF)
}

func Test_direct_ReadUtterance_returnsFinalLineWithoutTrailingNewline(t *testing.T) {
	r := NewDirect(strings.NewReader("mi klama\nle zarci"))

	_, err1 := r.ReadUtterance()
	u2, err2 := r.ReadUtterance()

	assert.NoError(t, err1)
	assert.NoError(t, err2, "a final line with no trailing newline is still a complete utterance")
	assert.Equal(t, "le zarci", u2)
}

func Test_direct_ReadUtterance_trimsCarriageReturn(t *testing.T) {
	r := NewDirect(strings.NewReader("mi klama\r\n"))

	u, err := r.ReadUtterance()

	assert.NoError(t, err)
	assert.Equal(t, "mi klama", u)
}

func Test_direct_Close_isNoop(t *testing.T) {
	r := NewDirect(strings.NewReader(""))

	assert.NoError(t, r.Close())
}
