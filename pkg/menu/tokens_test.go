package menu

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenReader(t *testing.T) {
	tr := newTokenReader(strings.NewReader("  1\t-2.5\n\nabc def\nlast"))

	var got []string
	for {
		tok, err := tr.next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"1", "-2.5", "abc", "def", "last"}, got)
}

func TestTokenReader_DiscardLine(t *testing.T) {
	tr := newTokenReader(strings.NewReader("bad rest of line\nnext\n"))

	tok, err := tr.next()
	require.NoError(t, err)
	assert.Equal(t, "bad", tok)

	tr.discardLine()
	tok, err = tr.next()
	require.NoError(t, err)
	assert.Equal(t, "next", tok)
}
