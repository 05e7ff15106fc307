package menu

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// tokenReader splits input into whitespace-separated tokens
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// next returns the next token. A token ends at whitespace, which stays
// unread so discardLine can consume the newline that follows it.
func (t *tokenReader) next() (string, error) {
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			_ = t.r.UnreadRune()
			break
		}
	}

	var sb strings.Builder
	for {
		r, _, err := t.r.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			_ = t.r.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// discardLine drops everything up to and including the next newline
func (t *tokenReader) discardLine() {
	_, _ = t.r.ReadString('\n')
}
