// Package runeio reads input a rune at a time, assembling the lines handed to
// the interpreter.
package runeio

import (
	"bufio"
	"io"
	"strings"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements it, r is simply
// returned. Otherwise a bufio.Reader provides rune reading around r.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

// ReadLine reads runes up to and including the next line feed, returning the
// line without its terminator; a trailing carriage return is also dropped.
// At end of input, any final unterminated line is returned along with io.EOF.
func ReadLine(rr io.RuneReader) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := rr.ReadRune()
		if err != nil {
			return strings.TrimSuffix(sb.String(), "\r"), err
		}
		if r == '\n' {
			return strings.TrimSuffix(sb.String(), "\r"), nil
		}
		sb.WriteRune(r)
	}
}
