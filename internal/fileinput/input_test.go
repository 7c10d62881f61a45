package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/yafi/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name   string
	closed *bool
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error {
	*nr.closed = true
	return nil
}

func Test_Input(t *testing.T) {
	var closedA, closedB bool
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("1 2 +\n.\n"), "a.fs", &closedA},
		namedReader{strings.NewReader("3 4 +"), "b.fs", &closedB},
		namedReader{strings.NewReader(""), "empty.fs", new(bool)},
	}}

	for _, want := range []string{
		`a.fs:1 "1 2 +"`,
		`a.fs:2 "."`,
		`b.fs:1 "3 4 +"`,
	} {
		line, err := in.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line.String())
	}
	assert.True(t, closedA, "expected exhausted stream to be closed")
	assert.True(t, closedB, "expected stream closed after its final unterminated line")
	assert.Equal(t, "b.fs:1", in.Last.Location.String())

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err)
	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to stick")
}

func Test_Input_close(t *testing.T) {
	var closed bool
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("1\n"), "queued.fs", &closed},
	}}
	require.NoError(t, in.Close())
	assert.True(t, closed, "expected queued stream to be closed")
	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func Test_Location(t *testing.T) {
	assert.Equal(t, "", fileinput.Location{}.String())
	assert.Equal(t, "<stdin>:3", fileinput.Location{Name: "<stdin>", Line: 3}.String())
}
