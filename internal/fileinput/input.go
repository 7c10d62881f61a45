// Package fileinput reads interpreter input lines through a queue of one or
// more input streams, tracking where each line came from.
package fileinput

import (
	"fmt"
	"io"

	"github.com/jcorbin/yafi/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return ""
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Line is one line of input text along with its Location.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of input streams.
// Each stream is closed, if it is an io.Closer, once exhausted.
type Input struct {
	Queue []io.Reader
	Last  Line

	cur  io.Reader
	rr   runeio.Reader
	name string
	line int
}

// ReadLine returns the next line from the current stream, moving on to the
// next queued stream at end of file. Returns io.EOF only after every stream
// has been exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		text, err := runeio.ReadLine(in.rr)
		if err == nil || (err == io.EOF && text != "") {
			in.line++
			in.Last = Line{Location{in.name, in.line}, text}
			if err == io.EOF {
				in.closeIn()
			}
			return in.Last, nil
		}

		in.closeIn()
		if err != io.EOF {
			return Line{}, err
		}
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		in.rr = runeio.NewReader(r)
		in.name = nameOf(r)
		in.line = 0
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
