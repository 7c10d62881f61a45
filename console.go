package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/yafi/internal/flushio"
)

// console is the machine's output device. Every method flushes before
// returning, so output appears as soon as a word produces it.
type console struct {
	out flushio.WriteFlusher
	haltFunc
}

func (con console) printf(mess string, args ...interface{}) {
	_, err := fmt.Fprintf(con.out, mess, args...)
	con.haltif(err)
	con.flush()
}

func (con console) write(p []byte) {
	_, err := con.out.Write(p)
	con.haltif(err)
	con.flush()
}

func (con console) writeByte(b byte) { con.write([]byte{b}) }

var blanks = []byte(strings.Repeat(" ", 64))

func (con console) spaces(n int) {
	for n > 0 {
		chunk := blanks
		if n < len(chunk) {
			chunk = chunk[:n]
		}
		_, err := con.out.Write(chunk)
		con.haltif(err)
		n -= len(chunk)
	}
	con.flush()
}

func (con console) flush() { con.haltif(con.out.Flush()) }

// exit halts the machine normally.
func (con console) exit() { con.haltFunc(nil) }
