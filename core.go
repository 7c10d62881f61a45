package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/yafi/internal/fileinput"
	"github.com/jcorbin/yafi/internal/flushio"
)

// Core holds the machine's input and output plumbing: the queue of input
// lines, the console writer, and anything that must be closed along with the
// machine.
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	if cerr := core.Input.Close(); err == nil {
		err = cerr
	}
	return err
}

var (
	errHalt           = errors.New("normal halt")
	errDivisionByZero = errors.New("division by zero")
	errModuloByZero   = errors.New("modulo by zero")
	errInvalidChar    = errors.New("invalid character code")
	errInvalidCount   = errors.New("invalid count")
)

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// wordError names the word that was executing when an error occurred.
type wordError struct {
	word string
	err  error
}

func (err wordError) Error() string { return fmt.Sprintf("%v: %v", err.word, err.err) }
func (err wordError) Unwrap() error { return err.err }

type charError int32
type countError int32
type opKindError struct{ op operation }

func (code charError) Error() string  { return fmt.Sprintf("%v %v", errInvalidChar, int32(code)) }
func (code charError) Unwrap() error  { return errInvalidChar }
func (n countError) Error() string    { return fmt.Sprintf("%v %v", errInvalidCount, int32(n)) }
func (n countError) Unwrap() error    { return errInvalidCount }
func (err opKindError) Error() string { return fmt.Sprintf("unknown operation kind %T", err.op) }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
