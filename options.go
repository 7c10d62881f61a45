package main

import (
	"io"

	"github.com/jcorbin/yafi/internal/flushio"
	"github.com/jcorbin/yafi/internal/mem"
	"github.com/jcorbin/yafi/internal/stack"
)

type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(io.Discard),
	withStackSize(stack.DefaultCapacity),
	withReturnStackSize(stack.DefaultCapacity),
	withMemCells(mem.DefaultCells),
)

// VMOptions combines any number of options into one, skipping any nils.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackSizeOption int
type returnStackSizeOption int
type memCellsOption int
type promptOption string
type bannerOption bool
type stackEchoOption bool
type coreFileOption string

func withInput(r io.Reader) inputOption               { return inputOption{r} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withStackSize(n int) stackSizeOption             { return stackSizeOption(n) }
func withReturnStackSize(n int) returnStackSizeOption { return returnStackSizeOption(n) }
func withMemCells(n int) memCellsOption               { return memCellsOption(n) }

func (i inputOption) apply(vm *VM) {
	vm.Input.Queue = append(vm.Input.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (n stackSizeOption) apply(vm *VM)       { vm.stackSize = int(n) }
func (n returnStackSizeOption) apply(vm *VM) { vm.rstackSize = int(n) }
func (n memCellsOption) apply(vm *VM)        { vm.memCells = int(n) }
func (p promptOption) apply(vm *VM)          { vm.prompt = string(p) }
func (b bannerOption) apply(vm *VM)          { vm.banner = bool(b) }
func (b stackEchoOption) apply(vm *VM)       { vm.echo = bool(b) }
func (name coreFileOption) apply(vm *VM)     { vm.coreFile = string(name) }

// NamedReader gives a reader a Name used to locate input lines in
// diagnostics.
func NamedReader(name string, r io.Reader) io.Reader {
	if rc, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{rc, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReader) Name() string     { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }
