package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/yafi/internal/panicerr"
)

// New creates a machine with empty stacks and zeroed memory.
func New(opts ...VMOption) *VM {
	var vm VM
	VMOptions(defaultOptions, VMOptions(opts...)).apply(&vm)
	vm.init()
	return &vm
}

// Run reads and interprets lines until input runs out, EXIT is executed, or
// a fatal error halts the machine. Only the latter is returned as an error,
// prefixed with the location of the line being interpreted.
func (vm *VM) Run(ctx context.Context) error {
	err := vm.recover("VM", func() error {
		return vm.run(ctx)
	})
	if err == nil || errors.Is(err, errHalt) || errors.Is(err, io.EOF) {
		return nil
	}
	if vm.coreFile != "" {
		if cerr := vm.writeCoreFile(vm.coreFile, err); cerr != nil {
			vm.logf("#", "unable to write core file: %v", cerr)
		}
	}
	if loc := vm.Last.Location; loc.Name != "" {
		err = fmt.Errorf("%v: %w", loc, err)
	}
	return err
}

// Interpret runs a single line of input. Unknown words are reported on the
// output stream and skipped; any fatal error is returned. EXIT makes
// Interpret return an error that satisfies IsExit.
func (vm *VM) Interpret(line string) error {
	return vm.recover("VM.Interpret", func() error {
		vm.interpret(line)
		return nil
	})
}

// IsExit returns true if err was caused by the EXIT word.
func IsExit(err error) bool { return errors.Is(err, errHalt) }

func (vm *VM) recover(name string, f func() error) error {
	err := panicerr.Recover(name, f)
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

func WithInput(r io.Reader) VMOption     { return withInput(r) }
func WithOutput(w io.Writer) VMOption    { return withOutput(w) }
func WithTee(w io.Writer) VMOption       { return withTee(w) }
func WithStackSize(n int) VMOption       { return withStackSize(n) }
func WithReturnStackSize(n int) VMOption { return withReturnStackSize(n) }
func WithMemCells(n int) VMOption        { return withMemCells(n) }
func WithPrompt(prompt string) VMOption  { return promptOption(prompt) }
func WithBanner(banner bool) VMOption    { return bannerOption(banner) }
func WithStackEcho(echo bool) VMOption   { return stackEchoOption(echo) }
func WithCoreFile(name string) VMOption  { return coreFileOption(name) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
