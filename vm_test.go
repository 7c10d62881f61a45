package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/yafi/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type vmTestCase struct {
	name    string
	opts    []interface{}
	setup   []func(t *testing.T, vm *VM)
	lines   []string
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration

	wantErr    error
	wantErrStr string
	wantExit   bool

	exclusive   bool
	nextInputID int
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...int32) vmTestCase {
	vmt.setup = append(vmt.setup, func(t *testing.T, vm *VM) {
		for _, val := range values {
			require.NoError(t, vm.stack.Push(val), "must push %v", val)
		}
	})
	return vmt
}

func (vmt vmTestCase) withRStack(values ...int32) vmTestCase {
	vmt.setup = append(vmt.setup, func(t *testing.T, vm *VM) {
		for _, val := range values {
			require.NoError(t, vm.rstack.Push(val), "must push %v", val)
		}
	})
	return vmt
}

func (vmt vmTestCase) withMemAt(addr int, values ...int32) vmTestCase {
	vmt.setup = append(vmt.setup, func(t *testing.T, vm *VM) {
		require.NoError(t, vm.mem.Cells().Stor(addr, values...), "must store @%v", addr)
	})
	return vmt
}

func (vmt vmTestCase) withBytesAt(addr int, values ...byte) vmTestCase {
	vmt.setup = append(vmt.setup, func(t *testing.T, vm *VM) {
		for i, val := range values {
			require.NoError(t, vm.mem.Bytes().Stor(addr+i, int32(val)), "must store byte @%v", addr+i)
		}
	})
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		name := t.Name() + "/input"
		if id := vmt.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		vmt.nextInputID++
		return WithInput(NamedReader(name, strings.NewReader(input)))
	})
	return vmt
}

func (vmt vmTestCase) withNamedInput(name string, input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithInput(NamedReader(name, strings.NewReader(input)))
	})
	return vmt
}

func (vmt vmTestCase) withTestOutput() vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

// do interprets each line in turn, rather than running the machine over its
// input.
func (vmt vmTestCase) do(lines ...string) vmTestCase {
	vmt.lines = append(vmt.lines, lines...)
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectErrorString(mess string) vmTestCase {
	vmt.wantErrStr = mess
	return vmt
}

func (vmt vmTestCase) expectExit() vmTestCase {
	vmt.wantExit = true
	return vmt
}

func (vmt vmTestCase) expectStack(values ...int32) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []int32{}
		}
		assert.Equal(t, values, nonNil(vm.stack.Values()), "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectRStack(values ...int32) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []int32{}
		}
		assert.Equal(t, values, nonNil(vm.rstack.Values()), "expected return stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectMemAt(addr int, values ...int32) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		buf := make([]int32, len(values))
		require.NoError(t, vm.mem.Cells().LoadInto(addr, buf), "must load memory @%v", addr)
		assert.Equal(t, values, buf, "expected memory values @%v", addr)
	})
	return vmt
}

func (vmt vmTestCase) expectBytesAt(addr int, values ...byte) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		buf := make([]byte, len(values))
		for i := range buf {
			b, err := vm.mem.Bytes().Load(addr + i)
			require.NoError(t, err, "must load byte @%v", addr+i)
			buf[i] = b
		}
		assert.Equal(t, values, buf, "expected memory bytes @%v", addr)
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vm.dumper(&out).dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Now().Sub(then))
	}(time.Now())

	// trace logs are only shown for failed tests
	var trace []string
	logf := func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}

	vm := vmt.buildVM(t, logf)
	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Log(line)
			}
			vmt.dumpToTest(t, vm)
		}
	}()

	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := vmt.runVM(ctx, vm)
	switch {
	case vmt.wantErr != nil:
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	case vmt.wantExit:
		assert.True(t, IsExit(err), "expected EXIT\ngot: %+v", err)
	case vmt.wantErrStr == "":
		assert.NoError(t, err, "unexpected VM error")
	}
	if vmt.wantErrStr != "" {
		assert.EqualError(t, err, vmt.wantErrStr, "expected error message")
	}

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(vmt.lines) == 0 {
		return vm.Run(ctx)
	}
	for _, line := range vmt.lines {
		if err := vm.Interpret(line); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (vmt vmTestCase) buildVM(t *testing.T, logf func(mess string, args ...interface{})) *VM {
	opts := []VMOption{WithLogf(logf)}
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opts = append(opts, impl(&vmt, t))
		case VMOption:
			opts = append(opts, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}

	vm := New(opts...)
	for _, setup := range vmt.setup {
		setup(t, vm)
	}
	return vm
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := &logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vm.dumper(lw).dump()
}

//// utilities

func nonNil(values []int32) []int32 {
	if values == nil {
		return []int32{}
	}
	return values
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
