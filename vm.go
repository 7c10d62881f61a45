package main

import (
	"github.com/jcorbin/yafi/internal/flushio"
	"github.com/jcorbin/yafi/internal/mem"
	"github.com/jcorbin/yafi/internal/stack"
)

// VM implements a Forth-79 flavoured interpreter. The machine has three
// chunks of storage: "the stack", "the return stack", and "main memory".
// There is no program counter and no compiled code: each word read from input
// is executed as soon as it is read.
type VM struct {
	Core

	// The stack is a fixed capacity LIFO of signed 32-bit cells that is used
	// implicitly by almost every word.
	stack *stack.Stack

	// The return stack is an independent LIFO of the same shape. Without
	// colon definitions nothing returns through it; words like >R and R> use
	// it as temporary storage.
	rstack *stack.Stack

	// Main memory is an array of cells, addressed by index with @ and !, and
	// also addressable bytewise with C@, C! and friends through an overlay
	// of the same storage.
	mem *mem.Memory

	stackSize  int
	rstackSize int
	memCells   int

	prompt   string
	banner   bool
	echo     bool
	coreFile string

	// word is the name of the word being executed, if any
	word string
}

func (vm *VM) init() {
	if vm.stack == nil {
		vm.stack = stack.New("data stack", vm.stackSize)
	}
	if vm.rstack == nil {
		vm.rstack = stack.New("return stack", vm.rstackSize)
	}
	if vm.mem == nil {
		vm.mem = mem.New(vm.memCells)
	}
	if vm.out == nil {
		vm.out = flushio.Discard
	}
}

// halt stops the machine by panicking with a haltError; a nil error means a
// normal halt.
func (vm *VM) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if vm.out != nil {
			if ferr := vm.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	if err == nil {
		err = errHalt
	} else if vm.word != "" {
		err = wordError{vm.word, err}
	}

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		vm.logf("#", "halt: %v", err)
	}()

	panic(haltError{err})
}

// haltFunc is given to words along with their operands so that they can halt
// the machine without access to the rest of it.
type haltFunc func(err error)

func (halt haltFunc) haltif(err error) {
	if err != nil {
		halt(err)
	}
}

// cellStack is the operand view of a stack passed to words.
type cellStack struct {
	*stack.Stack
	haltFunc
}

func (s cellStack) push(values ...int32) {
	for _, val := range values {
		s.haltif(s.Push(val))
	}
}

func (s cellStack) pop() int32 {
	val, err := s.Pop()
	s.haltif(err)
	return val
}

func (s cellStack) peek() int32 {
	val, err := s.Peek()
	s.haltif(err)
	return val
}

func (s cellStack) need(n int) { s.haltif(s.Need(n)) }

func (s cellStack) pick(n int32) int32 {
	val, err := s.Pick(int(n))
	s.haltif(err)
	return val
}

func (s cellStack) roll(n int32) { s.haltif(s.Roll(int(n))) }

// cellMem is the operand view of main memory in cell units.
type cellMem struct {
	mem.Cells
	haltFunc
}

func (m cellMem) load(addr int32) int32 {
	val, err := m.Load(int(addr))
	m.haltif(err)
	return val
}

func (m cellMem) stor(addr, val int32) { m.haltif(m.Stor(int(addr), val)) }

func (m cellMem) count(addr int32) (int32, int32) {
	first, n, err := m.Count(int(addr))
	m.haltif(err)
	return int32(first), n
}

func (m cellMem) cells(addr, n int32) []int32 {
	if n < 0 {
		m.haltFunc(countError(n))
	}
	m.haltif(m.Check(int(addr), int(n)))
	buf := make([]int32, n)
	m.haltif(m.LoadInto(int(addr), buf))
	return buf
}

// byteMem is the operand view of main memory in byte units.
type byteMem struct {
	mem.Bytes
	haltFunc
}

func (m byteMem) load(addr int32) int32 {
	val, err := m.Load(int(addr))
	m.haltif(err)
	return int32(val)
}

func (m byteMem) stor(addr, val int32)    { m.haltif(m.Stor(int(addr), val)) }
func (m byteMem) move(src, dst, n int32)  { m.haltif(m.Move(int(src), int(dst), int(n))) }
func (m byteMem) cmove(src, dst, n int32) { m.haltif(m.CMove(int(src), int(dst), int(n))) }
func (m byteMem) fill(addr, n, val int32) { m.haltif(m.Fill(int(addr), int(n), val)) }

func (vm *VM) dataStack() cellStack   { return cellStack{vm.stack, vm.halt} }
func (vm *VM) returnStack() cellStack { return cellStack{vm.rstack, vm.halt} }
func (vm *VM) cellView() cellMem      { return cellMem{vm.mem.Cells(), vm.halt} }
func (vm *VM) byteView() byteMem      { return byteMem{vm.mem.Bytes(), vm.halt} }
func (vm *VM) output() console        { return console{vm.out, vm.halt} }
