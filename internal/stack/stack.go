// Package stack implements the fixed-capacity cell stacks used for both the
// data stack and the return stack.
package stack

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of cells given to a stack when New is passed
// a non-positive capacity.
const DefaultCapacity = 1024

// Sentinel errors wrapped by Error; test for them with errors.Is.
var (
	ErrOverflow  = errors.New("overflow")
	ErrUnderflow = errors.New("underflow")
	ErrEmpty     = errors.New("empty")
	ErrIndex     = errors.New("invalid index")
)

// Error indicates that a stack operation could not be performed; the stack is
// left unchanged.
type Error struct {
	Name  string
	Index int
	Err   error
}

func (err Error) Error() string {
	name := err.Name
	if name == "" {
		name = "stack"
	}
	if err.Err == ErrIndex {
		return fmt.Sprintf("%v %v %v", name, err.Err, err.Index)
	}
	return fmt.Sprintf("%v %v", name, err.Err)
}

func (err Error) Unwrap() error { return err.Err }

// Stack is a LIFO of signed 32-bit cells with a capacity fixed at creation.
// The zero value has no capacity: every Push overflows.
type Stack struct {
	Name string

	cells []int32
	top   int
}

// New creates an empty stack able to hold capacity cells.
func New(name string, capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		Name:  name,
		cells: make([]int32, capacity),
	}
}

// Cap returns the fixed capacity.
func (s *Stack) Cap() int { return len(s.cells) }

// Depth returns the number of live cells.
func (s *Stack) Depth() int { return s.top }

// Push adds a value on top of the stack.
func (s *Stack) Push(val int32) error {
	if s.top >= len(s.cells) {
		return s.fail(ErrOverflow)
	}
	s.cells[s.top] = val
	s.top++
	return nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int32, error) {
	if s.top == 0 {
		return 0, s.fail(ErrUnderflow)
	}
	s.top--
	return s.cells[s.top], nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int32, error) {
	if s.top == 0 {
		return 0, s.fail(ErrEmpty)
	}
	return s.cells[s.top-1], nil
}

// Need returns an underflow error unless at least n values are live. Words
// that consume several values check this first so that a short stack is
// reported before anything is popped.
func (s *Stack) Need(n int) error {
	if s.top < n {
		return s.fail(ErrUnderflow)
	}
	return nil
}

// Pick returns the value n deep, where 0 is the top.
func (s *Stack) Pick(n int) (int32, error) {
	if n < 0 || n >= s.top {
		return 0, Error{s.Name, n, ErrIndex}
	}
	return s.cells[s.top-1-n], nil
}

// Roll moves the value n deep to the top, shifting the values above it down
// by one.
func (s *Stack) Roll(n int) error {
	if n < 0 || n >= s.top {
		return Error{s.Name, n, ErrIndex}
	}
	i := s.top - 1 - n
	val := s.cells[i]
	copy(s.cells[i:s.top-1], s.cells[i+1:s.top])
	s.cells[s.top-1] = val
	return nil
}

// Values returns a copy of the live cells, bottom first.
func (s *Stack) Values() []int32 {
	return append([]int32(nil), s.cells[:s.top]...)
}

// Reset discards all values.
func (s *Stack) Reset() { s.top = 0 }

func (s *Stack) fail(err error) error {
	return Error{Name: s.Name, Err: err}
}
