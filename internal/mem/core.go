// Package mem implements the machine's main memory: a fixed number of 32-bit
// cells that may also be addressed bytewise through an overlay view of the
// same storage.
package mem

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// CellSize is the number of bytes in one cell.
const CellSize = 4

// DefaultCells is the memory size given by New for a non-positive size.
const DefaultCells = 1024

// Sentinel errors wrapped by AccessError.
var (
	ErrBounds = errors.New("out of bounds")
	ErrCount  = errors.New("negative count")
)

// byteOrder lays cells out in bytes; the byte view sees cells in the host's
// native order.
var byteOrder = binary.NativeEndian

// AccessError indicates that a memory operation was rejected before touching
// storage.
type AccessError struct {
	Op   string
	Addr int
	Len  int
	Err  error
}

func (ae AccessError) Error() string {
	switch {
	case ae.Err == ErrCount:
		return fmt.Sprintf("%v %v by %v @%v", ae.Err, ae.Len, ae.Op, ae.Addr)
	case ae.Len != 0:
		return fmt.Sprintf("memory access %v by %v @%v+%v", ae.Err, ae.Op, ae.Addr, ae.Len)
	default:
		return fmt.Sprintf("memory access %v by %v @%v", ae.Err, ae.Op, ae.Addr)
	}
}

func (ae AccessError) Unwrap() error { return ae.Err }

// Memory owns the backing storage; Cells and Bytes are views onto it.
type Memory struct {
	buf []byte
}

// New allocates a zeroed memory of the given number of cells.
func New(cells int) *Memory {
	if cells <= 0 {
		cells = DefaultCells
	}
	return &Memory{buf: make([]byte, cells*CellSize)}
}

// FromImage creates a memory holding a copy of image, as returned by Image.
func FromImage(image []byte) (*Memory, error) {
	if len(image)%CellSize != 0 {
		return nil, fmt.Errorf("memory image size %v is not a whole number of cells", len(image))
	}
	return &Memory{buf: append([]byte(nil), image...)}, nil
}

// Size returns the number of cells.
func (m *Memory) Size() int { return len(m.buf) / CellSize }

// Image returns a copy of the raw storage.
func (m *Memory) Image() []byte { return append([]byte(nil), m.buf...) }

// Cells returns the cell-addressed view.
func (m *Memory) Cells() Cells { return Cells{m.buf} }

// Bytes returns the byte-addressed view.
func (m *Memory) Bytes() Bytes { return Bytes{m.buf} }

// checkRange validates [addr, addr+n) against a bound of size units.
func checkRange(op string, addr, n, size int) error {
	if n < 0 {
		return AccessError{op, addr, n, ErrCount}
	}
	if addr < 0 || addr > size-n {
		return AccessError{op, addr, n, ErrBounds}
	}
	return nil
}

func checkAddr(op string, addr, size int) error {
	if addr < 0 || addr >= size {
		return AccessError{Op: op, Addr: addr, Err: ErrBounds}
	}
	return nil
}
