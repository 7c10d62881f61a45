package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/yafi/internal/mem"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

// vmDumper writes a human readable description of machine state: both
// stacks, then every row of main memory that holds a non-zero cell.
type vmDumper struct {
	out io.Writer

	stack  []int32
	rstack []int32
	mem    *mem.Memory
	word   string

	addrWidth int
	rowCells  int
}

func (vm *VM) dumper(out io.Writer) vmDumper {
	return vmDumper{
		out:    out,
		stack:  vm.stack.Values(),
		rstack: vm.rstack.Values(),
		mem:    vm.mem,
		word:   vm.word,
	}
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	if dump.word != "" {
		fmt.Fprintf(dump.out, "  word: %v\n", dump.word)
	}
	dump.dumpStacks()
	dump.dumpMem()
}

func (dump vmDumper) dumpStacks() {
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.stack)
	fmt.Fprintf(dump.out, "  rstack: %v\n", dump.rstack)
}

func (dump vmDumper) dumpMem() {
	if dump.mem == nil {
		return
	}
	size := dump.mem.Size()
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(size)) + 1
	}
	if dump.rowCells == 0 {
		dump.rowCells = 8
	}

	fmt.Fprintf(dump.out, "# Main Memory cells:%v\n", size)
	var buf lineBuffer
	row := make([]int32, dump.rowCells)
	for addr := 0; addr < size; addr += len(row) {
		if rem := size - addr; rem < len(row) {
			row = row[:rem]
		}
		if err := dump.mem.Cells().LoadInto(addr, row); err != nil {
			fmt.Fprintf(dump.out, "  @% *v %v\n", dump.addrWidth, addr, err)
			return
		}
		if allZero(row) {
			continue
		}
		fmt.Fprintf(&buf, "  @% *v", dump.addrWidth, addr)
		dump.formatRow(&buf, row)
		buf.WriteTo(dump.out)
	}
}

func (dump vmDumper) formatRow(buf fmtBuf, row []int32) {
	for _, val := range row {
		buf.WriteByte(' ')
		buf.WriteString(strconv.Itoa(int(val)))
	}
}

func allZero(cells []int32) bool {
	for _, val := range cells {
		if val != 0 {
			return false
		}
	}
	return true
}

// lineBuffer is a bytes.Buffer that always writes out whole lines.
type lineBuffer struct{ bytes.Buffer }

func (buf *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Buffer.WriteTo(w)
}
