package main

import (
	"context"
	"strconv"
)

var bannerLines = []string{
	"YAFI - 32-bit Forth79 Interpreter (C) - 2025.\n",
	"YAFI - Yet Another Forth Interpreter.\n\n",
	"Type 'exit' to quit.\n",
}

// run is the read-eval-print loop: prompt, read a line, interpret it, then
// show the data stack. Returns io.EOF once all input has been read.
func (vm *VM) run(ctx context.Context) error {
	if vm.banner {
		vm.writeBanner()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if vm.prompt != "" {
			vm.output().printf("%s", vm.prompt)
		}
		line, err := vm.ReadLine()
		if err != nil {
			return err
		}
		vm.logf("<", "%v", line)
		vm.interpret(line.Text)
		if vm.echo {
			vm.echoStack()
		}
	}
}

func (vm *VM) writeBanner() {
	con := vm.output()
	for _, line := range bannerLines {
		con.printf("%s", line)
	}
}

// echoStack prints the data stack, bottom first, like "\nStack: 1 2 3 \n".
func (vm *VM) echoStack() {
	buf := []byte("\nStack: ")
	for _, val := range vm.stack.Values() {
		buf = strconv.AppendInt(buf, int64(val), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	vm.output().write(buf)
}
