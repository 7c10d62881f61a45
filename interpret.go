package main

// interpret executes every token in line, in order.
func (vm *VM) interpret(line string) {
	sc := tokenScanner{line: line}
	for token, ok := sc.next(); ok; token, ok = sc.next() {
		vm.dispatch(token)
	}
}

// dispatch executes a dictionary word, or pushes a numeric literal. Anything
// else is reported as an unknown word and skipped.
func (vm *VM) dispatch(token string) {
	if w, ok := lookup(token); ok {
		vm.exec(w)
		return
	}

	if val, ok := parseLiteral(token); ok {
		vm.word = token
		vm.dataStack().push(val)
		vm.word = ""
		if vm.logfn != nil {
			vm.logf(">", "push %v s:%v", val, vm.stack.Values())
		}
		return
	}

	vm.logf("?", "unknown word %q", token)
	vm.output().printf("Unknown word: %s\n", token)
}

// exec calls a word's operation with the operands its arity names.
func (vm *VM) exec(w word) {
	vm.word = w.name
	switch op := w.op.(type) {
	case consoleOp:
		op(vm.output())
	case stackOp:
		op(vm.output(), vm.dataStack())
	case returnOp:
		op(vm.dataStack(), vm.returnStack())
	case cellsOp:
		op(vm.output(), vm.dataStack(), vm.cellView())
	case bytesOp:
		op(vm.dataStack(), vm.byteView())
	default:
		vm.halt(opKindError{w.op})
	}
	vm.word = ""
	if vm.logfn != nil {
		vm.logf(">", "exec %v s:%v r:%v", w, vm.stack.Values(), vm.rstack.Values())
	}
}
