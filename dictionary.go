package main

import (
	"strconv"
	"strings"
)

// arity names the set of operands that a word is called with.
type arity uint8

const (
	arityNone        arity = iota // console only
	arityStack                    // data stack
	arityStackReturn              // data stack and return stack
	arityStackCells               // data stack and memory cells
	arityStackBytes               // data stack and memory bytes
)

var arityNames = [...]string{
	arityNone:        "none",
	arityStack:       "stack",
	arityStackReturn: "stack+return",
	arityStackCells:  "stack+cells",
	arityStackBytes:  "stack+bytes",
}

func (a arity) String() string {
	if int(a) < len(arityNames) {
		return arityNames[a]
	}
	return "arity(" + strconv.Itoa(int(a)) + ")"
}

// operation is one of the func types below; each kind of operation receives
// exactly the operands that its arity names.
type operation interface{ arity() arity }

type (
	consoleOp func(con console)
	stackOp   func(con console, ds cellStack)
	returnOp  func(ds, rs cellStack)
	cellsOp   func(con console, ds cellStack, m cellMem)
	bytesOp   func(ds cellStack, m byteMem)
)

func (consoleOp) arity() arity { return arityNone }
func (stackOp) arity() arity   { return arityStack }
func (returnOp) arity() arity  { return arityStackReturn }
func (cellsOp) arity() arity   { return arityStackCells }
func (bytesOp) arity() arity   { return arityStackBytes }

// word is a dictionary entry.
type word struct {
	name string
	op   operation
}

func (w word) String() string { return w.name + "/" + w.op.arity().String() }

// dictionary is the machine's fixed vocabulary, searched in order.
var dictionary = []word{
	// comparison
	{"<", stackOp(opLess)},
	{"=", stackOp(opEqual)},
	{">", stackOp(opGreater)},
	{"0<", stackOp(opZeroLess)},
	{"0=", stackOp(opZeroEqual)},
	{"0>", stackOp(opZeroGreater)},
	{"NOT", stackOp(opNot)},

	// characters
	{"CR", consoleOp(opCR)},
	{"EMIT", stackOp(opEmit)},
	{"SPACE", consoleOp(opSpace)},
	{"SPACES", stackOp(opSpaces)},
	{"TYPE", cellsOp(opType)},
	{"COUNT", cellsOp(opCount)},

	// arithmetic and logic
	{"+", stackOp(opAdd)},
	{"-", stackOp(opSub)},
	{"*", stackOp(opMul)},
	{"/", stackOp(opDiv)},
	{"MOD", stackOp(opMod)},
	{"/MOD", stackOp(opDivMod)},
	{"1+", stackOp(opOnePlus)},
	{"1-", stackOp(opOneMinus)},
	{"2+", stackOp(opTwoPlus)},
	{"2-", stackOp(opTwoMinus)},
	{"D+", stackOp(opDPlus)},
	{"MAX", stackOp(opMax)},
	{"MIN", stackOp(opMin)},
	{"ABS", stackOp(opAbs)},
	{"NEGATE", stackOp(opNegate)},
	{"DNEGATE", stackOp(opDNegate)},
	{"AND", stackOp(opAnd)},
	{"OR", stackOp(opOr)},
	{"XOR", stackOp(opXor)},

	// memory
	{"@", cellsOp(opFetch)},
	{"!", cellsOp(opStore)},
	{"C@", bytesOp(opCFetch)},
	{"C!", bytesOp(opCStore)},
	{"?", cellsOp(opQuestion)},
	{"MOVE", bytesOp(opMove)},
	{"CMOVE", bytesOp(opCMove)},
	{"FILL", bytesOp(opFill)},

	// stack
	{"DUP", stackOp(opDup)},
	{"DROP", stackOp(opDrop)},
	{"SWAP", stackOp(opSwap)},
	{"OVER", stackOp(opOver)},
	{"ROT", stackOp(opRot)},
	{"PICK", stackOp(opPick)},
	{"ROLL", stackOp(opRoll)},
	{"DEPTH", stackOp(opDepth)},
	{">R", returnOp(opToR)},
	{"R>", returnOp(opRFrom)},
	{"R@", returnOp(opRFetch)},

	// numbers
	{".", stackOp(opPrint)},

	{"EXIT", consoleOp(opExit)},
}

// lookup finds a word by name, ignoring case; the first match wins.
func lookup(name string) (word, bool) {
	for _, w := range dictionary {
		if strings.EqualFold(w.name, name) {
			return w, true
		}
	}
	return word{}, false
}
