package main

// Arithmetic on cells wraps at 32 bits; comparisons leave -1 for true and 0
// for false.

func truth(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func binop(ds cellStack, f func(a, b int32) int32) {
	ds.need(2)
	b := ds.pop()
	a := ds.pop()
	ds.push(f(a, b))
}

func unop(ds cellStack, f func(a int32) int32) {
	ds.push(f(ds.pop()))
}

func opLess(_ console, ds cellStack)    { binop(ds, func(a, b int32) int32 { return truth(a < b) }) }
func opEqual(_ console, ds cellStack)   { binop(ds, func(a, b int32) int32 { return truth(a == b) }) }
func opGreater(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return truth(a > b) }) }

func opZeroLess(_ console, ds cellStack)    { unop(ds, func(a int32) int32 { return truth(a < 0) }) }
func opZeroEqual(_ console, ds cellStack)   { unop(ds, func(a int32) int32 { return truth(a == 0) }) }
func opZeroGreater(_ console, ds cellStack) { unop(ds, func(a int32) int32 { return truth(a > 0) }) }
func opNot(_ console, ds cellStack)         { unop(ds, func(a int32) int32 { return ^a }) }

func opAdd(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return a + b }) }
func opSub(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return a - b }) }
func opMul(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return a * b }) }
func opAnd(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return a & b }) }
func opOr(_ console, ds cellStack)  { binop(ds, func(a, b int32) int32 { return a | b }) }
func opXor(_ console, ds cellStack) { binop(ds, func(a, b int32) int32 { return a ^ b }) }

func opMax(_ console, ds cellStack) {
	binop(ds, func(a, b int32) int32 {
		if a > b {
			return a
		}
		return b
	})
}

func opMin(_ console, ds cellStack) {
	binop(ds, func(a, b int32) int32 {
		if a < b {
			return a
		}
		return b
	})
}

// Division truncates toward zero, so a remainder takes the sign of the
// dividend.

func opDiv(_ console, ds cellStack) {
	binop(ds, func(a, b int32) int32 {
		if b == 0 {
			ds.haltFunc(errDivisionByZero)
		}
		return a / b
	})
}

func opMod(_ console, ds cellStack) {
	binop(ds, func(a, b int32) int32 {
		if b == 0 {
			ds.haltFunc(errModuloByZero)
		}
		return a % b
	})
}

// opDivMod leaves ( rem quot ).
func opDivMod(_ console, ds cellStack) {
	ds.need(2)
	b := ds.pop()
	a := ds.pop()
	if b == 0 {
		ds.haltFunc(errDivisionByZero)
	}
	ds.push(a%b, a/b)
}

func opOnePlus(_ console, ds cellStack)  { unop(ds, func(a int32) int32 { return a + 1 }) }
func opOneMinus(_ console, ds cellStack) { unop(ds, func(a int32) int32 { return a - 1 }) }
func opTwoPlus(_ console, ds cellStack)  { unop(ds, func(a int32) int32 { return a + 2 }) }
func opTwoMinus(_ console, ds cellStack) { unop(ds, func(a int32) int32 { return a - 2 }) }
func opNegate(_ console, ds cellStack)   { unop(ds, func(a int32) int32 { return -a }) }

func opAbs(_ console, ds cellStack) {
	unop(ds, func(a int32) int32 {
		if a < 0 {
			return -a
		}
		return a
	})
}

// Double cells are pairs ( lo hi ), with the high half on top.

func popDouble(ds cellStack) int64 {
	hi := ds.pop()
	lo := ds.pop()
	return int64(uint64(uint32(hi))<<32 | uint64(uint32(lo)))
}

func pushDouble(ds cellStack, d int64) {
	ds.push(int32(d), int32(d>>32))
}

// opDPlus adds two doubles, carrying out of the unsigned low half.
func opDPlus(_ console, ds cellStack) {
	ds.need(4)
	hi2 := ds.pop()
	lo2 := ds.pop()
	hi1 := ds.pop()
	lo1 := ds.pop()
	lo := uint32(lo1) + uint32(lo2)
	hi := hi1 + hi2
	if lo < uint32(lo1) {
		hi++
	}
	ds.push(int32(lo), hi)
}

func opDNegate(_ console, ds cellStack) {
	ds.need(2)
	pushDouble(ds, -popDouble(ds))
}
