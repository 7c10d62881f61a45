package main

func opDup(_ console, ds cellStack)  { ds.push(ds.peek()) }
func opDrop(_ console, ds cellStack) { ds.pop() }

func opSwap(_ console, ds cellStack) {
	ds.need(2)
	b := ds.pop()
	a := ds.pop()
	ds.push(b, a)
}

func opOver(_ console, ds cellStack) {
	ds.need(2)
	ds.push(ds.pick(1))
}

// opRot moves the third item to the top: ( a b c -- b c a ).
func opRot(_ console, ds cellStack) {
	ds.need(3)
	c := ds.pop()
	b := ds.pop()
	a := ds.pop()
	ds.push(b, c, a)
}

// opPick copies the n-th item to the top, counting from 0 after n is popped.
func opPick(_ console, ds cellStack) {
	n := ds.pop()
	ds.push(ds.pick(n))
}

// opRoll moves the n-th item to the top, counting from 0 after n is popped.
func opRoll(_ console, ds cellStack) {
	n := ds.pop()
	ds.roll(n)
}

func opDepth(_ console, ds cellStack) { ds.push(int32(ds.Depth())) }

func opToR(ds, rs cellStack)    { rs.push(ds.pop()) }
func opRFrom(ds, rs cellStack)  { ds.push(rs.pop()) }
func opRFetch(ds, rs cellStack) { ds.push(rs.peek()) }
