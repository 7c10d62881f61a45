package main

// Addresses on the stack are cell indices for the cell words, and byte
// offsets for the C words, MOVE, CMOVE and FILL.

func opFetch(_ console, ds cellStack, m cellMem) { ds.push(m.load(ds.pop())) }

// opStore stores ( v addr -- ).
func opStore(_ console, ds cellStack, m cellMem) {
	ds.need(2)
	addr := ds.pop()
	val := ds.pop()
	m.stor(addr, val)
}

func opQuestion(con console, ds cellStack, m cellMem) {
	con.printf("%d\n", m.load(ds.pop()))
}

func opCFetch(ds cellStack, m byteMem) { ds.push(m.load(ds.pop())) }

// opCStore stores the low byte of v: ( v addr -- ).
func opCStore(ds cellStack, m byteMem) {
	ds.need(2)
	addr := ds.pop()
	val := ds.pop()
	m.stor(addr, val)
}

// opMove copies ( src dest count -- ) bytes, as if through a temporary
// buffer when the ranges overlap.
func opMove(ds cellStack, m byteMem) {
	ds.need(3)
	n := ds.pop()
	dst := ds.pop()
	src := ds.pop()
	m.move(src, dst, n)
}

// opCMove copies ( src dest count -- ) bytes one at a time from low
// addresses to high.
func opCMove(ds cellStack, m byteMem) {
	ds.need(3)
	n := ds.pop()
	dst := ds.pop()
	src := ds.pop()
	m.cmove(src, dst, n)
}

// opFill sets ( addr count byte -- ) bytes.
func opFill(ds cellStack, m byteMem) {
	ds.need(3)
	val := ds.pop()
	n := ds.pop()
	addr := ds.pop()
	m.fill(addr, n, val)
}

// opType prints ( addr len -- ) cells as characters.
func opType(con console, ds cellStack, m cellMem) {
	ds.need(2)
	n := ds.pop()
	addr := ds.pop()
	cells := m.cells(addr, n)
	buf := make([]byte, len(cells))
	for i, val := range cells {
		buf[i] = checkChar(con, val)
	}
	con.write(buf)
}

// opCount turns the address of a counted string into the address of its
// first character and its length: ( addr -- addr+1 len ).
func opCount(_ console, ds cellStack, m cellMem) {
	ds.push(m.count(ds.pop()))
}
