package mem

// Bytes addresses memory bytewise, 0 through Len()-1, overlaying the same
// storage seen by Cells.
type Bytes struct {
	buf []byte
}

// Len returns the number of addressable bytes.
func (b Bytes) Len() int { return len(b.buf) }

// Load returns the byte at addr.
func (b Bytes) Load(addr int) (byte, error) {
	if err := checkAddr("byte fetch", addr, len(b.buf)); err != nil {
		return 0, err
	}
	return b.buf[addr], nil
}

// Stor stores the low 8 bits of val at addr.
func (b Bytes) Stor(addr int, val int32) error {
	if err := checkAddr("byte store", addr, len(b.buf)); err != nil {
		return err
	}
	b.buf[addr] = byte(val)
	return nil
}

// Move copies n bytes from src to dst, correctly handling overlapping ranges
// in either direction. A non-positive n does nothing.
func (b Bytes) Move(src, dst, n int) error {
	if n <= 0 {
		return nil
	}
	if err := checkRange("move", src, n, len(b.buf)); err != nil {
		return err
	}
	if err := checkRange("move", dst, n, len(b.buf)); err != nil {
		return err
	}
	if src < dst && dst < src+n {
		for i := n - 1; i >= 0; i-- {
			b.buf[dst+i] = b.buf[src+i]
		}
	} else {
		for i := 0; i < n; i++ {
			b.buf[dst+i] = b.buf[src+i]
		}
	}
	return nil
}

// CMove copies n bytes from src to dst, strictly from low addresses to high.
// When dst lies inside the source range this propagates the leading bytes,
// which is the classic way to replicate a pattern.
func (b Bytes) CMove(src, dst, n int) error {
	if err := checkRange("cmove", src, n, len(b.buf)); err != nil {
		return err
	}
	if err := checkRange("cmove", dst, n, len(b.buf)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		b.buf[dst+i] = b.buf[src+i]
	}
	return nil
}

// Fill sets n bytes starting at addr to the low 8 bits of val.
func (b Bytes) Fill(addr, n int, val int32) error {
	if err := checkRange("fill", addr, n, len(b.buf)); err != nil {
		return err
	}
	fill := byte(val)
	for i := addr; i < addr+n; i++ {
		b.buf[i] = fill
	}
	return nil
}
