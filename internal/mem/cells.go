package mem

// Cells addresses memory in units of 32-bit cells, 0 through Len()-1.
type Cells struct {
	buf []byte
}

// Len returns the number of addressable cells.
func (c Cells) Len() int { return len(c.buf) / CellSize }

// Load returns the cell at addr.
func (c Cells) Load(addr int) (int32, error) {
	if err := checkAddr("fetch", addr, c.Len()); err != nil {
		return 0, err
	}
	return c.at(addr), nil
}

// Check returns the error that LoadInto would for n cells at addr, without
// loading anything.
func (c Cells) Check(addr, n int) error { return checkRange("fetch", addr, n, c.Len()) }

// LoadInto reads len(buf) cells starting at addr.
// Returns an error if any part of the range is out of bounds; no partial load
// is done.
func (c Cells) LoadInto(addr int, buf []int32) error {
	if err := checkRange("fetch", addr, len(buf), c.Len()); err != nil {
		return err
	}
	for i := range buf {
		buf[i] = c.at(addr + i)
	}
	return nil
}

// Stor stores values starting at addr.
// Returns an error if any part of the range is out of bounds; no partial
// store is done.
func (c Cells) Stor(addr int, values ...int32) error {
	if len(values) == 1 {
		if err := checkAddr("store", addr, c.Len()); err != nil {
			return err
		}
	} else if err := checkRange("store", addr, len(values), c.Len()); err != nil {
		return err
	}
	for i, val := range values {
		byteOrder.PutUint32(c.buf[(addr+i)*CellSize:], uint32(val))
	}
	return nil
}

// Count treats the cell at addr as the length prefix of a counted string,
// returning the address of its first character and its length.
func (c Cells) Count(addr int) (int, int32, error) {
	if err := checkAddr("count", addr, c.Len()); err != nil {
		return 0, 0, err
	}
	if err := checkAddr("count", addr+1, c.Len()); err != nil {
		return 0, 0, err
	}
	return addr + 1, c.at(addr), nil
}

func (c Cells) at(addr int) int32 {
	return int32(byteOrder.Uint32(c.buf[addr*CellSize:]))
}
