package engine

const (
	TAPE_SIZE = 30_000 // Number of cells on the tape.
)

// Pointer is a data pointer, always in [0, TAPE_SIZE).
type Pointer struct {
	index int
}

// Index returns the cell index.
func (p Pointer) Index() int {
	return p.index
}

// ShiftRight moves the pointer n cells right. On failure the pointer is
// unchanged.
func (p *Pointer) ShiftRight(n int) error {
	if n > TAPE_SIZE-1-p.index {
		return ErrBounds
	}
	p.index += n
	return nil
}

// ShiftLeft moves the pointer n cells left. On failure the pointer is
// unchanged.
func (p *Pointer) ShiftLeft(n int) error {
	if n > p.index {
		return ErrBounds
	}
	p.index -= n
	return nil
}

// Reset returns the pointer to the first cell.
func (p *Pointer) Reset() {
	p.index = 0
}
