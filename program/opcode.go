package program

import (
	"fmt"
)

// Kind is the type of an instruction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_ADD   = Kind(0) // add
	OP_SUB   = Kind(1) // sub
	OP_RIGHT = Kind(2) // right
	OP_LEFT  = Kind(3) // left
	OP_JZ    = Kind(4) // jz
	OP_JNZ   = Kind(5) // jnz
	OP_WRITE = Kind(6) // write
	OP_READ  = Kind(7) // read
	OP_CLEAR = Kind(8) // clear
)

// symbolMap maps source symbols to instruction kinds.
var symbolMap = map[byte]Kind{
	'+': OP_ADD,
	'-': OP_SUB,
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'[': OP_JZ,
	']': OP_JNZ,
	'.': OP_WRITE,
	',': OP_READ,
}

// KindOf returns the kind for a source symbol, if it is one of the eight.
func KindOf(symbol byte) (kind Kind, ok bool) {
	kind, ok = symbolMap[symbol]
	return
}

// Counted returns true for kinds whose argument is a run length.
func (kind Kind) Counted() bool {
	return kind <= OP_LEFT
}

// Jump returns true for the two loop bracket kinds.
func (kind Kind) Jump() bool {
	return kind == OP_JZ || kind == OP_JNZ
}

// Instruction is a single compiled operation.
type Instruction struct {
	Kind Kind
	Arg  int // Run length for counted kinds, partner index for jumps.
}

// String returns the listing form of the instruction.
func (inst Instruction) String() string {
	if inst.Kind.Counted() || inst.Kind.Jump() {
		return fmt.Sprintf("%v %v", inst.Kind.String(), inst.Arg)
	}

	return inst.Kind.String()
}
