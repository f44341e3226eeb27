package program

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Program is an immutable, jump resolved instruction stream.
type Program struct {
	code    []Instruction
	lines   []int
	hasRead bool
}

// New validates an instruction stream and wraps it as a Program.
// lines, if not nil, holds the source line of each instruction.
func New(code []Instruction, lines []int) (prog *Program, err error) {
	for n, inst := range code {
		err = validate(code, n, inst)
		if err != nil {
			err = &ErrInstruction{Index: n, Err: err}
			return
		}
	}

	if lines != nil && len(lines) != len(code) {
		panic("program: line table does not match instructions")
	}

	prog = &Program{
		code:    slices.Clone(code),
		lines:   slices.Clone(lines),
		hasRead: slices.ContainsFunc(code, func(inst Instruction) bool { return inst.Kind == OP_READ }),
	}

	return
}

// validate checks one instruction against the rest of the stream.
func validate(code []Instruction, n int, inst Instruction) error {
	switch {
	case inst.Kind.Counted():
		if inst.Arg < 1 {
			return ErrCount
		}
	case inst.Kind.Jump():
		if inst.Arg < 0 || inst.Arg >= len(code) {
			return ErrTarget
		}
		partner := code[inst.Arg]
		want := OP_JNZ
		if inst.Kind == OP_JNZ {
			want = OP_JZ
		}
		if partner.Kind != want || partner.Arg != n {
			return ErrPairing
		}
		// Open brackets precede their close.
		if (inst.Kind == OP_JZ) != (inst.Arg > n) {
			return ErrPairing
		}
	case inst.Kind == OP_WRITE, inst.Kind == OP_READ, inst.Kind == OP_CLEAR:
	default:
		return ErrKind
	}

	return nil
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.code)
}

// At returns the instruction at index n.
func (prog *Program) At(n int) Instruction {
	return prog.code[n]
}

// LineNo returns the source line for the instruction at index n, or 0 if
// unknown.
func (prog *Program) LineNo(n int) int {
	if n < 0 || n >= len(prog.lines) {
		return 0
	}
	return prog.lines[n]
}

// HasRead returns true if any instruction requests input.
func (prog *Program) HasRead() bool {
	return prog.hasRead
}

// All iterates over the instructions and their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.code)
}

// String returns a listing of the program, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for n, inst := range prog.code {
		fmt.Fprintf(&sb, "%04d: %v\n", n, inst)
	}
	return sb.String()
}
