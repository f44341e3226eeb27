package engine

import (
	"fmt"
	"log"

	"github.com/PickledChair/BrainFucker/program"
)

// Engine is the execution state for a single program.
type Engine struct {
	Verbose bool // Set to enable verbose logging.
	Ticks   int  // Instructions executed since the last reset.

	prog    *program.Program
	tape    [TAPE_SIZE]byte
	pointer Pointer
	counter Counter
	output  []byte
	input   Queue
	mode    Mode
}

// NewEngine creates an engine ready to run prog from its first instruction.
func NewEngine(prog *program.Program) (e *Engine) {
	e = &Engine{}
	e.Reset(prog)

	return
}

// Reset loads a new program, clearing the tape, pointer, counter, buffers
// and mode. The tape storage is reused.
func (e *Engine) Reset(prog *program.Program) {
	if e.Verbose {
		log.Printf("engine: reset")
	}

	if prog == nil {
		prog, _ = program.New(nil, nil)
	}

	e.prog = prog
	clear(e.tape[:])
	e.pointer.Reset()
	e.counter = NewCounter(prog.Len())
	e.output = nil
	e.input.Reset()
	e.mode = MODE_RUNNING
	e.Ticks = 0
}

// Program returns the loaded program.
func (e *Engine) Program() *program.Program {
	return e.prog
}

// Mode returns the current execution mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Pointer returns the data pointer.
func (e *Engine) Pointer() int {
	return e.pointer.Index()
}

// Counter returns the program counter.
func (e *Engine) Counter() int {
	return e.counter.Index()
}

// Cell returns the value of the cell under the data pointer.
func (e *Engine) Cell() byte {
	return e.tape[e.pointer.Index()]
}

// Peek returns the value of any cell on the tape.
func (e *Engine) Peek(index int) byte {
	return e.tape[index]
}

// Complete returns true once the program counter has reached the end of the
// program.
func (e *Engine) Complete() bool {
	return e.counter.Done()
}

// HasRead returns true if the loaded program can request input.
func (e *Engine) HasRead() bool {
	return e.prog.HasRead()
}

// Pending returns the number of staged input bytes.
func (e *Engine) Pending() int {
	return e.input.Len()
}

// DrainOutput returns all output produced since the last drain.
func (e *Engine) DrainOutput() (out []byte) {
	out = e.output
	e.output = nil
	return
}

// String returns the current engine state as a string.
func (e *Engine) String() (text string) {
	regs := []string{"pc", "mode", "ptr", "cell", "queue", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04d/%04d", e.counter.Index(), e.counter.Limit())
		case "mode":
			strval = e.mode.String()
		case "ptr":
			strval = fmt.Sprintf("%05d", e.pointer.Index())
		case "cell":
			strval = fmt.Sprintf("0x%02X", e.Cell())
		case "queue":
			strval = fmt.Sprintf("%d", e.input.Len())
		case "ticks":
			strval = fmt.Sprintf("%d", e.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Step executes the instruction at the program counter.
// Step fails with ErrAwaitingInput while input is awaited.
func (e *Engine) Step() (err error) {
	if e.mode == MODE_AWAITING_INPUT {
		return ErrAwaitingInput
	}

	return e.exec()
}

// exec executes one instruction. A failed instruction changes nothing.
func (e *Engine) exec() (err error) {
	if e.counter.Done() {
		return ErrProgramCounter
	}

	inst := e.prog.At(e.counter.Index())
	if e.Verbose {
		log.Printf("%04d: %v", e.counter.Index(), inst)
	}

	cell := &e.tape[e.pointer.Index()]
	next := e.counter

	switch inst.Kind {
	case program.OP_ADD:
		*cell += byte(inst.Arg)
	case program.OP_SUB:
		*cell -= byte(inst.Arg)
	case program.OP_RIGHT:
		err = e.pointer.ShiftRight(inst.Arg)
	case program.OP_LEFT:
		err = e.pointer.ShiftLeft(inst.Arg)
	case program.OP_WRITE:
		e.output = append(e.output, *cell)
	case program.OP_CLEAR:
		*cell = 0
	case program.OP_JZ:
		if *cell == 0 {
			err = next.Jump(inst.Arg)
		}
	case program.OP_JNZ:
		if *cell != 0 {
			err = next.Jump(inst.Arg)
		}
	case program.OP_READ:
		// Advance past the read; the byte lands in whatever cell is
		// current when it is supplied.
		e.mode = MODE_AWAITING_INPUT
		if e.Verbose {
			log.Printf("engine: %v", e.mode)
		}
	default:
		panic(fmt.Sprintf("engine: unknown instruction %v", inst))
	}
	if err != nil {
		return
	}

	err = next.Inc()
	if err != nil {
		return
	}

	e.counter = next
	e.Ticks++

	return
}

// Run steps until the program completes, input is awaited, or a step
// fails. Programs without a read instruction run without checking the mode.
func (e *Engine) Run() (err error) {
	if !e.prog.HasRead() {
		for !e.counter.Done() {
			err = e.exec()
			if err != nil {
				return
			}
		}
		return
	}

	for !e.counter.Done() && e.mode == MODE_RUNNING {
		err = e.exec()
		if err != nil {
			return
		}
	}

	return
}

// RunFor is Run limited to at most budget instructions.
func (e *Engine) RunFor(budget int) (steps int, err error) {
	for steps < budget && !e.counter.Done() && e.mode == MODE_RUNNING {
		err = e.exec()
		if err != nil {
			return
		}
		steps++
	}

	return
}

// SupplyInput stages data and, while input is awaited, consumes one byte
// from the head of the staging queue into the current cell.
//
// A byte above 127 is discarded with ErrNonAsciiInput, leaving the engine
// awaiting input. While running, data is only staged for a later read.
func (e *Engine) SupplyInput(data []byte) (err error) {
	if len(data) == 0 && e.input.Empty() {
		return ErrEmptyInput
	}

	e.input.Push(data...)

	if e.mode != MODE_AWAITING_INPUT {
		return
	}

	value, _ := e.input.Pop()
	if value > 127 {
		return ErrNonAsciiInput
	}

	e.tape[e.pointer.Index()] = value
	e.mode = MODE_RUNNING
	if e.Verbose {
		log.Printf("engine: input 0x%02X, %v", value, e.mode)
	}

	return
}
