// Package emulator drives an engine.Engine from a line oriented io.Channel.
//
// The emulator compiles source with its Compiler, runs the program in Ticks,
// sends the output of each tick to the console, and feeds console lines to
// the engine's input queue when the program reads.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/PickledChair/BrainFucker/compiler"
	"github.com/PickledChair/BrainFucker/engine"
	"github.com/PickledChair/BrainFucker/internal"
	"github.com/PickledChair/BrainFucker/io"
	"github.com/PickledChair/BrainFucker/program"
)

const (
	PROMPT_PROGRAM = "$ input : "        // Prompt for a program in interactive mode.
	PROMPT_INPUT   = "$ input queue <- " // Prompt for program input.
	QUIT           = "q"                 // Ends an interactive session.
)

var _emulator_defines = map[string]string{
	"TAPE_SIZE": fmt.Sprintf("%v", engine.TAPE_SIZE),
	"CELL_MAX":  "255",
	"ASCII_MAX": "127",
}

// Emulator state. Compiler + Engine + console channel.
type Emulator struct {
	Verbose        bool               // If set, enables verbose logging.
	*engine.Engine                    // Reference to the execution engine.
	Compiler       *compiler.Compiler // Compiler used by Load.
	Program        *program.Program   // Reference to the currently loaded program.
	Console        io.Channel         // Input and output channel.
	Burst          int                // Instructions per Tick. Zero runs until suspended.

	defines map[string]string
}

// NewEmulator creates a new emulator with an in-memory console.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Engine:   engine.NewEngine(nil),
		Compiler: &compiler.Compiler{},
		Console:  &io.Temporary{},
		defines:  map[string]string{},
	}

	emu.Program = emu.Engine.Program()

	return
}

// Define adds a define visible to $(...) expressions.
func (emu *Emulator) Define(name string, value string) {
	emu.defines[name] = value
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		maps.All(emu.defines),
	)
}

// Load compiles source and resets the emulator to run it.
func (emu *Emulator) Load(source string) (err error) {
	emu.Compiler.Verbose = emu.Verbose
	for name, value := range emu.Defines() {
		emu.Compiler.Predefine(name, value)
	}

	prog, err := emu.Compiler.Compile(source)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Reset restarts the loaded program.
func (emu *Emulator) Reset() {
	emu.Engine.Verbose = emu.Verbose
	emu.Engine.Reset(emu.Program)
}

// LineNo returns the source line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Engine.Counter())
}

// flush sends all pending engine output to the console.
func (emu *Emulator) flush() (err error) {
	out := emu.Engine.DrainOutput()
	if len(out) == 0 {
		return
	}

	return emu.Console.Send(out)
}

// Tick advances the program once: it either satisfies a pending read, or
// runs until the program suspends, completes, fails or exhausts Burst.
// Output produced by the tick is sent to the console before it returns.
func (emu *Emulator) Tick() (done bool, err error) {
	e := emu.Engine
	e.Verbose = emu.Verbose

	index := e.Counter()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Index: index, LineNo: emu.Program.LineNo(index), Err: err}
		}
	}()

	switch e.Mode() {
	case engine.MODE_AWAITING_INPUT:
		// Report input errors against the read itself.
		index--

		var line []byte
		if e.Pending() == 0 {
			line, err = emu.Console.Receive(PROMPT_INPUT)
			if err != nil {
				return
			}
		}
		err = e.SupplyInput(line)
		if err != nil {
			return
		}
	default:
		if emu.Burst > 0 {
			_, err = e.RunFor(emu.Burst)
		} else {
			err = e.Run()
		}
		index = e.Counter()
		err = errors.Join(err, emu.flush())
		if err != nil {
			return
		}
	}

	done = e.Complete() && e.Mode() == engine.MODE_RUNNING

	return
}

// Run ticks until the program completes or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Interact runs programs read from the console, one per line, until a line
// reads QUIT or the console closes. A failing program is passed to report
// and the session continues.
func (emu *Emulator) Interact(report func(err error)) (err error) {
	for {
		var line []byte
		line, err = emu.Console.Receive(PROMPT_PROGRAM)
		if errors.Is(err, io.ErrChannelClosed) {
			return nil
		}
		if err != nil {
			return
		}

		if string(line) == QUIT {
			return
		}

		err = emu.Load(string(line))
		if err == nil {
			err = emu.Run()
		}
		if err != nil {
			report(err)
		}
	}
}
