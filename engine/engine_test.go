package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PickledChair/BrainFucker/compiler"
	"github.com/PickledChair/BrainFucker/program"
)

// HELLO_WORLD prints "Hello World!\n".
const HELLO_WORLD = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func doCompile(t *testing.T, cc *compiler.Compiler, source string) *program.Program {
	prog, err := cc.Compile(source)
	if err != nil {
		t.Fatalf("%v: %v", source, err)
	}
	return prog
}

func TestNewEngine(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+."))
	assert.Equal(MODE_RUNNING, e.Mode())
	assert.Equal(0, e.Pointer())
	assert.Equal(0, e.Counter())
	assert.Equal(0, e.Pending())
	assert.False(e.Complete())
	assert.Empty(e.DrainOutput())

	e = NewEngine(nil)
	assert.True(e.Complete())
	assert.NoError(e.Run())
}

func TestEngine_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		cell   byte
	}{
		{"+", 1},
		{"-", 255},
		{strings.Repeat("+", 256), 0},
		{strings.Repeat("+", 300), 44},
		{strings.Repeat("-", 257), 255},
		{"+++[-]", 0},
		{"++>+++<[->+<]>", 5},
	}

	for _, entry := range table {
		e := NewEngine(doCompile(t, &compiler.Compiler{}, entry.source))
		assert.NoError(e.Run(), entry.source)
		assert.True(e.Complete(), entry.source)
		assert.Equal(entry.cell, e.Cell(), entry.source)
	}
}

func TestEngine_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, HELLO_WORLD))
	assert.False(e.HasRead())
	assert.NoError(e.Run())
	assert.True(e.Complete())
	assert.Equal("Hello World!\n", string(e.DrainOutput()))
	assert.Empty(e.DrainOutput())
}

func TestEngine_ShiftRightOverflow(t *testing.T) {
	assert := assert.New(t)

	cc := &compiler.Compiler{MaxRun: 1}
	e := NewEngine(doCompile(t, cc, strings.Repeat(">", TAPE_SIZE)))

	for range TAPE_SIZE - 1 {
		assert.NoError(e.Step())
	}
	assert.Equal(TAPE_SIZE-1, e.Pointer())

	assert.ErrorIs(e.Step(), ErrBounds)
	assert.Equal(TAPE_SIZE-1, e.Pointer())
	assert.Equal(TAPE_SIZE-1, e.Counter())
	assert.Equal(TAPE_SIZE-1, e.Ticks)

	// Folded into one instruction, the whole run fails at once.
	e = NewEngine(doCompile(t, &compiler.Compiler{}, strings.Repeat(">", TAPE_SIZE)))
	assert.ErrorIs(e.Step(), ErrBounds)
	assert.Equal(0, e.Pointer())
	assert.Equal(0, e.Counter())
}

func TestEngine_ShiftLeftUnderflow(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "<"))
	assert.ErrorIs(e.Step(), ErrBounds)
	assert.Equal(0, e.Pointer())
	assert.Equal(0, e.Counter())
	assert.Equal(0, e.Ticks)
	for n := range TAPE_SIZE {
		if e.Peek(n) != 0 {
			t.Fatalf("cell %d modified", n)
		}
	}

	e = NewEngine(doCompile(t, &compiler.Compiler{}, "+>+<<"))
	assert.ErrorIs(e.Run(), ErrBounds)
	assert.Equal(1, e.Pointer())
	assert.Equal(3, e.Counter())
	assert.Equal(byte(1), e.Peek(0))
	assert.Equal(byte(1), e.Peek(1))
}

func TestEngine_ClearLoop(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		prefix := strings.Repeat("+", value)

		optimized := NewEngine(doCompile(t, &compiler.Compiler{}, prefix+"[-]"))
		assert.NoError(optimized.Run())
		assert.Equal(byte(0), optimized.Cell())

		literal := NewEngine(doCompile(t, &compiler.Compiler{NoClear: true}, prefix+"[-]"))
		assert.NoError(literal.Run())
		assert.Equal(byte(0), literal.Cell())

		if value > 0 {
			assert.Less(optimized.Ticks, literal.Ticks, "value %d", value)
			assert.Equal(2, optimized.Ticks)
			assert.Equal(2+2*value, literal.Ticks)
		} else {
			assert.Equal(optimized.Ticks, literal.Ticks)
		}
	}
}

func TestEngine_Loops(t *testing.T) {
	assert := assert.New(t)

	// Skipped loop body.
	e := NewEngine(doCompile(t, &compiler.Compiler{}, "[+.]+."))
	assert.NoError(e.Run())
	assert.Equal([]byte{1}, e.DrainOutput())

	// Nested loops: 3 * 4 = 12.
	e = NewEngine(doCompile(t, &compiler.Compiler{}, "+++[>++++[>+<-]<-]>>."))
	assert.NoError(e.Run())
	assert.Equal([]byte{12}, e.DrainOutput())
}

func TestEngine_FastPathMatchesStep(t *testing.T) {
	assert := assert.New(t)

	sources := []string{
		HELLO_WORLD,
		"+++[>++++[>+<-]<-]>>.",
		">++++++++[<+++++++++>-]<.>++++[<+++++++>-]<+.+++++++..+++.",
		"-[--->+<]>-.[---->+++++<]>-.+++++++..+++.",
	}

	for _, source := range sources {
		prog := doCompile(t, &compiler.Compiler{}, source)

		fast := NewEngine(prog)
		assert.NoError(fast.Run())

		slow := NewEngine(prog)
		for !slow.Complete() {
			if !assert.NoError(slow.Step()) {
				break
			}
		}

		assert.Equal(slow.DrainOutput(), fast.DrainOutput(), source)
		assert.Equal(slow.Ticks, fast.Ticks, source)
		assert.Equal(slow.Pointer(), fast.Pointer(), source)
	}
}

func TestEngine_StepPastEnd(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+"))
	assert.NoError(e.Step())
	assert.True(e.Complete())
	assert.ErrorIs(e.Step(), ErrProgramCounter)
	assert.Equal(1, e.Counter())
}

func TestEngine_Read(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, ",+."))
	assert.True(e.HasRead())

	assert.NoError(e.Run())
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())
	assert.Equal(1, e.Counter())
	assert.False(e.Complete())

	// Stepping while suspended is refused.
	assert.ErrorIs(e.Step(), ErrAwaitingInput)
	assert.Equal(1, e.Counter())
	assert.NoError(e.Run())
	assert.Equal(1, e.Counter())

	assert.NoError(e.SupplyInput([]byte("A")))
	assert.Equal(MODE_RUNNING, e.Mode())
	assert.Equal(byte('A'), e.Cell())

	assert.NoError(e.Run())
	assert.True(e.Complete())
	assert.Equal("B", string(e.DrainOutput()))
}

func TestEngine_EmptyInput(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+,"))
	assert.NoError(e.Run())
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())

	assert.ErrorIs(e.SupplyInput(nil), ErrEmptyInput)
	assert.ErrorIs(e.SupplyInput([]byte{}), ErrEmptyInput)
	assert.Equal(byte(1), e.Cell())
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())
}

func TestEngine_NonAsciiInput(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+++,."))
	assert.NoError(e.Run())

	assert.ErrorIs(e.SupplyInput([]byte{200, 'z'}), ErrNonAsciiInput)
	assert.Equal(byte(3), e.Cell())
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())
	assert.Equal(1, e.Pending())

	// The byte after the rejected one is still queued.
	assert.NoError(e.SupplyInput(nil))
	assert.Equal(byte('z'), e.Cell())
	assert.Equal(0, e.Pending())
	assert.NoError(e.Run())
	assert.Equal("z", string(e.DrainOutput()))

	e = NewEngine(doCompile(t, &compiler.Compiler{}, ","))
	assert.NoError(e.Run())
	assert.ErrorIs(e.SupplyInput([]byte{200}), ErrNonAsciiInput)
	assert.Equal(0, e.Pending())
	assert.ErrorIs(e.SupplyInput(nil), ErrEmptyInput)
}

func TestEngine_InputQueue(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, ",[.,]"))

	// Staged before the first read; nothing is written yet.
	assert.NoError(e.SupplyInput([]byte("hi")))
	assert.Equal(2, e.Pending())
	assert.Equal(byte(0), e.Cell())
	assert.Equal(MODE_RUNNING, e.Mode())

	var out []byte
	input := [][]byte{nil, nil, []byte("!\x00")}
	for _, data := range input {
		assert.NoError(e.Run())
		assert.Equal(MODE_AWAITING_INPUT, e.Mode())
		assert.NoError(e.SupplyInput(data))
		out = append(out, e.DrainOutput()...)
	}
	assert.Equal(1, e.Pending())
	assert.NoError(e.Run())
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())
	assert.NoError(e.SupplyInput(nil))
	assert.NoError(e.Run())
	out = append(out, e.DrainOutput()...)

	assert.True(e.Complete())
	assert.Equal("hi!", string(out))
}

func TestEngine_RunFor(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+[]"))
	steps, err := e.RunFor(10)
	assert.NoError(err)
	assert.Equal(10, steps)
	assert.False(e.Complete())

	e = NewEngine(doCompile(t, &compiler.Compiler{}, "+.,."))
	steps, err = e.RunFor(10)
	assert.NoError(err)
	assert.Equal(3, steps)
	assert.Equal(MODE_AWAITING_INPUT, e.Mode())

	steps, err = e.RunFor(10)
	assert.NoError(err)
	assert.Equal(0, steps)

	e = NewEngine(doCompile(t, &compiler.Compiler{}, "+<"))
	steps, err = e.RunFor(10)
	assert.ErrorIs(err, ErrBounds)
	assert.Equal(1, steps)
}

func TestEngine_Reset(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "+++>++.,"))
	assert.NoError(e.Run())
	assert.NoError(e.SupplyInput([]byte("xyz")))
	assert.True(e.Complete())
	assert.Equal(2, e.Pending())

	e.Reset(doCompile(t, &compiler.Compiler{}, "."))
	assert.Equal(MODE_RUNNING, e.Mode())
	assert.Equal(0, e.Pointer())
	assert.Equal(0, e.Counter())
	assert.Equal(0, e.Pending())
	assert.Equal(0, e.Ticks)
	assert.Equal(byte(0), e.Peek(0))
	assert.Equal(byte(0), e.Peek(1))
	assert.Empty(e.DrainOutput())
	assert.False(e.HasRead())

	assert.NoError(e.Run())
	assert.Equal([]byte{0}, e.DrainOutput())
}

func TestEngine_String(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(doCompile(t, &compiler.Compiler{}, "++>,"))
	assert.NoError(e.Run())

	text := e.String()
	assert.Contains(text, "   pc: 0003/0003\n")
	assert.Contains(text, " mode: awaiting input\n")
	assert.Contains(text, "  ptr: 00001\n")
	assert.Contains(text, " cell: 0x00\n")
	assert.Contains(text, "ticks: 3\n")
}
