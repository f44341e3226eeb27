package emulator

import (
	"github.com/PickledChair/BrainFucker/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Index  int // Instruction index.
	LineNo int // Source line of the instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d instruction %d %v", err.LineNo, err.Index, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
