package program

import (
	"errors"

	"github.com/PickledChair/BrainFucker/translate"
)

var f = translate.From

var (
	ErrCount   = errors.New(f("run length must be positive"))
	ErrTarget  = errors.New(f("jump target out of range"))
	ErrPairing = errors.New(f("jump targets not paired"))
	ErrKind    = errors.New(f("unknown instruction kind"))
)

// ErrInstruction locates an invalid instruction.
type ErrInstruction struct {
	Index int
	Err   error
}

func (err *ErrInstruction) Error() string {
	return f("instruction %d %v", err.Index, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
