package engine

import (
	"errors"

	"github.com/PickledChair/BrainFucker/translate"
)

var f = translate.From

var (
	ErrBounds         = errors.New(f("pointer out of tape bounds"))
	ErrProgramCounter = errors.New(f("program counter out of range"))
	ErrEmptyInput     = errors.New(f("input empty"))
	ErrNonAsciiInput  = errors.New(f("input contains non-ascii code"))
	ErrAwaitingInput  = errors.New(f("engine awaiting input"))
)
