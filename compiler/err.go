package compiler

import (
	"errors"

	"github.com/PickledChair/BrainFucker/translate"
)

var f = translate.From

var (
	ErrUnbalancedBrackets = errors.New(f("unbalanced brackets"))
	ErrExpandLimit        = errors.New(f("expansion too large"))
)

// ErrBracket locates an unmatched loop bracket.
type ErrBracket struct {
	Index  int // Instruction index of the bracket.
	LineNo int // Source line of the bracket.
	Err    error
}

func (err *ErrBracket) Error() string {
	return f("line %d instruction %d %v", err.LineNo, err.Index, err.Err)
}

func (err *ErrBracket) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a failed $(...) expansion.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
