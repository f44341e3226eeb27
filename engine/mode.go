package engine

// Mode is the execution mode of an engine.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_RUNNING        = Mode(0) // running
	MODE_AWAITING_INPUT = Mode(1) // awaiting input
)
