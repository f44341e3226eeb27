// Package program defines the compiled instruction stream executed by the
// engine.
//
// A Program is an ordered list of instructions. Runs of value and pointer
// operations are folded into a single counted instruction, the clear-loop
// idiom is a single instruction, and every loop bracket carries the index of
// its partner. Programs are immutable once built; New validates that the jump
// targets pair up symmetrically.
package program
