// Package compiler turns brainfuck source text into a program.Program.
//
// Compilation filters out every character that is not one of the eight
// symbols, folds runs of identical value and pointer operations into counted
// instructions, rewrites the clear-loop idiom "[-]" into a single clear
// instruction, and pairs the loop brackets into direct jump targets.
//
// Optionally, $(...) expressions in the source are evaluated as Starlark
// before filtering. A string result is spliced into the source, an integer
// result becomes a run of '+' (or '-' when negative).
package compiler
