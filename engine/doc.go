// Package engine executes a compiled program.Program on a fixed size tape.
//
// The Engine owns a tape of TAPE_SIZE byte cells, a data pointer, a program
// counter, an output buffer and an input staging queue. It runs one
// instruction per Step, or many with Run. When a read instruction executes,
// the engine enters MODE_AWAITING_INPUT and stays there until SupplyInput
// delivers a 7-bit byte. Suspension is a pure state transition: the engine
// never blocks and never performs I/O, so console loops, batch runners and
// event driven front ends can all drive it.
//
// An Engine is not safe for concurrent use. Separate engines share nothing.
package engine
