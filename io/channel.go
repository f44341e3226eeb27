// Package io provides the channels the emulator uses to exchange bytes with
// the outside world. Channels are line oriented on input: the engine asks for
// a line only when it awaits input and its staging queue is empty.
package io

// Channel defines the interface for all I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next line of input, without its line ending.
	// The prompt is shown first by channels that can show one.
	Receive(prompt string) (line []byte, err error)
	// Send writes program output.
	Send(data []byte) error
}
