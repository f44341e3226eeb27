package io

// Temporary is an in-memory channel. Input lines are queued with Push and
// output accumulates until drained.
type Temporary struct {
	Capacity int // Output capacity in bytes. Zero is unbounded.

	Lines  [][]byte
	Output []byte
}

var _ Channel = (*Temporary)(nil)

// Rewind discards queued input and buffered output.
func (temp *Temporary) Rewind() {
	temp.Lines = nil
	temp.Output = nil
}

// Push queues a line of input.
func (temp *Temporary) Push(line []byte) {
	temp.Lines = append(temp.Lines, line)
}

// Receive pops the oldest queued line.
// Returns ErrChannelEmpty if no line is queued.
func (temp *Temporary) Receive(prompt string) (line []byte, err error) {
	if len(temp.Lines) == 0 {
		err = ErrChannelEmpty
		return
	}

	line = temp.Lines[0]
	temp.Lines = temp.Lines[1:]
	return
}

// Send appends data to the output buffer.
// Returns ErrChannelFull if the data would exceed the capacity.
func (temp *Temporary) Send(data []byte) (err error) {
	if temp.Capacity > 0 && len(temp.Output)+len(data) > temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Output = append(temp.Output, data...)
	return
}

// Drain returns the buffered output and empties the buffer.
func (temp *Temporary) Drain() (out []byte) {
	out = temp.Output
	temp.Output = nil
	return
}
