package engine

// Counter is a program counter in [0, Limit]. Limit means the end of the
// program has been reached.
type Counter struct {
	index int
	limit int
}

// NewCounter creates a counter for a program of limit instructions.
func NewCounter(limit int) Counter {
	return Counter{limit: limit}
}

// Index returns the index of the next instruction.
func (c Counter) Index() int {
	return c.index
}

// Limit returns the program length.
func (c Counter) Limit() int {
	return c.limit
}

// Done returns true at the end of the program.
func (c Counter) Done() bool {
	return c.index == c.limit
}

// Inc advances to the next instruction.
func (c *Counter) Inc() error {
	if c.index >= c.limit {
		return ErrProgramCounter
	}
	c.index++
	return nil
}

// Jump sets the counter to a target instruction.
func (c *Counter) Jump(target int) error {
	if target < 0 || target >= c.limit {
		return ErrProgramCounter
	}
	c.index = target
	return nil
}
