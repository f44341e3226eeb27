package engine

// Queue is the FIFO of staged input bytes.
type Queue struct {
	Data []byte
}

// Push appends bytes to the end of the queue.
func (q *Queue) Push(data ...byte) {
	q.Data = append(q.Data, data...)
}

// Pop removes the byte at the head of the queue.
func (q *Queue) Pop() (value byte, ok bool) {
	if q.Empty() {
		return
	}

	value, ok = q.Data[0], true
	q.Data = q.Data[1:]
	if len(q.Data) == 0 {
		q.Data = nil
	}
	return
}

// Len returns the number of staged bytes.
func (q *Queue) Len() int {
	return len(q.Data)
}

// Empty returns true if nothing is staged.
func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

// Reset discards all staged bytes.
func (q *Queue) Reset() {
	q.Data = nil
}
