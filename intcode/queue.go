package intcode

// Queue is the FIFO of pending input values of a Program.
type Queue struct {
	Data []int64
}

// Push appends values at the back.
func (q *Queue) Push(values ...int64) {
	q.Data = append(q.Data, values...)
}

// Pop removes the value at the front.
func (q *Queue) Pop() (value int64, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

// Peek returns the value at the front without removing it.
func (q *Queue) Peek() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

// Reset drops all pending values.
func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
}

// Replace drops all pending values and queues values in their place.
func (q *Queue) Replace(values ...int64) {
	q.Data = append(q.Data[:0:0], values...)
}
