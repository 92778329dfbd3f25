package event

// Queue collects score events produced during one tick
// Single-threaded by design: systems push while the pipeline runs, the
// host drains after scoring and hands the batch to any sinks. Events
// are transient; anything not drained before the next tick is still
// returned then, in emission order.
type Queue struct {
	events []ScoreEvent
}

// NewQueue returns an empty queue with a small preallocated buffer
func NewQueue() *Queue {
	return &Queue{events: make([]ScoreEvent, 0, 4)}
}

// Push appends an event in emission order
func (q *Queue) Push(ev ScoreEvent) {
	q.events = append(q.events, ev)
}

// Drain returns all pending events in emission order and empties the
// queue. Returns nil when no events are pending.
func (q *Queue) Drain() []ScoreEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]ScoreEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}
