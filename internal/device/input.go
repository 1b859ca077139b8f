package device

// QueueInput buffers events pushed by a host (keyboard, GPIO reader) until the
// controller polls them.
type QueueInput struct {
	events chan Event
}

// NewQueueInput creates a queue holding up to size pending events.
func NewQueueInput(size int) *QueueInput {
	if size < 1 {
		size = 1
	}

	return &QueueInput{events: make(chan Event, size)}
}

// Push enqueues e. It reports false and drops the event when the queue is full.
func (q *QueueInput) Push(e Event) bool {
	if e == EventNone {
		return true
	}

	select {
	case q.events <- e:
		return true
	default:
		return false
	}
}

// Poll returns the oldest pending event or EventNone.
func (q *QueueInput) Poll() Event {
	select {
	case e := <-q.events:
		return e
	default:
		return EventNone
	}
}

// NoInput never reports an event. Headless controllers use it.
type NoInput struct{}

func (NoInput) Poll() Event { return EventNone }
