package sim

import "container/heap"

// EventQueue is a bounded min-heap of Event ordered by Time. Events with
// Time beyond the configured horizon are silently discarded at Enqueue,
// which is what keeps the queue finite even though particles oscillating
// between walls would otherwise schedule forever.
//
// Backed directly by container/heap over a contiguous slice: no per-event
// heap node allocation, which matters at the population sizes (up to 1500)
// this simulator targets.
type EventQueue struct {
	items   eventHeap
	horizon float64
	nextSeq uint64
}

// NewEventQueue creates an EventQueue bounded by horizon.
func NewEventQueue(horizon float64) *EventQueue {
	return &EventQueue{horizon: horizon}
}

// Enqueue inserts e if e.Time does not exceed the horizon; otherwise it is
// dropped silently.
func (q *EventQueue) Enqueue(e Event) {
	if e.Time > q.horizon {
		return
	}
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.items, e)
}

// Dequeue removes and returns the earliest-time event. ok is false if the
// queue was empty.
func (q *EventQueue) Dequeue() (Event, bool) {
	if len(q.items) == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.items).(Event), true
}

// NonEmpty reports whether the queue has at least one event.
func (q *EventQueue) NonEmpty() bool { return len(q.items) > 0 }

// Len returns the number of events currently queued.
func (q *EventQueue) Len() int { return len(q.items) }

// Clear removes every queued event.
func (q *EventQueue) Clear() { q.items = q.items[:0] }

// eventHeap implements container/heap.Interface, ordered by Time and then
// by insertion sequence so identical-time events resolve deterministically.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
