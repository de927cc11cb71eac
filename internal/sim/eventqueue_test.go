package sim

import "testing"

func TestEventQueueOrdersByTime(t *testing.T) {
	q := NewEventQueue(100)
	q.Enqueue(Event{Kind: RedrawEvent, Time: 3})
	q.Enqueue(Event{Kind: RedrawEvent, Time: 1})
	q.Enqueue(Event{Kind: RedrawEvent, Time: 2})

	var times []float64
	for q.NonEmpty() {
		e, _ := q.Dequeue()
		times = append(times, e.Time)
	}

	want := []float64{1, 2, 3}
	for i, w := range want {
		if times[i] != w {
			t.Fatalf("dequeue order = %v, want %v", times, want)
		}
	}
}

func TestEventQueueDropsBeyondHorizon(t *testing.T) {
	q := NewEventQueue(10)
	q.Enqueue(Event{Kind: RedrawEvent, Time: 5})
	q.Enqueue(Event{Kind: RedrawEvent, Time: 10.0001})
	q.Enqueue(Event{Kind: RedrawEvent, Time: 100})

	if q.Len() != 1 {
		t.Fatalf("expected 1 event within horizon, got %d", q.Len())
	}
}

func TestEventQueueDequeueEmpty(t *testing.T) {
	q := NewEventQueue(10)
	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected ok=false dequeuing an empty queue")
	}
}

func TestEventQueueTieBreakIsDeterministic(t *testing.T) {
	q1 := NewEventQueue(100)
	q2 := NewEventQueue(100)

	for i := 0; i < 10; i++ {
		e := Event{Kind: CollisionEvent, Time: 5, A: i, B: i + 1}
		q1.Enqueue(e)
		q2.Enqueue(e)
	}

	for q1.NonEmpty() {
		e1, _ := q1.Dequeue()
		e2, _ := q2.Dequeue()
		if e1.A != e2.A || e1.B != e2.B {
			t.Fatalf("tie-break order diverged between identically constructed queues: %v vs %v", e1, e2)
		}
	}
}

func TestEventQueueClear(t *testing.T) {
	q := NewEventQueue(100)
	q.Enqueue(Event{Kind: RedrawEvent, Time: 1})
	q.Clear()
	if q.NonEmpty() {
		t.Fatal("expected queue to be empty after Clear")
	}
}
