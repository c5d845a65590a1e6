package delay

import (
	"time"

	"github.com/davidvella/pq/heap"
)

// entry pairs an item with the instant it becomes due.
type entry[T any] struct {
	value T
	at    time.Time
}

// Queue holds items until an associated point in time. Items are released in
// due-time order, earliest first; items sharing an instant are released in an
// unspecified relative order.
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	h *heap.Queue[entry[T], struct{}]
}

// New returns an empty delay queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		h: heap.New(struct{}{}, func(_ struct{}, a, b entry[T]) int {
			return a.at.Compare(b.at)
		}),
	}
}

// Len returns the number of held items, due or not.
func (q *Queue[T]) Len() int {
	return q.h.Len()
}

// Add holds v until at.
func (q *Queue[T]) Add(v T, at time.Time) {
	q.h.Push(entry[T]{value: v, at: at})
}

// Next returns the earliest item and its due time without removing it. It
// returns false if the queue is empty.
func (q *Queue[T]) Next() (T, time.Time, bool) {
	e, ok := q.h.Peek()
	if !ok {
		var zero T
		return zero, time.Time{}, false
	}
	return e.value, e.at, true
}

// PopDue removes and returns the earliest item whose due time is at or
// before now. It returns false if the queue is empty or nothing is due yet.
func (q *Queue[T]) PopDue(now time.Time) (T, bool) {
	e, ok := q.h.Peek()
	if !ok || e.at.After(now) {
		var zero T
		return zero, false
	}
	return q.h.Pop().value, true
}

// Until reports how long from now the earliest item becomes due. It returns
// zero when an item is already due and false when the queue is empty; pollers
// can sleep for the returned duration before trying PopDue again.
func (q *Queue[T]) Until(now time.Time) (time.Duration, bool) {
	e, ok := q.h.Peek()
	if !ok {
		return 0, false
	}
	if d := e.at.Sub(now); d > 0 {
		return d, true
	}
	return 0, true
}
