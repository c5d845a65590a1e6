package heap

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Update when no element in the queue compares
// equal to the element being replaced.
var ErrNotFound = errors.New("heap: element not found")

// CompareFunc defines the pop order of a Queue. It returns a negative value
// when a must be popped before b, zero when the two are tied, and a positive
// value when b is popped first. The context supplied at construction is passed
// unchanged to every call, so an ordering may depend on external data such as
// a weights slice indexed by the elements.
type CompareFunc[T, C any] func(ctx C, a, b T) int

// Queue is an array-backed priority queue implemented as a binary heap.
// Elements are stored in a single contiguous slice; the element at index 0 is
// always the next to pop. The zero Queue is not usable, construct one with
// New or FromSlice.
//
// A Queue is not safe for concurrent use.
type Queue[T any, C any] struct {
	items []T
	ctx   C
	cmp   CompareFunc[T, C]
}

// New returns an empty queue with no allocated capacity that orders elements
// with cmp, threading ctx through every comparison.
func New[T, C any](ctx C, cmp CompareFunc[T, C]) *Queue[T, C] {
	return &Queue[T, C]{ctx: ctx, cmp: cmp}
}

// FromSlice builds a queue from items in O(n) by heapifying in place. The
// queue takes ownership of the slice; the caller must not use it afterwards.
func FromSlice[T, C any](items []T, ctx C, cmp CompareFunc[T, C]) *Queue[T, C] {
	q := &Queue[T, C]{items: items, ctx: ctx, cmp: cmp}
	for i := len(items)/2 - 1; i >= 0; i-- {
		q.down(i)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T, C]) Len() int {
	return len(q.items)
}

// Cap returns the number of elements the queue can hold before reallocating.
func (q *Queue[T, C]) Cap() int {
	return cap(q.items)
}

// Push inserts v, growing the backing array if needed.
func (q *Queue[T, C]) Push(v T) {
	q.Grow(1)
	q.PushAssumeCapacity(v)
}

// PushAssumeCapacity inserts v without growing the backing array. It
// guarantees that the backing array is not reallocated, which callers can
// rely on after a single up-front Reserve or Grow. It panics if there is no
// spare capacity; that is a programmer error, not a runtime condition.
func (q *Queue[T, C]) PushAssumeCapacity(v T) {
	if len(q.items) == cap(q.items) {
		panic("heap: push exceeds reserved capacity")
	}
	q.items = append(q.items, v)
	q.up(len(q.items) - 1)
}

// PushSlice inserts every element of vs, growing the backing array at most
// once. The heap invariant holds after each individual insertion, not only
// once the batch completes.
func (q *Queue[T, C]) PushSlice(vs []T) {
	q.Grow(len(vs))
	q.PushSliceAssumeCapacity(vs)
}

// PushSliceAssumeCapacity inserts every element of vs without growing the
// backing array. It panics if the spare capacity is insufficient.
func (q *Queue[T, C]) PushSliceAssumeCapacity(vs []T) {
	for _, v := range vs {
		q.PushAssumeCapacity(v)
	}
}

// Peek returns the next element to pop without removing it. It returns false
// if the queue is empty.
func (q *Queue[T, C]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Pop removes and returns the next element. It panics if the queue is empty;
// use PopSafe when emptiness is a normal condition.
func (q *Queue[T, C]) Pop() T {
	if len(q.items) == 0 {
		panic("heap: pop from empty queue")
	}
	return q.RemoveIndex(0)
}

// PopSafe removes and returns the next element, or returns false if the
// queue is empty.
func (q *Queue[T, C]) PopSafe() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.RemoveIndex(0), true
}

// RemoveIndex removes and returns the element at position i in the backing
// array (storage order, as exposed by Iterator and All). It panics if i is
// out of range.
//
// The slot is filled by the current last element. A freshly relocated element
// can violate the heap invariant in at most one direction relative to its new
// neighbors, so a single comparison against the new parent decides whether to
// sift down or up.
func (q *Queue[T, C]) RemoveIndex(i int) T {
	if i < 0 || i >= len(q.items) {
		panic(fmt.Sprintf("heap: index %d out of range with length %d", i, len(q.items)))
	}

	last := len(q.items) - 1
	removed := q.items[i]
	q.items[i] = q.items[last]
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]

	switch {
	case i == last:
		// Removed the tail, nothing was relocated.
	case i == 0:
		q.down(0)
	default:
		parent := (i - 1) / 2
		if q.cmp(q.ctx, q.items[i], q.items[parent]) > 0 {
			q.down(i)
		} else {
			q.up(i)
		}
	}
	return removed
}

// Update replaces the first element that compares equal to old with updated
// and restores the heap invariant, sifting in whichever direction the
// priority moved. The scan is linear. If no element compares equal to old,
// Update returns ErrNotFound and the queue is unchanged.
func (q *Queue[T, C]) Update(old, updated T) error {
	at := -1
	for i, v := range q.items {
		if q.cmp(q.ctx, v, old) == 0 {
			at = i
			break
		}
	}
	if at < 0 {
		return ErrNotFound
	}

	prev := q.items[at]
	q.items[at] = updated
	switch c := q.cmp(q.ctx, updated, prev); {
	case c < 0:
		q.up(at)
	case c > 0:
		q.down(at)
	}
	return nil
}

// Reserve grows the backing array so that it can hold at least total
// elements. It is a no-op when the current capacity is already sufficient.
// Growth is geometric: the capacity is advanced by half of itself plus eight
// until it reaches total, then the array is reallocated once to exactly that
// size. Reserve never shrinks.
func (q *Queue[T, C]) Reserve(total int) {
	if cap(q.items) >= total {
		return
	}
	newCap := cap(q.items)
	for newCap < total {
		newCap += newCap/2 + 8
	}
	items := make([]T, len(q.items), newCap)
	copy(items, q.items)
	q.items = items
}

// Grow reserves capacity for at least n additional elements beyond the
// current length.
func (q *Queue[T, C]) Grow(n int) {
	q.Reserve(len(q.items) + n)
}

// Shrink reallocates the backing array down to exactly newCap. It panics
// unless Len() <= newCap <= Cap(); shrinking below the element count would
// lose data and is a programmer error.
func (q *Queue[T, C]) Shrink(newCap int) {
	if newCap < len(q.items) || newCap > cap(q.items) {
		panic(fmt.Sprintf("heap: shrink to capacity %d outside [%d, %d]", newCap, len(q.items), cap(q.items)))
	}
	if newCap == cap(q.items) {
		return
	}
	items := make([]T, len(q.items), newCap)
	copy(items, q.items)
	q.items = items
}

// Clear removes all elements while retaining the allocated capacity.
func (q *Queue[T, C]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// up moves the element at index j toward the root until it no longer orders
// before its parent.
func (q *Queue[T, C]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || q.cmp(q.ctx, q.items[j], q.items[i]) >= 0 {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		j = i
	}
}

// down moves the element at index i toward the leaves until neither child
// orders before it. Ties between children keep the left child.
func (q *Queue[T, C]) down(i int) {
	n := len(q.items)
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.cmp(q.ctx, q.items[j2], q.items[j1]) < 0 {
			j = j2 // right child
		}
		if q.cmp(q.ctx, q.items[j], q.items[i]) >= 0 {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}
}
