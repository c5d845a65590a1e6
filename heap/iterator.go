package heap

import "iter"

// Iterator is a cursor over the queue's backing array in storage order, which
// is heap layout order, not pop order. It does not own the queue: it holds a
// back-reference and a position. Any mutation of the queue invalidates every
// live Iterator; advancing an invalidated Iterator has unspecified results.
type Iterator[T, C any] struct {
	q   *Queue[T, C]
	pos int
}

// Iterator returns a cursor positioned before the first element.
func (q *Queue[T, C]) Iterator() Iterator[T, C] {
	return Iterator[T, C]{q: q}
}

// Next returns the next element in storage order, or false once the cursor
// has passed the last element.
func (it *Iterator[T, C]) Next() (T, bool) {
	if it.pos >= len(it.q.items) {
		var zero T
		return zero, false
	}
	v := it.q.items[it.pos]
	it.pos++
	return v, true
}

// Reset rewinds the cursor to the first element.
func (it *Iterator[T, C]) Reset() {
	it.pos = 0
}

// All returns the queue's elements in storage order as a single-use sequence.
// Like Iterator, the sequence observes the live queue and must not span any
// mutation.
func (q *Queue[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.items {
			if !yield(v) {
				return
			}
		}
	}
}
