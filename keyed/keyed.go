package keyed

import "iter"

// entry is a heap slot together with its position, tracked so that keyed
// removal and reprioritization find the slot in O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
	index int
}

// Queue is a priority queue addressable by key. It pairs a binary heap with
// a map from key to heap slot, giving O(1) lookup and O(log n) keyed update
// and removal. Each key appears at most once; setting an existing key
// reprioritizes it in place.
//
// A Queue is not safe for concurrent use.
type Queue[K comparable, V any] struct {
	entries []*entry[K, V]
	index   map[K]*entry[K, V]
	cmp     func(a, b V) int
}

// New returns an empty queue ordered by cmp, which follows the cmp.Compare
// sign convention: a negative result means a is popped before b.
func New[K comparable, V any](cmp func(a, b V) int) *Queue[K, V] {
	return &Queue[K, V]{
		index: make(map[K]*entry[K, V]),
		cmp:   cmp,
	}
}

// Len returns the number of keys in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.entries)
}

// Get returns the value stored under key.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set inserts key with value, or reprioritizes key in place if it is already
// present. A changed value sifts in the single direction its priority moved.
func (q *Queue[K, V]) Set(key K, value V) {
	if e, ok := q.index[key]; ok {
		prev := e.value
		e.value = value
		switch c := q.cmp(value, prev); {
		case c < 0:
			q.up(e.index)
		case c > 0:
			q.down(e.index)
		}
		return
	}

	e := &entry[K, V]{key: key, value: value, index: len(q.entries)}
	q.entries = append(q.entries, e)
	q.index[key] = e
	q.up(e.index)
}

// Remove deletes key from the queue and reports whether it was present.
func (q *Queue[K, V]) Remove(key K) bool {
	e, ok := q.index[key]
	if !ok {
		return false
	}
	q.removeAt(e.index)
	delete(q.index, key)
	return true
}

// Pop removes and returns the highest-priority key and value. It returns
// false if the queue is empty.
func (q *Queue[K, V]) Pop() (K, V, bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := q.entries[0]
	q.removeAt(0)
	delete(q.index, e.key)
	return e.key, e.value, true
}

// Peek returns the highest-priority key and value without removing them. It
// returns false if the queue is empty.
func (q *Queue[K, V]) Peek() (K, V, bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := q.entries[0]
	return e.key, e.value, true
}

// All returns the queue's key/value pairs in storage order, which is heap
// layout order, not pop order. The sequence observes the live queue and must
// not span any mutation.
func (q *Queue[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range q.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// removeAt unlinks the heap slot at i, filling it with the last entry. The
// relocated entry can violate the heap property in at most one direction, so
// one comparison against its new parent picks the corrective sift.
func (q *Queue[K, V]) removeAt(i int) {
	last := len(q.entries) - 1
	if i != last {
		q.swap(i, last)
	}
	q.entries[last] = nil
	q.entries = q.entries[:last]

	switch {
	case i == last:
	case i == 0:
		q.down(0)
	default:
		parent := (i - 1) / 2
		if q.cmp(q.entries[i].value, q.entries[parent].value) > 0 {
			q.down(i)
		} else {
			q.up(i)
		}
	}
}

// swap exchanges the slots at i and j, keeping their tracked positions
// current.
func (q *Queue[K, V]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

// up moves the slot at index j toward the root until it no longer orders
// before its parent.
func (q *Queue[K, V]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || q.cmp(q.entries[j].value, q.entries[i].value) >= 0 {
			break
		}
		q.swap(i, j)
		j = i
	}
}

// down moves the slot at index i toward the leaves until neither child
// orders before it. Ties between children keep the left child.
func (q *Queue[K, V]) down(i int) {
	n := len(q.entries)
	for {
		j1 := 2*i + 1
		if j1 >= n {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.cmp(q.entries[j2].value, q.entries[j1].value) < 0 {
			j = j2 // right child
		}
		if q.cmp(q.entries[j].value, q.entries[i].value) >= 0 {
			break
		}
		q.swap(i, j)
		i = j
	}
}
