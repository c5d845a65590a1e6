// Package keyed implements a priority queue addressable by key. It maintains
// a binary heap alongside a map from key to heap position, so values can be
// looked up, reprioritized, and removed by key without scanning.
//
// The ordering is a three-way comparison over values following the
// cmp.Compare sign convention: a negative result means the first value is
// popped before the second.
//
// Key features:
//   - O(log n) insertion, removal, and reprioritization
//   - O(1) peek and key lookup
//   - Each key held at most once; Set on an existing key updates it in place
//
// Basic usage:
//
//	// Smaller values pop first.
//	q := keyed.New[string](func(a, b int) int {
//	    return cmp.Compare(a, b)
//	})
//
//	q.Set("task1", 5)
//	q.Set("task2", 3)
//	q.Set("task1", 1) // reprioritize in place
//
//	for {
//	    key, value, ok := q.Pop()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%s = %d\n", key, value)
//	}
//
// Unlike the array-backed queue in the heap package, a keyed queue carries a
// secondary index and allocates one entry per key; use it when keyed access
// matters more than raw insertion throughput.
//
// A Queue is not safe for concurrent use.
package keyed
