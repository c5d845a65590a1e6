// Package heap implements a generic, array-backed priority queue. The queue
// is a binary heap stored in one contiguous growable slice and is ordered by
// a caller-supplied three-way comparison function, with an opaque context
// value threaded through every comparison.
//
// The comparator follows the cmp.Compare sign convention: a negative result
// means the first argument is popped before the second. A min-queue over ints
// is therefore built directly on cmp.Compare, and a max-queue by flipping the
// arguments.
//
// Key features:
//   - O(log n) insertion and removal, O(1) peek
//   - O(n) bulk construction from an existing slice (FromSlice)
//   - Removal by storage index and in-place priority update
//   - Explicit capacity control: Reserve, Grow, Shrink, and AssumeCapacity
//     insertion variants that guarantee no reallocation
//   - Non-consuming iteration in storage order (Iterator, All)
//
// Basic usage:
//
//	// Create a min-queue of ints. The context is unused here.
//	q := heap.New(struct{}{}, func(_ struct{}, a, b int) int {
//	    return cmp.Compare(a, b)
//	})
//
//	q.Push(54)
//	q.PushSlice([]int{12, 7, 23})
//
//	for {
//	    v, ok := q.PopSafe()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v) // 7, 12, 23, 54
//	}
//
// The context enables orderings that depend on external data. For example,
// when the elements are indices into a weights slice, the slice itself is the
// context:
//
//	weights := []int{30, 10, 20}
//	q := heap.New(weights, func(w []int, a, b int) int {
//	    return cmp.Compare(w[a], w[b])
//	})
//	q.PushSlice([]int{0, 1, 2})
//	v, _ := q.Pop() // 1, the index with the smallest weight
//
// Errors and panics follow the distinction between runtime conditions and
// programmer errors. Update on an absent element returns ErrNotFound and
// leaves the queue untouched. Pop on an empty queue, RemoveIndex out of
// range, and Shrink outside [Len, Cap] panic; PopSafe, Peek and Len are the
// non-panicking paths.
//
// A Queue is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization. Iterators observe the
// live queue and are invalidated by any mutation.
package heap
