package heap_test

import (
	"cmp"
	"fmt"

	"github.com/davidvella/pq/heap"
)

// ExampleQueue_minQueue demonstrates a minimum-first queue over ints.
func ExampleQueue_minQueue() {
	q := heap.New(struct{}{}, func(_ struct{}, a, b int) int {
		return cmp.Compare(a, b)
	})

	q.PushSlice([]int{54, 12, 7, 23, 25, 13})

	for {
		v, ok := q.PopSafe()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 7
	// 12
	// 13
	// 23
	// 25
	// 54
}

// ExampleQueue_context demonstrates an ordering that depends on external
// data: the elements are indices into a weights slice carried as the
// comparison context.
func ExampleQueue_context() {
	weights := []int{30, 10, 20}

	q := heap.New(weights, func(w []int, a, b int) int {
		return cmp.Compare(w[a], w[b])
	})
	q.PushSlice([]int{0, 1, 2})

	for {
		i, ok := q.PopSafe()
		if !ok {
			break
		}
		fmt.Printf("index %d (weight %d)\n", i, weights[i])
	}

	// Output:
	// index 1 (weight 10)
	// index 2 (weight 20)
	// index 0 (weight 30)
}

// ExampleFromSlice demonstrates O(n) bulk construction from an existing
// slice, which the queue takes ownership of.
func ExampleFromSlice() {
	q := heap.FromSlice([]int{9, 4, 7, 1}, struct{}{}, func(_ struct{}, a, b int) int {
		return cmp.Compare(a, b)
	})

	v, _ := q.Peek()
	fmt.Println(v)

	// Output:
	// 1
}

// ExampleQueue_Update demonstrates reprioritizing an element in place.
func ExampleQueue_Update() {
	q := heap.New(struct{}{}, func(_ struct{}, a, b int) int {
		return cmp.Compare(a, b)
	})
	q.PushSlice([]int{55, 44, 11})

	if err := q.Update(55, 5); err != nil {
		fmt.Println(err)
	}

	v, _ := q.Peek()
	fmt.Println(v)

	// Output:
	// 5
}
