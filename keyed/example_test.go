package keyed_test

import (
	"cmp"
	"fmt"

	"github.com/davidvella/pq/keyed"
)

// ExampleQueue demonstrates keyed insertion, reprioritization, and draining
// in priority order.
func ExampleQueue() {
	// Smaller values pop first.
	q := keyed.New[string](func(a, b int) int {
		return cmp.Compare(a, b)
	})

	q.Set("task1", 5)
	q.Set("task2", 3)
	q.Set("task3", 7)

	// Reprioritize an existing key in place.
	q.Set("task3", 1)

	for {
		key, value, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Printf("%s = %d\n", key, value)
	}

	// Output:
	// task3 = 1
	// task2 = 3
	// task1 = 5
}

// ExampleQueue_structValues demonstrates ordering custom types.
func ExampleQueue_structValues() {
	type job struct {
		priority int
		name     string
	}

	q := keyed.New[string](func(a, b job) int {
		return cmp.Compare(a.priority, b.priority)
	})

	q.Set("j1", job{priority: 2, name: "low"})
	q.Set("j2", job{priority: 1, name: "high"})

	for {
		_, j, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Printf("%s (priority %d)\n", j.name, j.priority)
	}

	// Output:
	// high (priority 1)
	// low (priority 2)
}
