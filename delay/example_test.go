package delay_test

import (
	"fmt"
	"time"

	"github.com/davidvella/pq/delay"
)

// ExampleQueue demonstrates releasing items in due-time order with an
// explicit clock.
func ExampleQueue() {
	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	q := delay.New[string]()
	q.Add("send report", start.Add(2*time.Minute))
	q.Add("flush cache", start.Add(1*time.Minute))
	q.Add("rotate logs", start.Add(3*time.Minute))

	now := start.Add(2 * time.Minute)
	for {
		task, ok := q.PopDue(now)
		if !ok {
			break
		}
		fmt.Println(task)
	}

	fmt.Println("still held:", q.Len())

	// Output:
	// flush cache
	// send report
	// still held: 1
}
