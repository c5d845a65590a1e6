package snapshot_test

import (
	"bytes"
	"cmp"
	"fmt"
	"log"

	"github.com/davidvella/pq/heap"
	"github.com/davidvella/pq/snapshot"
)

// Example demonstrates saving a queue to a buffer and restoring it.
func Example() {
	compare := func(_ struct{}, a, b int64) int {
		return cmp.Compare(a, b)
	}

	q := heap.New(struct{}{}, compare)
	q.PushSlice([]int64{30, 10, 20})

	var buf bytes.Buffer
	if err := snapshot.Write(&buf, q, snapshot.Int64.Encode); err != nil {
		log.Fatal(err)
	}

	restored, err := snapshot.Read(&buf, struct{}{}, compare, snapshot.Int64.Decode)
	if err != nil {
		log.Fatal(err)
	}

	for {
		v, ok := restored.PopSafe()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}
