// Package merge implements a lazy k-way merge of sorted sequences. It keeps
// one cursor per input in a priority queue and repeatedly yields the smallest
// head, so merging k sequences of n total elements costs O(n log k) and holds
// only k elements in memory at a time.
//
// The ordering is the same three-way comparison with threaded context used
// throughout this module; see the heap package.
//
// Basic usage:
//
//	a := slices.Values([]int{1, 4, 7})
//	b := slices.Values([]int{2, 5, 8})
//	c := slices.Values([]int{3, 6, 9})
//
//	for v := range merge.All(struct{}{}, func(_ struct{}, x, y int) int {
//	    return cmp.Compare(x, y)
//	}, a, b, c) {
//	    fmt.Println(v) // 1 through 9 in order
//	}
//
// Inputs must already be sorted under the supplied ordering; the merge does
// not verify this.
package merge
