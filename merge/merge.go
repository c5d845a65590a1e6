package merge

import (
	"iter"

	"github.com/davidvella/pq/heap"
)

// source is one input cursor: its current head value and the pull function
// that advances it.
type source[E any] struct {
	head E
	next func() (E, bool)
}

// All merges already-sorted sequences into one sorted sequence, ordered by
// cmp with ctx threaded through every comparison. Inputs must themselves be
// sorted under the same ordering; the merge is lazy and pulls one element per
// yield, so it works over sequences that are expensive or unbounded to
// materialize.
//
// Ties between sequences are broken arbitrarily, so the merge groups equal
// elements but does not preserve their cross-sequence order.
func All[E, C any](ctx C, cmp heap.CompareFunc[E, C], seqs ...iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		q := heap.New(ctx, func(ctx C, a, b *source[E]) int {
			return cmp(ctx, a.head, b.head)
		})
		q.Reserve(len(seqs))

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			//nolint:gocritic // one pull per input, released when the merge returns.
			defer stop()
			if head, ok := next(); ok {
				q.PushAssumeCapacity(&source[E]{head: head, next: next})
			}
		}

		for {
			s, ok := q.PopSafe()
			if !ok {
				return
			}
			if !yield(s.head) {
				return
			}
			if head, ok := s.next(); ok {
				s.head = head
				q.PushAssumeCapacity(s)
			}
		}
	}
}

// Collect merges the sequences as All does and returns the result as a
// slice.
func Collect[E, C any](ctx C, cmp heap.CompareFunc[E, C], seqs ...iter.Seq[E]) []E {
	var out []E
	for v := range All(ctx, cmp, seqs...) {
		out = append(out, v)
	}
	return out
}
