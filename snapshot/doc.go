// Package snapshot serializes the contents of a priority queue to a binary
// stream and rebuilds the queue from one. The format is little-endian and
// length-prefixed: three magic bytes, a uint64 element count, then each
// element written by a caller-supplied codec in storage order.
//
// Because storage order is a valid heap layout only for the ordering it was
// built under, Read does not trust it: the elements are re-heapified in
// O(n) against the comparator the caller supplies, so a snapshot can be
// reloaded under a different ordering than the one it was written with.
//
// Basic usage:
//
//	var buf bytes.Buffer
//	if err := snapshot.Write(&buf, q, snapshot.Int64.Encode); err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := snapshot.Read(&buf, struct{}{}, compare, snapshot.Int64.Decode)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Streams that do not begin with the magic bytes fail with
// ErrInvalidMagicBytes; truncated or short streams surface the underlying
// read error wrapped with context.
package snapshot
