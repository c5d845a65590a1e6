package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/davidvella/pq/heap"
)

var (
	// MagicBytes identify valid snapshot streams (PQS).
	MagicBytes = []byte{0x50, 0x51, 0x53}

	ErrInvalidMagicBytes = errors.New("snapshot: invalid magic bytes - not a valid snapshot stream")
)

// EncodeFunc writes one element to w.
type EncodeFunc[T any] func(w io.Writer, v T) error

// DecodeFunc reads one element from r.
type DecodeFunc[T any] func(r io.Reader) (T, error)

// Write serializes the queue's elements to w: magic bytes, a little-endian
// element count, then each element through encode in storage order. The
// queue is not modified.
func Write[T, C any](w io.Writer, q *heap.Queue[T, C], encode EncodeFunc[T]) error {
	if _, err := w.Write(MagicBytes); err != nil {
		return fmt.Errorf("snapshot: error writing magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(q.Len())); err != nil {
		return fmt.Errorf("snapshot: error writing element count: %w", err)
	}
	for v := range q.All() {
		if err := encode(w, v); err != nil {
			return fmt.Errorf("snapshot: error encoding element: %w", err)
		}
	}
	return nil
}

// Read deserializes a stream produced by Write and rebuilds a queue over ctx
// and cmp. The elements are read into one slice and heapified in O(n); the
// rebuilt queue's capacity equals its length.
func Read[T, C any](r io.Reader, ctx C, cmp heap.CompareFunc[T, C], decode DecodeFunc[T]) (*heap.Queue[T, C], error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("snapshot: error reading magic bytes: %w", err)
	}
	if !bytes.Equal(magic, MagicBytes) {
		return nil, ErrInvalidMagicBytes
	}

	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("snapshot: error reading element count: %w", err)
	}

	items := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("snapshot: error decoding element %d: %w", i, err)
		}
		items = append(items, v)
	}
	return heap.FromSlice(items, ctx, cmp), nil
}

// Int64 is a ready-made codec for int64 elements.
var Int64 = Codec[int64]{
	Encode: func(w io.Writer, v int64) error {
		return binary.Write(w, binary.LittleEndian, v)
	},
	Decode: func(r io.Reader) (int64, error) {
		var v int64
		err := binary.Read(r, binary.LittleEndian, &v)
		return v, err
	},
}

// String is a ready-made codec for string elements, stored length-prefixed.
var String = Codec[string]{
	Encode: func(w io.Writer, v string) error {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
			return err
		}
		_, err := w.Write([]byte(v))
		return err
	},
	Decode: func(r io.Reader) (string, error) {
		var n uint64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return "", err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		return string(buf), nil
	},
}

// Codec bundles the encode and decode halves for one element type.
type Codec[T any] struct {
	Encode EncodeFunc[T]
	Decode DecodeFunc[T]
}
