package delay_test

import (
	"testing"
	"time"

	"github.com/davidvella/pq/delay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestPopDueOrder(t *testing.T) {
	q := delay.New[string]()
	q.Add("third", base.Add(3*time.Second))
	q.Add("first", base.Add(1*time.Second))
	q.Add("second", base.Add(2*time.Second))

	// Nothing is due at the base instant.
	_, ok := q.PopDue(base)
	assert.False(t, ok)
	assert.Equal(t, 3, q.Len())

	// Advancing past every due time releases items earliest-first.
	now := base.Add(5 * time.Second)
	var got []string
	for {
		v, ok := q.PopDue(now)
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestPopDueBoundary(t *testing.T) {
	q := delay.New[int]()
	due := base.Add(time.Second)
	q.Add(1, due)

	_, ok := q.PopDue(due.Add(-time.Nanosecond))
	assert.False(t, ok, "not due yet")

	v, ok := q.PopDue(due)
	require.True(t, ok, "due exactly now")
	assert.Equal(t, 1, v)
}

func TestNext(t *testing.T) {
	q := delay.New[string]()

	_, _, ok := q.Next()
	assert.False(t, ok)

	q.Add("a", base.Add(2*time.Second))
	q.Add("b", base.Add(1*time.Second))

	v, at, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, base.Add(1*time.Second), at)
	assert.Equal(t, 2, q.Len(), "next must not remove")
}

func TestUntil(t *testing.T) {
	q := delay.New[int]()

	_, ok := q.Until(base)
	assert.False(t, ok)

	q.Add(1, base.Add(3*time.Second))

	d, ok := q.Until(base)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	d, ok = q.Until(base.Add(10*time.Second))
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), d, "overdue items report zero wait")
}

func TestEmptyAfterDrain(t *testing.T) {
	q := delay.New[int]()
	q.Add(1, base)

	_, ok := q.PopDue(base)
	require.True(t, ok)

	_, ok = q.PopDue(base.Add(time.Hour))
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}
