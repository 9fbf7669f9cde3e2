// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"vawter.tech/pull"
	"vawter.tech/pull/option"
)

// TestFold verifies left-associative accumulation.
func TestFold(t *testing.T) {
	r := require.New(t)

	r.Equal(10, pull.Fold(pull.Range(1, 5), 0, func(acc, v int) int { return acc + v }))
	r.Equal(-1, pull.Fold(pull.Empty[int](), -1, func(acc, v int) int { return acc + v }))
}

// TestTryFold verifies short-circuiting on the first error, returning
// the accumulator as of the last successful step.
func TestTryFold(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	pulled := 0
	inner := pull.Inspect(pull.Slice([]int{1, 2, 3, 4}), func(int) { pulled++ })
	acc, err := pull.TryFold(inner, 0, func(acc, v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return acc + v, nil
	})
	r.ErrorIs(err, boom)
	r.Equal(3, acc) // 1 + 2, before the failing step
	r.Equal(3, pulled)
}

// TestCollect verifies draining into a slice, including the
// preallocation path for sized iterators.
func TestCollect(t *testing.T) {
	r := require.New(t)

	r.Equal([]int{0, 1, 2}, pull.Collect(pull.Range(0, 3)))
	r.Nil(pull.Collect(pull.Empty[string]()))

	dst := []int{9}
	r.Equal([]int{9, 1, 2}, pull.AppendTo(pull.Slice([]int{1, 2}), dst))
}

// TestCount verifies element counting through combinators.
func TestCount(t *testing.T) {
	r := require.New(t)

	r.Equal(5, pull.Count(pull.Range(0, 5)))
	r.Zero(pull.Count(pull.Empty[int]()))
	r.Equal(3, pull.Count(pull.Filter(pull.Range(0, 6), func(v int) bool { return v%2 == 0 })))
}

// TestNth verifies zero-based indexing and exhaustion.
func TestNth(t *testing.T) {
	r := require.New(t)

	r.Equal(option.Some(1), pull.Nth(pull.Slice([]int{1, 2, 3}), 0))
	r.Equal(option.Some(3), pull.Nth(pull.Slice([]int{1, 2, 3}), 2))
	r.Equal(option.Nil[int](), pull.Nth(pull.Slice([]int{1, 2, 3}), 3))
}

// TestLast verifies full drain to the final element.
func TestLast(t *testing.T) {
	r := require.New(t)

	r.Equal(option.Some(4), pull.Last(pull.Range(0, 5)))
	r.Equal(option.Nil[int](), pull.Last(pull.Empty[int]()))
}

// TestForEach verifies visiting every element in order.
func TestForEach(t *testing.T) {
	r := require.New(t)

	var got []int
	pull.ForEach(pull.Range(0, 3), func(v int) { got = append(got, v) })
	r.Equal([]int{0, 1, 2}, got)
}

// TestTryForEach verifies stopping at the first error.
func TestTryForEach(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	var got []int
	err := pull.TryForEach(pull.Range(0, 10), func(v int) error {
		if v == 3 {
			return boom
		}
		got = append(got, v)
		return nil
	})
	r.ErrorIs(err, boom)
	r.Equal([]int{0, 1, 2}, got)

	r.NoError(pull.TryForEach(pull.Empty[int](), func(int) error { return boom }))
}

// TestFind verifies that the search consumes up to and including the
// match, leaving the rest of the sequence intact.
func TestFind(t *testing.T) {
	r := require.New(t)

	it := pull.Slice([]int{1, 2, 3, 4})
	r.Equal(option.Some(2), pull.Find(it, func(v int) bool { return v%2 == 0 }))
	r.Equal(option.Some(3), it.Next())

	r.Equal(option.Nil[int](), pull.Find(pull.Range(0, 5), func(v int) bool { return v > 10 }))
}

// TestFindMap verifies returning the first successful mapping.
func TestFindMap(t *testing.T) {
	r := require.New(t)

	got := pull.FindMap(pull.Slice([]int{1, 2, 3}), func(v int) option.Option[string] {
		if v%2 == 0 {
			return option.Some("even")
		}
		return option.Nil[string]()
	})
	r.Equal(option.Some("even"), got)
}

// TestPosition verifies index search and short-circuiting.
func TestPosition(t *testing.T) {
	r := require.New(t)

	it := pull.Slice([]int{10, 20, 30, 40})
	r.Equal(option.Some(2), pull.Position(it, func(v int) bool { return v == 30 }))
	r.Equal(option.Some(40), it.Next())

	r.Equal(option.Nil[int](), pull.Position(pull.Empty[int](), func(int) bool { return true }))
}

// TestAllAny verifies the quantifiers, including their vacuous empty
// cases and short-circuiting.
func TestAllAny(t *testing.T) {
	r := require.New(t)

	r.True(pull.All(pull.Range(0, 5), func(v int) bool { return v < 5 }))
	r.False(pull.All(pull.Range(0, 5), func(v int) bool { return v < 3 }))
	r.True(pull.All(pull.Empty[int](), func(int) bool { return false }))

	r.True(pull.Any(pull.Range(0, 5), func(v int) bool { return v == 3 }))
	r.False(pull.Any(pull.Range(0, 5), func(v int) bool { return v > 10 }))
	r.False(pull.Any(pull.Empty[int](), func(int) bool { return true }))

	// Short-circuit: nothing past the deciding element is pulled.
	it := pull.Slice([]int{1, 2, 3})
	r.True(pull.Any(it, func(v int) bool { return v == 1 }))
	r.Equal(option.Some(2), it.Next())
}

// TestReduce verifies folding with the first element as seed.
func TestReduce(t *testing.T) {
	r := require.New(t)

	r.Equal(option.Some(10), pull.Reduce(pull.Range(1, 5), func(acc, v int) int {
		return acc + v
	}))
	r.Equal(option.Nil[int](), pull.Reduce(pull.Empty[int](), func(acc, v int) int {
		return acc + v
	}))
}

// TestPartition verifies the two-way split preserving pull order.
func TestPartition(t *testing.T) {
	r := require.New(t)

	even, odd := pull.Partition(pull.Range(0, 6), func(v int) bool { return v%2 == 0 })
	r.Equal([]int{0, 2, 4}, even)
	r.Equal([]int{1, 3, 5}, odd)
}

// TestUnzip verifies splitting pairs back into two slices.
func TestUnzip(t *testing.T) {
	r := require.New(t)

	pairs := pull.Zip(pull.Slice([]int{1, 2, 3}), pull.Slice([]string{"a", "b", "c"}))
	nums, strs := pull.Unzip(pairs)
	r.Equal([]int{1, 2, 3}, nums)
	r.Equal([]string{"a", "b", "c"}, strs)
}

// TestSumProduct verifies the arithmetic reductions, whose empty case
// is Nil rather than an identity element.
func TestSumProduct(t *testing.T) {
	r := require.New(t)

	r.Equal(option.Some(10), pull.Sum(pull.Range(1, 5)))
	r.Equal(option.Some(24), pull.Product(pull.Range(1, 5)))
	r.Equal(option.Some(1.5), pull.Sum(pull.Slice([]float64{0.5, 1.0})))

	r.Equal(option.Nil[int](), pull.Sum(pull.Empty[int]()))
	r.Equal(option.Nil[int](), pull.Product(pull.Empty[int]()))
}

// TestPipeline verifies a representative composed pipeline end to end.
func TestPipeline(t *testing.T) {
	r := require.New(t)

	it := pull.Filter(
		pull.Map(pull.Range(0, 5), func(v int) int { return v*v + 1 }),
		func(v int) bool { return v%2 == 1 },
	)
	r.Empty(cmp.Diff([]int{1, 5, 17}, pull.Collect(it)))
}
