// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import (
	"slices"

	"golang.org/x/exp/constraints"
	"vawter.tech/pull/option"
)

// The terminal operations in this file are defined purely in terms of
// repeated [Iter.Next] calls, so every conforming iterator inherits
// them. Each one consumes the iterator: after it returns, the iterator
// is exhausted (or partially consumed, for short-circuiting
// operations) and cannot be replayed.

// Number is the set of element types accepted by [Sum] and [Product].
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold repeatedly combines an accumulator with each element, starting
// from init, and returns the final accumulator.
func Fold[T, A any](it Iter[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// TryFold is [Fold] with a fallible combining function. The first
// error short-circuits the fold; the accumulator as of the last
// successful step is returned alongside it.
func TryFold[T, A any](it Iter[T], init A, fn func(acc A, v T) (A, error)) (A, error) {
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc, nil
		}
		next, err := fn(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
}

// Collect drains the iterator into a slice preserving pull order. When
// the iterator is [Sized], the slice is allocated up front.
func Collect[T any](it Iter[T]) []T {
	return AppendTo(it, nil)
}

// AppendTo drains the iterator, appending each element to dst, and
// returns the extended slice.
func AppendTo[T any](it Iter[T], dst []T) []T {
	if s, ok := it.(Sized); ok {
		dst = slices.Grow(dst, s.Len())
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// Count drains the iterator and returns the number of elements it
// produced.
func Count[T any](it Iter[T]) int {
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

// Nth discards n elements and returns the following one, or Nil if the
// iterator is exhausted first. Indexing starts at zero, so Nth(it, 0)
// is equivalent to it.Next().
func Nth[T any](it Iter[T], n int) option.Option[T] {
	discard(it, n)
	return it.Next()
}

// Last drains the iterator and returns its final element, if any.
func Last[T any](it Iter[T]) option.Option[T] {
	last := option.Nil[T]()
	for {
		v := it.Next()
		if v.IsNil() {
			return last
		}
		last = v
	}
}

// ForEach calls fn on every element in pull order.
func ForEach[T any](it Iter[T], fn func(T)) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		fn(v)
	}
}

// TryForEach calls fn on every element in pull order, stopping at and
// returning the first error.
func TryForEach[T any](it Iter[T], fn func(T) error) error {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// Find returns the first element satisfying the predicate, consuming
// elements up to and including the match.
func Find[T any](it Iter[T], pred func(T) bool) option.Option[T] {
	for {
		nxt := it.Next()
		v, ok := nxt.Get()
		if !ok || pred(v) {
			return nxt
		}
	}
}

// FindMap applies fn to each element and returns the first Some
// result.
func FindMap[T, U any](it Iter[T], fn func(T) option.Option[U]) option.Option[U] {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.Nil[U]()
		}
		if r := fn(v); r.IsSome() {
			return r
		}
	}
}

// Position returns the zero-based index of the first element
// satisfying the predicate. The search is short-circuiting.
func Position[T any](it Iter[T], pred func(T) bool) option.Option[int] {
	for i := 0; ; i++ {
		v, ok := it.Next().Get()
		if !ok {
			return option.Nil[int]()
		}
		if pred(v) {
			return option.Some(i)
		}
	}
}

// All reports whether every element satisfies the predicate,
// short-circuiting on the first failure. An empty sequence reports
// true.
func All[T any](it Iter[T], pred func(T) bool) bool {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return true
		}
		if !pred(v) {
			return false
		}
	}
}

// Any reports whether any element satisfies the predicate,
// short-circuiting on the first success. An empty sequence reports
// false.
func Any[T any](it Iter[T], pred func(T) bool) bool {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return false
		}
		if pred(v) {
			return true
		}
	}
}

// Reduce folds the sequence using its own first element as the initial
// accumulator. An empty sequence reduces to Nil.
func Reduce[T any](it Iter[T], fn func(acc, v T) T) option.Option[T] {
	first, ok := it.Next().Get()
	if !ok {
		return option.Nil[T]()
	}
	return option.Some(Fold(it, first, fn))
}

// Partition drains the iterator into two slices: the elements
// satisfying the predicate, then the rest, each preserving pull order.
func Partition[T any](it Iter[T], pred func(T) bool) (yes, no []T) {
	ForEach(it, func(v T) {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	})
	return yes, no
}

// Unzip drains an iterator of pairs into two slices, one of left
// elements and one of right elements. It is the eager inverse of
// [Zip].
func Unzip[L, R any](it Iter[Pair[L, R]]) (lefts []L, rights []R) {
	ForEach(it, func(p Pair[L, R]) {
		lefts = append(lefts, p.Left)
		rights = append(rights, p.Right)
	})
	return lefts, rights
}

// Sum adds all elements together. An empty sequence sums to Nil rather
// than zero, keeping "no elements" distinguishable from "elements
// summing to zero".
func Sum[T Number](it Iter[T]) option.Option[T] {
	return Reduce(it, func(acc, v T) T { return acc + v })
}

// Product multiplies all elements together. An empty sequence yields
// Nil.
func Product[T Number](it Iter[T]) option.Option[T] {
	return Reduce(it, func(acc, v T) T { return acc * v })
}
