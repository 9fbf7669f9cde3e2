// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Rev returns an iterator that swaps the two ends of it: forward pulls
// come from the back and back pulls from the front. The inner iterator
// must already be double-ended, which makes the requirement a
// compile-time constraint.
func Rev[T any](it DoubleEnded[T]) DoubleEnded[T] {
	return &revIter[T]{it: it}
}

type revIter[T any] struct {
	it DoubleEnded[T]
}

func (r *revIter[T]) Next() option.Option[T] {
	return r.it.NextBack()
}

func (r *revIter[T]) NextBack() option.Option[T] {
	return r.it.Next()
}

// RevSized is [Rev] for sized iterators, preserving the length
// capability.
func RevSized[T any](it SizedDoubleEnded[T]) SizedDoubleEnded[T] {
	return &revSizedIter[T]{it: it}
}

type revSizedIter[T any] struct {
	it SizedDoubleEnded[T]
}

func (r *revSizedIter[T]) Next() option.Option[T] {
	return r.it.NextBack()
}

func (r *revSizedIter[T]) NextBack() option.Option[T] {
	return r.it.Next()
}

func (r *revSizedIter[T]) Len() int {
	return r.it.Len()
}

// RFold is [Fold] taking elements from the back: it is
// right-associative where Fold is left-associative.
func RFold[T, A any](it DoubleEnded[T], init A, fn func(acc A, v T) A) A {
	return Fold(Rev(it), init, fn)
}

// TryRFold is [TryFold] taking elements from the back.
func TryRFold[T, A any](it DoubleEnded[T], init A, fn func(acc A, v T) (A, error)) (A, error) {
	return TryFold(Rev(it), init, fn)
}

// RFind searches from the back for the first element satisfying the
// predicate, consuming elements up to and including the match.
func RFind[T any](it DoubleEnded[T], pred func(T) bool) option.Option[T] {
	return Find(Rev(it), pred)
}

// NthBack discards n elements from the back and returns the following
// one, or Nil if the sequence is exhausted first.
func NthBack[T any](it DoubleEnded[T], n int) option.Option[T] {
	return Nth(Rev(it), n)
}

// RPosition searches from the back for an element satisfying the
// predicate and returns its forward index. The search is
// short-circuiting. A known length is required to translate the
// back offset into a forward index.
func RPosition[T any](it SizedDoubleEnded[T], pred func(T) bool) option.Option[int] {
	n := it.Len()
	return option.Map(Position(Rev(it), pred), func(i int) int {
		return n - i - 1
	})
}
