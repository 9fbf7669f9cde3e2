// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import (
	"fmt"

	"vawter.tech/pull/option"
)

// fastSkipper is implemented by iterators that can discard elements
// from the front in O(1), such as [Span] and the slice adapter. It
// reports how many elements were actually discarded.
type fastSkipper interface {
	skipAhead(n int) int
}

// discard drops up to n elements from the front of it, using the O(1)
// path when available.
func discard[T any](it Iter[T], n int) {
	if f, ok := it.(fastSkipper); ok {
		f.skipAhead(n)
		return
	}
	for range n {
		if it.Next().IsNil() {
			return
		}
	}
}

// Skip returns an iterator that discards the first n elements of it,
// then yields the rest. The discard happens once, on the first pull.
func Skip[T any](it Iter[T], n int) Iter[T] {
	return &skipIter[T]{it: it, n: n}
}

type skipIter[T any] struct {
	it Iter[T]
	n  int
}

func (s *skipIter[T]) Next() option.Option[T] {
	if s.n > 0 {
		discard(s.it, s.n)
		s.n = 0
	}
	return s.it.Next()
}

// SkipWhile returns an iterator that discards elements of it while
// they satisfy the predicate. The first failing element is yielded,
// and the predicate is never consulted again.
func SkipWhile[T any](it Iter[T], pred func(T) bool) Iter[T] {
	return &skipWhileIter[T]{it: it, pred: pred, skipping: true}
}

type skipWhileIter[T any] struct {
	it       Iter[T]
	pred     func(T) bool
	skipping bool
}

func (s *skipWhileIter[T]) Next() option.Option[T] {
	if !s.skipping {
		return s.it.Next()
	}
	for {
		nxt := s.it.Next()
		v, ok := nxt.Get()
		if !ok || !s.pred(v) {
			s.skipping = false
			return nxt
		}
	}
}

// StepBy returns an iterator yielding every step-th element of it,
// starting with the first. StepBy panics if step is less than one; the
// failure is immediate, not deferred to the first pull.
func StepBy[T any](it Iter[T], step int) Iter[T] {
	if step < 1 {
		panic(fmt.Sprintf("pull: StepBy requires step >= 1, got %d", step))
	}
	return &stepByIter[T]{it: it, step: step}
}

type stepByIter[T any] struct {
	it      Iter[T]
	step    int
	started bool
}

func (s *stepByIter[T]) Next() option.Option[T] {
	if !s.started {
		s.started = true
		return s.it.Next()
	}
	discard(s.it, s.step-1)
	return s.it.Next()
}
