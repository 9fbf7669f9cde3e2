// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"vawter.tech/pull/option"
)

// Range returns the arithmetic progression start, start+1, ... up to
// but excluding end.
func Range[T constraints.Signed](start, end T) *Span[T] {
	return RangeStep(start, end, 1)
}

// RangeStep returns the arithmetic progression start, start+step, ...
// up to but excluding end. The step may be negative for a descending
// progression. RangeStep panics if step is zero; the failure is
// immediate, not deferred to the first pull.
func RangeStep[T constraints.Signed](start, end, step T) *Span[T] {
	if step == 0 {
		panic("pull: RangeStep requires a nonzero step")
	}
	return &Span[T]{
		front: start,
		back:  computeBack(start, end, step),
		step:  step,
	}
}

// computeBack returns the last value of the progression, aligning the
// exclusive end to the step grid.
func computeBack[T constraints.Signed](start, end, step T) T {
	if rem := (end - start) % step; rem != 0 {
		return end - rem
	}
	return end - step
}

// Span is a finite arithmetic progression of integers. It is
// [SizedDoubleEnded]: both boundaries are computed arithmetically, so
// stepping from either end, reporting the remaining count, and
// skipping ahead are all O(1). A Span holds no reference to anything
// else and can be re-created cheaply for re-iteration.
type Span[T constraints.Signed] struct {
	front, back, step T // back is inclusive
}

// Next implements [Iter].
func (s *Span[T]) Next() option.Option[T] {
	if s.empty() {
		return option.Nil[T]()
	}
	v := s.front
	s.front += s.step
	return option.Some(v)
}

// NextBack implements [DoubleEnded].
func (s *Span[T]) NextBack() option.Option[T] {
	if s.empty() {
		return option.Nil[T]()
	}
	v := s.back
	s.back -= s.step
	return option.Some(v)
}

// Len implements [Sized].
func (s *Span[T]) Len() int {
	if s.empty() {
		return 0
	}
	return int((s.back + s.step - s.front) / s.step)
}

func (s *Span[T]) empty() bool {
	if s.step > 0 {
		return s.back < s.front
	}
	return s.back > s.front
}

func (s *Span[T]) skipAhead(n int) int {
	n = min(n, s.Len())
	s.front += T(n) * s.step
	return n
}

// String implements [fmt.Stringer].
func (s *Span[T]) String() string {
	return fmt.Sprintf("Span(start=%v, end=%v, step=%v)", s.front, s.back+s.step, s.step)
}

// RangeFrom returns the unbounded arithmetic progression start,
// start+step, start+2*step, and so on. The result is forward-only:
// an unbounded progression has no back to pull from, so combinators
// requiring the [DoubleEnded] or [Sized] capabilities will not accept
// it. RangeFrom panics if step is zero.
func RangeFrom[T constraints.Signed](start, step T) *OpenSpan[T] {
	if step == 0 {
		panic("pull: RangeFrom requires a nonzero step")
	}
	return &OpenSpan[T]{front: start, step: step}
}

// OpenSpan is an unbounded arithmetic progression of integers. Bound
// it with [Take], [TakeWhile], or [Zip] before using an
// eagerly-consuming terminal operation.
type OpenSpan[T constraints.Signed] struct {
	front, step T
}

// Next implements [Iter].
func (s *OpenSpan[T]) Next() option.Option[T] {
	v := s.front
	s.front += s.step
	return option.Some(v)
}

func (s *OpenSpan[T]) skipAhead(n int) int {
	s.front += T(n) * s.step
	return n
}

// String implements [fmt.Stringer].
func (s *OpenSpan[T]) String() string {
	return fmt.Sprintf("OpenSpan(start=%v, step=%v)", s.front, s.step)
}
