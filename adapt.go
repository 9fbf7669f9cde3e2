// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import (
	"iter"

	"vawter.tech/pull/option"
)

// Generator is the set of generator function signatures accepted by
// [FromFunc].
type Generator[T any] interface {
	func() (T, bool) | func() option.Option[T]
}

// FromFunc wraps a bare generator function as an [Iter]. The function
// is called once per [Iter.Next] and signals exhaustion either through
// its boolean result or by returning Nil, depending on its signature.
// The element type cannot be inferred from the constraint, so call
// sites name it explicitly, as in FromFunc[int](fn).
//
// FromFunc does not guard against generators that resume producing
// values after signaling exhaustion; wrap the result in [Fuse] if the
// generator may misbehave.
func FromFunc[T any, G Generator[T]](fn G) Iter[T] {
	// This would be more optimal if:
	// https://github.com/golang/go/issues/59591
	switch t := any(fn).(type) {
	case func() (T, bool):
		return &funcIter[T]{fn: func() option.Option[T] {
			if v, ok := t(); ok {
				return option.Some(v)
			}
			return option.Nil[T]()
		}}
	}
	return &funcIter[T]{fn: any(fn).(func() option.Option[T])}
}

type funcIter[T any] struct {
	fn func() option.Option[T]
}

func (f *funcIter[T]) Next() option.Option[T] {
	return f.fn()
}

// Slice wraps a slice as a [SizedDoubleEnded] iterator over its
// elements in order. The front and back cursors converge; once they
// meet, both ends report Nil. The slice itself is not modified.
func Slice[T any](s []T) SizedDoubleEnded[T] {
	return &sliceIter[T]{s: s, back: len(s)}
}

type sliceIter[T any] struct {
	s           []T
	front, back int // back is exclusive
}

func (s *sliceIter[T]) Next() option.Option[T] {
	if s.front >= s.back {
		return option.Nil[T]()
	}
	v := s.s[s.front]
	s.front++
	return option.Some(v)
}

func (s *sliceIter[T]) NextBack() option.Option[T] {
	if s.front >= s.back {
		return option.Nil[T]()
	}
	s.back--
	return option.Some(s.s[s.back])
}

func (s *sliceIter[T]) Len() int {
	return s.back - s.front
}

func (s *sliceIter[T]) skipAhead(n int) int {
	n = min(n, s.Len())
	s.front += n
	return n
}

// FromSeq wraps a native range-over-func sequence as an [Iter]. The
// sequence is stepped through [iter.Pull]; the underlying coroutine is
// released when the sequence is exhausted. Arbitrary sequences cannot
// be pulled from the back, so only the forward capability is exposed.
func FromSeq[T any](seq iter.Seq[T]) Iter[T] {
	next, stop := iter.Pull(seq)
	return &seqIter[T]{next: next, stop: stop}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *seqIter[T]) Next() option.Option[T] {
	v, ok := s.next()
	if !ok {
		s.stop()
		return option.Nil[T]()
	}
	return option.Some(v)
}

// ToSeq exposes an [Iter] as a native range-over-func sequence,
// allowing a combinator chain to terminate in an ordinary for-range
// loop. Breaking out of the loop simply stops pulling; the iterator
// retains any elements not yet consumed.
func ToSeq[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromOption wraps an Option as a sequence of zero or one elements.
func FromOption[T any](o option.Option[T]) SizedDoubleEnded[T] {
	if v, ok := o.Get(); ok {
		return Slice([]T{v})
	}
	return Slice[T](nil)
}

// Empty returns an exhausted sequence.
func Empty[T any]() SizedDoubleEnded[T] {
	return Slice[T](nil)
}

// Once returns a sequence yielding v exactly once.
func Once[T any](v T) SizedDoubleEnded[T] {
	return Slice([]T{v})
}

// Repeat returns an unbounded sequence yielding v forever. Bound it
// with [Take] or [Zip] before using an eagerly-consuming terminal
// operation.
func Repeat[T any](v T) Iter[T] {
	return &repeatIter[T]{v: v}
}

type repeatIter[T any] struct {
	v T
}

func (r *repeatIter[T]) Next() option.Option[T] {
	return option.Some(r.v)
}
