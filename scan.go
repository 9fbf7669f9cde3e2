// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Scan returns an iterator that threads mutable state through fn. The
// state starts at seed; fn may update it through the pointer and
// returns the next element to yield, or Nil to permanently end the
// sequence. The state is internal to the combinator and never exposed.
func Scan[T, S, U any](it Iter[T], seed S, fn func(state *S, v T) option.Option[U]) Iter[U] {
	return &scanIter[T, S, U]{it: it, state: seed, fn: fn}
}

type scanIter[T, S, U any] struct {
	it    Iter[T]
	state S
	fn    func(*S, T) option.Option[U]
	done  bool
}

func (s *scanIter[T, S, U]) Next() option.Option[U] {
	if s.done {
		return option.Nil[U]()
	}
	v, ok := s.it.Next().Get()
	if !ok {
		s.done = true
		return option.Nil[U]()
	}
	r := s.fn(&s.state, v)
	if r.IsNil() {
		s.done = true
	}
	return r
}
