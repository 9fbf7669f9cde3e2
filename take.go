// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Take returns an iterator yielding at most n elements of it, then
// reporting Nil even if the inner iterator has more. Take(it, 0) never
// pulls the inner iterator at all.
func Take[T any](it Iter[T], n int) Iter[T] {
	return &takeIter[T]{it: it, n: n}
}

type takeIter[T any] struct {
	it Iter[T]
	n  int
}

func (t *takeIter[T]) Next() option.Option[T] {
	if t.n <= 0 {
		return option.Nil[T]()
	}
	t.n--
	return t.it.Next()
}

// TakeWhile returns an iterator yielding elements of it for as long as
// they satisfy the predicate. The first failing element permanently
// ends the sequence; that element has already been consumed from the
// inner iterator and is discarded.
func TakeWhile[T any](it Iter[T], pred func(T) bool) Iter[T] {
	return &takeWhileIter[T]{it: it, pred: pred}
}

type takeWhileIter[T any] struct {
	it   Iter[T]
	pred func(T) bool
	done bool
}

func (t *takeWhileIter[T]) Next() option.Option[T] {
	if t.done {
		return option.Nil[T]()
	}
	nxt := t.it.Next()
	if v, ok := nxt.Get(); ok && t.pred(v) {
		return nxt
	}
	t.done = true
	return option.Nil[T]()
}
