// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Filter returns an iterator yielding only the elements of it that
// satisfy the predicate. A single pull on the result may pull
// arbitrarily many elements from the inner iterator before one
// satisfies the predicate or the inner iterator is exhausted.
func Filter[T any](it Iter[T], pred func(T) bool) Iter[T] {
	return &filterIter[T]{it: it, pred: pred}
}

type filterIter[T any] struct {
	it   Iter[T]
	pred func(T) bool
}

func (f *filterIter[T]) Next() option.Option[T] {
	for {
		nxt := f.it.Next()
		v, ok := nxt.Get()
		if !ok || f.pred(v) {
			return nxt
		}
	}
}

// FilterBack is like [Filter] over a double-ended iterator: elements
// failing the predicate are discarded from whichever end is being
// pulled. The remaining length of a filtered sequence is unknowable,
// so the result is not [Sized].
func FilterBack[T any](it DoubleEnded[T], pred func(T) bool) DoubleEnded[T] {
	return &filterBackIter[T]{it: it, pred: pred}
}

type filterBackIter[T any] struct {
	it   DoubleEnded[T]
	pred func(T) bool
}

func (f *filterBackIter[T]) Next() option.Option[T] {
	for {
		nxt := f.it.Next()
		v, ok := nxt.Get()
		if !ok || f.pred(v) {
			return nxt
		}
	}
}

func (f *filterBackIter[T]) NextBack() option.Option[T] {
	for {
		nxt := f.it.NextBack()
		v, ok := nxt.Get()
		if !ok || f.pred(v) {
			return nxt
		}
	}
}

// FilterMap returns an iterator that both filters and maps: fn is
// applied to each inner element, and only Some results are yielded.
func FilterMap[T, U any](it Iter[T], fn func(T) option.Option[U]) Iter[U] {
	return &filterMapIter[T, U]{it: it, fn: fn}
}

type filterMapIter[T, U any] struct {
	it Iter[T]
	fn func(T) option.Option[U]
}

func (f *filterMapIter[T, U]) Next() option.Option[U] {
	for {
		v, ok := f.it.Next().Get()
		if !ok {
			return option.Nil[U]()
		}
		if r := f.fn(v); r.IsSome() {
			return r
		}
	}
}

// FilterMapBack is like [FilterMap] over a double-ended iterator.
func FilterMapBack[T, U any](it DoubleEnded[T], fn func(T) option.Option[U]) DoubleEnded[U] {
	return &filterMapBackIter[T, U]{it: it, fn: fn}
}

type filterMapBackIter[T, U any] struct {
	it DoubleEnded[T]
	fn func(T) option.Option[U]
}

func (f *filterMapBackIter[T, U]) Next() option.Option[U] {
	for {
		v, ok := f.it.Next().Get()
		if !ok {
			return option.Nil[U]()
		}
		if r := f.fn(v); r.IsSome() {
			return r
		}
	}
}

func (f *filterMapBackIter[T, U]) NextBack() option.Option[U] {
	for {
		v, ok := f.it.NextBack().Get()
		if !ok {
			return option.Nil[U]()
		}
		if r := f.fn(v); r.IsSome() {
			return r
		}
	}
}
