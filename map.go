// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Map returns an iterator that applies fn to each element of it. The
// function is invoked lazily, one element per pull.
func Map[T, U any](it Iter[T], fn func(T) U) Iter[U] {
	return &mapIter[T, U]{it: it, fn: fn}
}

type mapIter[T, U any] struct {
	it Iter[T]
	fn func(T) U
}

func (m *mapIter[T, U]) Next() option.Option[U] {
	return option.Map(m.it.Next(), m.fn)
}

// MapBack is like [Map] over a double-ended iterator: the returned
// iterator applies fn to elements pulled from either end.
func MapBack[T, U any](it DoubleEnded[T], fn func(T) U) DoubleEnded[U] {
	return &mapBackIter[T, U]{it: it, fn: fn}
}

type mapBackIter[T, U any] struct {
	it DoubleEnded[T]
	fn func(T) U
}

func (m *mapBackIter[T, U]) Next() option.Option[U] {
	return option.Map(m.it.Next(), m.fn)
}

func (m *mapBackIter[T, U]) NextBack() option.Option[U] {
	return option.Map(m.it.NextBack(), m.fn)
}

// MapWhile returns an iterator that applies fn to each element and
// yields the results for as long as fn returns Some. The first Nil
// from fn permanently ends the sequence; the element that produced it
// has already been consumed.
func MapWhile[T, U any](it Iter[T], fn func(T) option.Option[U]) Iter[U] {
	return &mapWhileIter[T, U]{it: it, fn: fn}
}

type mapWhileIter[T, U any] struct {
	it   Iter[T]
	fn   func(T) option.Option[U]
	done bool
}

func (m *mapWhileIter[T, U]) Next() option.Option[U] {
	if m.done {
		return option.Nil[U]()
	}
	v, ok := m.it.Next().Get()
	if !ok {
		m.done = true
		return option.Nil[U]()
	}
	r := m.fn(v)
	if r.IsNil() {
		m.done = true
	}
	return r
}
