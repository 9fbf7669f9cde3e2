// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Enumerate returns an iterator pairing each element with its
// zero-based running index.
func Enumerate[T any](it Iter[T]) Iter[Indexed[T]] {
	return &enumIter[T]{it: it}
}

type enumIter[T any] struct {
	it  Iter[T]
	idx int
}

func (e *enumIter[T]) Next() option.Option[Indexed[T]] {
	v, ok := e.it.Next().Get()
	if !ok {
		return option.Nil[Indexed[T]]()
	}
	i := e.idx
	e.idx++
	return option.Some(Indexed[T]{Index: i, Value: v})
}

// EnumerateBack is like [Enumerate] over a sized double-ended
// iterator. The known length lets a back pull compute the index of the
// final element without consuming the front: the element k positions
// from the back has index front + remaining - 1 - k.
func EnumerateBack[T any](it SizedDoubleEnded[T]) SizedDoubleEnded[Indexed[T]] {
	return &enumBackIter[T]{it: it}
}

type enumBackIter[T any] struct {
	it    SizedDoubleEnded[T]
	front int
}

func (e *enumBackIter[T]) Next() option.Option[Indexed[T]] {
	v, ok := e.it.Next().Get()
	if !ok {
		return option.Nil[Indexed[T]]()
	}
	i := e.front
	e.front++
	return option.Some(Indexed[T]{Index: i, Value: v})
}

func (e *enumBackIter[T]) NextBack() option.Option[Indexed[T]] {
	n := e.it.Len()
	v, ok := e.it.NextBack().Get()
	if !ok {
		return option.Nil[Indexed[T]]()
	}
	return option.Some(Indexed[T]{Index: e.front + n - 1, Value: v})
}

func (e *enumBackIter[T]) Len() int {
	return e.it.Len()
}
