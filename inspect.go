// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Inspect returns an iterator that calls fn on each pulled element and
// passes the element through unchanged. The side effect follows pull
// order.
func Inspect[T any](it Iter[T], fn func(T)) Iter[T] {
	return &inspectIter[T]{it: it, fn: fn}
}

type inspectIter[T any] struct {
	it Iter[T]
	fn func(T)
}

func (i *inspectIter[T]) Next() option.Option[T] {
	nxt := i.it.Next()
	if v, ok := nxt.Get(); ok {
		i.fn(v)
	}
	return nxt
}

// InspectBack is like [Inspect] over a double-ended iterator: the side
// effect follows pull order on both ends.
func InspectBack[T any](it DoubleEnded[T], fn func(T)) DoubleEnded[T] {
	return &inspectBackIter[T]{it: it, fn: fn}
}

type inspectBackIter[T any] struct {
	it DoubleEnded[T]
	fn func(T)
}

func (i *inspectBackIter[T]) Next() option.Option[T] {
	nxt := i.it.Next()
	if v, ok := nxt.Get(); ok {
		i.fn(v)
	}
	return nxt
}

func (i *inspectBackIter[T]) NextBack() option.Option[T] {
	nxt := i.it.NextBack()
	if v, ok := nxt.Get(); ok {
		i.fn(v)
	}
	return nxt
}
