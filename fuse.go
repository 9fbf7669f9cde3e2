// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Fuse returns an iterator that reports Nil forever after the first
// Nil from the inner iterator, guarding against generators that
// resume producing values after signaling exhaustion.
func Fuse[T any](it Iter[T]) Iter[T] {
	return &fuseIter[T]{it: it}
}

type fuseIter[T any] struct {
	it   Iter[T]
	done bool
}

func (f *fuseIter[T]) Next() option.Option[T] {
	if f.done {
		return option.Nil[T]()
	}
	nxt := f.it.Next()
	if nxt.IsNil() {
		f.done = true
	}
	return nxt
}

// FuseBack is like [Fuse] over a double-ended iterator. A Nil observed
// on either end fuses both ends.
func FuseBack[T any](it DoubleEnded[T]) DoubleEnded[T] {
	return &fuseBackIter[T]{it: it}
}

type fuseBackIter[T any] struct {
	it   DoubleEnded[T]
	done bool
}

func (f *fuseBackIter[T]) Next() option.Option[T] {
	if f.done {
		return option.Nil[T]()
	}
	nxt := f.it.Next()
	if nxt.IsNil() {
		f.done = true
	}
	return nxt
}

func (f *fuseBackIter[T]) NextBack() option.Option[T] {
	if f.done {
		return option.Nil[T]()
	}
	nxt := f.it.NextBack()
	if nxt.IsNil() {
		f.done = true
	}
	return nxt
}
