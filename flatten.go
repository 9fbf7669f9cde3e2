// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Flatten returns an iterator that drains each inner iterator in turn.
// Empty inner iterators are transparently skipped; the next outer
// element is not pulled until the current inner iterator is exhausted.
func Flatten[T any](it Iter[Iter[T]]) Iter[T] {
	return &flattenIter[T]{outer: it}
}

type flattenIter[T any] struct {
	outer Iter[Iter[T]]
	inner Iter[T]
}

func (f *flattenIter[T]) Next() option.Option[T] {
	for {
		if f.inner != nil {
			if v := f.inner.Next(); v.IsSome() {
				return v
			}
			f.inner = nil
		}
		inner, ok := f.outer.Next().Get()
		if !ok {
			return option.Nil[T]()
		}
		f.inner = inner
	}
}

// FlatMap maps each element of it to an iterator with fn and flattens
// the result.
func FlatMap[T, U any](it Iter[T], fn func(T) Iter[U]) Iter[U] {
	return Flatten(Map(it, fn))
}

// FlatMapSlice is a convenience form of [FlatMap] for functions that
// produce slices.
func FlatMapSlice[T, U any](it Iter[T], fn func(T) []U) Iter[U] {
	return FlatMap(it, func(v T) Iter[U] {
		return Slice(fn(v))
	})
}
