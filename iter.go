// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Iter is the pull-based sequence protocol. Calling [Iter.Next] either
// returns the next element wrapped in Some and advances the sequence
// by one, or returns Nil once the sequence is exhausted.
//
// An Iter is exclusively owned: each combinator owns the iterator(s)
// it wraps, and no stage is shared between chains. None of the types
// in this package are safe for concurrent use.
type Iter[T any] interface {
	// Next returns the next element, or Nil when the sequence is
	// exhausted.
	Next() option.Option[T]
}

// DoubleEnded is an [Iter] that can additionally be pulled from the
// back. The front and back cursors converge: once they meet, both
// [Iter.Next] and [DoubleEnded.NextBack] return Nil, and no element is
// ever produced twice.
type DoubleEnded[T any] interface {
	Iter[T]

	// NextBack returns the next element from the back, or Nil when
	// the sequence is exhausted.
	NextBack() option.Option[T]
}

// Sized is implemented by iterators that know exactly how many
// elements remain. The count shrinks as elements are pulled from
// either end.
type Sized interface {
	// Len returns the exact number of remaining elements.
	Len() int
}

// SizedDoubleEnded combines [DoubleEnded] and [Sized]. Combinators
// whose back-pulling behavior depends on a known length, such as
// [EnumerateBack] and [ZipBack], require this capability at
// construction time.
type SizedDoubleEnded[T any] interface {
	DoubleEnded[T]
	Sized
}

// Pair is the element type produced by [Zip]. It is an alias for
// [option.Pair] so that zipped options and zipped sequences share one
// type.
type Pair[L, R any] = option.Pair[L, R]

// Indexed is the element type produced by [Enumerate]: a value paired
// with its zero-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}
