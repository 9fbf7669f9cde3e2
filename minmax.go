// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import (
	"cmp"

	"vawter.tech/pull/option"
)

// Min drains the iterator and returns the smallest element. Ties keep
// the first occurrence. An empty sequence yields Nil.
func Min[T cmp.Ordered](it Iter[T]) option.Option[T] {
	return MinBy(it, cmp.Compare[T])
}

// MinBy is [Min] under the given comparison function.
func MinBy[T any](it Iter[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(acc, v T) T {
		if compare(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// MinByKey returns the element whose key is smallest. Ties keep the
// first occurrence.
func MinByKey[T any, K cmp.Ordered](it Iter[T], key func(T) K) option.Option[T] {
	return MinBy(it, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// Max drains the iterator and returns the largest element. Ties keep
// the last occurrence. An empty sequence yields Nil.
func Max[T cmp.Ordered](it Iter[T]) option.Option[T] {
	return MaxBy(it, cmp.Compare[T])
}

// MaxBy is [Max] under the given comparison function.
func MaxBy[T any](it Iter[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(acc, v T) T {
		if compare(v, acc) >= 0 {
			return v
		}
		return acc
	})
}

// MaxByKey returns the element whose key is largest. Ties keep the
// last occurrence.
func MaxByKey[T any, K cmp.Ordered](it Iter[T], key func(T) K) option.Option[T] {
	return MaxBy(it, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}
