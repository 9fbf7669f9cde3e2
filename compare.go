// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "cmp"

// Equal pulls both iterators pairwise and reports whether they produce
// equal elements and exhaust together. The comparison short-circuits
// at the first unequal pair or lone exhaustion; both iterators are at
// least partially consumed.
func Equal[T comparable](a, b Iter[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is [Equal] under the given equality function.
func EqualFunc[L, R any](a Iter[L], b Iter[R], eq func(L, R) bool) bool {
	for {
		av, aok := a.Next().Get()
		bv, bok := b.Next().Get()
		switch {
		case !aok && !bok:
			return true
		case aok != bok:
			return false
		case !eq(av, bv):
			return false
		}
	}
}

// Compare pulls both iterators pairwise and orders them
// lexicographically, following the [cmp.Compare] convention. The first
// unequal pair decides; a sequence that is a strict prefix of the
// other orders as less.
func Compare[T cmp.Ordered](a, b Iter[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is [Compare] under the given comparison function.
func CompareFunc[L, R any](a Iter[L], b Iter[R], compare func(L, R) int) int {
	for {
		av, aok := a.Next().Get()
		bv, bok := b.Next().Get()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return +1
		}
		if c := compare(av, bv); c != 0 {
			return c
		}
	}
}
