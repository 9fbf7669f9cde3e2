// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Zip returns an iterator of [Pair] values drawn one from each input.
// It stops at the first exhaustion of either input, so its length is
// the minimum of the two input lengths. When the first input yields a
// value but the second is exhausted, that value is discarded.
func Zip[L, R any](a Iter[L], b Iter[R]) Iter[Pair[L, R]] {
	return &zipIter[L, R]{a: a, b: b}
}

type zipIter[L, R any] struct {
	a Iter[L]
	b Iter[R]
}

func (z *zipIter[L, R]) Next() option.Option[Pair[L, R]] {
	av, ok := z.a.Next().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	bv, ok := z.b.Next().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	return option.Some(Pair[L, R]{Left: av, Right: bv})
}

// ZipBack is like [Zip] over sized double-ended iterators. Because the
// remaining lengths are known, back pulls are well defined even for
// inputs of unequal length: the longer input is first drained from the
// back until the lengths match, then one element is pulled from the
// back of each.
func ZipBack[L, R any](a SizedDoubleEnded[L], b SizedDoubleEnded[R]) SizedDoubleEnded[Pair[L, R]] {
	return &zipBackIter[L, R]{a: a, b: b}
}

type zipBackIter[L, R any] struct {
	a SizedDoubleEnded[L]
	b SizedDoubleEnded[R]
}

func (z *zipBackIter[L, R]) Next() option.Option[Pair[L, R]] {
	av, ok := z.a.Next().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	bv, ok := z.b.Next().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	return option.Some(Pair[L, R]{Left: av, Right: bv})
}

func (z *zipBackIter[L, R]) NextBack() option.Option[Pair[L, R]] {
	// Surplus elements of the longer input can never pair up.
	for z.a.Len() > z.b.Len() {
		z.a.NextBack()
	}
	for z.b.Len() > z.a.Len() {
		z.b.NextBack()
	}
	av, ok := z.a.NextBack().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	bv, ok := z.b.NextBack().Get()
	if !ok {
		return option.Nil[Pair[L, R]]()
	}
	return option.Some(Pair[L, R]{Left: av, Right: bv})
}

func (z *zipBackIter[L, R]) Len() int {
	return min(z.a.Len(), z.b.Len())
}
