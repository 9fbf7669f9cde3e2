// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Chain returns an iterator that drains a fully, then drains b.
func Chain[T any](a, b Iter[T]) Iter[T] {
	return &chainIter[T]{a: a, b: b}
}

type chainIter[T any] struct {
	a, b Iter[T]
}

func (c *chainIter[T]) Next() option.Option[T] {
	if c.a != nil {
		if v := c.a.Next(); v.IsSome() {
			return v
		}
		c.a = nil
	}
	return c.b.Next()
}

// ChainBack is like [Chain] over double-ended iterators: forward pulls
// drain a then b, while back pulls drain b's back first, then a's.
// The two inner iterators are independent, so the cursors cannot
// cross.
func ChainBack[T any](a, b DoubleEnded[T]) DoubleEnded[T] {
	return &chainBackIter[T]{a: a, b: b}
}

type chainBackIter[T any] struct {
	a, b         DoubleEnded[T]
	aDone, bDone bool
}

func (c *chainBackIter[T]) Next() option.Option[T] {
	if !c.aDone {
		if v := c.a.Next(); v.IsSome() {
			return v
		}
		c.aDone = true
	}
	return c.b.Next()
}

func (c *chainBackIter[T]) NextBack() option.Option[T] {
	if !c.bDone {
		if v := c.b.NextBack(); v.IsSome() {
			return v
		}
		c.bDone = true
	}
	return c.a.NextBack()
}
