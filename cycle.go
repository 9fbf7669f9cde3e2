// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Cycle returns an iterator that repeats the elements of it
// indefinitely, restarting each time the recorded first pass is
// exhausted. An inner iterator that is empty on the first pass yields
// Nil forever rather than looping.
func Cycle[T any](it Iter[T]) Iter[T] {
	return &cycleIter[T]{it: it}
}

type cycleIter[T any] struct {
	it      Iter[T]
	seen    []T
	idx     int
	cycling bool
}

func (c *cycleIter[T]) Next() option.Option[T] {
	if !c.cycling {
		if v := c.it.Next(); v.IsSome() {
			c.seen = append(c.seen, v.Unwrap())
			return v
		}
		c.cycling = true
	}
	if len(c.seen) == 0 {
		return option.Nil[T]()
	}
	v := c.seen[c.idx]
	c.idx = (c.idx + 1) % len(c.seen)
	return option.Some(v)
}
