// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull

import "vawter.tech/pull/option"

// Peekable wraps an iterator with a one-element look-ahead buffer.
func Peekable[T any](it Iter[T]) *Peeker[T] {
	return &Peeker[T]{it: it}
}

// Peeker is an [Iter] with a [Peeker.Peek] operation that inspects the
// next element without consuming it. At most one element is buffered.
type Peeker[T any] struct {
	it Iter[T]
	// buffered is Some when a look-ahead has happened; its payload is
	// the buffered Next result, which may itself be Nil.
	buffered option.Option[option.Option[T]]
}

// Next returns the buffered look-ahead element if one exists,
// otherwise it pulls the inner iterator.
func (p *Peeker[T]) Next() option.Option[T] {
	if buf, ok := p.buffered.Get(); ok {
		if buf.IsSome() {
			p.buffered.Take()
		}
		return buf
	}
	return p.it.Next()
}

// Peek returns the next element without consuming it. Repeated calls
// return the same value and pull the inner iterator at most once.
func (p *Peeker[T]) Peek() option.Option[T] {
	if buf, ok := p.buffered.Get(); ok {
		return buf
	}
	buf := p.it.Next()
	p.buffered = option.Some(buf)
	return buf
}

// PeekableBack is like [Peekable] over a double-ended iterator. The
// peek operation remains forward-only; a back pull yields the buffered
// front element last, once the inner iterator is exhausted.
func PeekableBack[T any](it DoubleEnded[T]) *BackPeeker[T] {
	return &BackPeeker[T]{it: it}
}

// BackPeeker is a [DoubleEnded] iterator with a forward-only
// [BackPeeker.Peek] operation.
type BackPeeker[T any] struct {
	it       DoubleEnded[T]
	buffered option.Option[option.Option[T]]
}

// Next returns the buffered look-ahead element if one exists,
// otherwise it pulls the front of the inner iterator.
func (p *BackPeeker[T]) Next() option.Option[T] {
	if buf, ok := p.buffered.Get(); ok {
		if buf.IsSome() {
			p.buffered.Take()
		}
		return buf
	}
	return p.it.Next()
}

// Peek returns the next front element without consuming it.
func (p *BackPeeker[T]) Peek() option.Option[T] {
	if buf, ok := p.buffered.Get(); ok {
		return buf
	}
	buf := p.it.Next()
	p.buffered = option.Some(buf)
	return buf
}

// NextBack pulls from the back of the inner iterator. When the inner
// iterator is exhausted, a buffered look-ahead element is the final
// remaining element and is yielded here.
func (p *BackPeeker[T]) NextBack() option.Option[T] {
	if v := p.it.NextBack(); v.IsSome() {
		return v
	}
	if buf, ok := p.buffered.Get(); ok && buf.IsSome() {
		// The buffer is now known to be past the end.
		p.buffered = option.Some(option.Nil[T]())
		return buf
	}
	return option.Nil[T]()
}
