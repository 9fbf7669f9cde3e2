// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package option provides a two-variant container representing the
// presence ([Some]) or absence ([Nil]) of a value.
//
// An [Option] is a value type: the zero value is Nil, copies are
// independent, and no operation shares state. It replaces sentinel
// values and nil pointers as the uniform "value or absence" signal:
// the sibling pull package returns an Option from every sequence step,
// so "absent" stays distinguishable from "present but zero" at the
// type level.
//
// Operations that change the element type (such as [Map] and
// [AndThen]) are package-level functions, because Go methods cannot
// introduce type parameters. Operations that preserve the element type
// are methods.
//
// Options of comparable element types are themselves comparable with
// ==. The [Equal] and [Compare] functions extend this to the usual
// ordering, in which Nil orders before any Some.
package option

import (
	"cmp"
	"fmt"
)

// Option holds either one value of type T or nothing. The zero value
// is Nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// Nil returns the empty Option.
func Nil[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNil reports whether the Option is empty.
func (o Option[T]) IsNil() bool { return !o.ok }

// IsSomeAnd reports whether the Option holds a value and the value
// satisfies the predicate.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// Get returns the held value and whether it was present. This is the
// comma-ok view of an Option for use in ordinary Go control flow.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the held value. It panics with an [*UnwrapNilError]
// if the Option is Nil; use [Option.Get] or [Option.UnwrapOr] when
// absence is an expected outcome.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(&UnwrapNilError{})
	}
	return o.value
}

// UnwrapOr returns the held value, or def if the Option is Nil.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the held value, or the result of calling fn if
// the Option is Nil. The function is only invoked when needed.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Expect returns the held value. It panics with an [*ExpectNilError]
// carrying msg if the Option is Nil.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(&ExpectNilError{Message: msg})
	}
	return o.value
}

// OkOr returns the held value, or err if the Option is Nil.
func (o Option[T]) OkOr(err error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, err
}

// OkOrElse returns the held value, or the result of calling errFn if
// the Option is Nil.
func (o Option[T]) OkOrElse(errFn func() error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, errFn()
}

// Filter returns the Option unchanged if it holds a value satisfying
// the predicate, and Nil otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return Nil[T]()
}

// Or returns the Option if it holds a value, and b otherwise.
func (o Option[T]) Or(b Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return b
}

// OrElse returns the Option if it holds a value, and the result of
// calling fn otherwise.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// Xor returns whichever of the two Options holds a value, or Nil if
// both or neither do.
func (o Option[T]) Xor(b Option[T]) Option[T] {
	switch {
	case o.ok && !b.ok:
		return o
	case !o.ok && b.ok:
		return b
	}
	return Nil[T]()
}

// Insert stores v in the Option, replacing any previous value, and
// returns v.
func (o *Option[T]) Insert(v T) T {
	o.value = v
	o.ok = true
	return v
}

// GetOrInsert returns the held value, storing and returning v if the
// Option was Nil.
func (o *Option[T]) GetOrInsert(v T) T {
	if !o.ok {
		o.value = v
		o.ok = true
	}
	return o.value
}

// GetOrInsertWith returns the held value, storing and returning the
// result of calling fn if the Option was Nil.
func (o *Option[T]) GetOrInsertWith(fn func() T) T {
	if !o.ok {
		o.value = fn()
		o.ok = true
	}
	return o.value
}

// Replace stores v in the Option and returns the previously held
// value, if any.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := *o
	o.value = v
	o.ok = true
	return prev
}

// Take empties the Option and returns the previously held value, if
// any.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = Nil[T]()
	return prev
}

// String implements [fmt.Stringer].
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "Nil"
}

// Map applies fn to the held value, if any, and returns the result in
// a new Option. A Nil input propagates unchanged.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return Nil[U]()
}

// MapOr applies fn to the held value, returning def if the Option is
// Nil.
func MapOr[T, U any](o Option[T], def U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return def
}

// MapOrElse applies fn to the held value, returning the result of
// defFn if the Option is Nil.
func MapOrElse[T, U any](o Option[T], defFn func() U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return defFn()
}

// And returns b if o holds a value, and Nil otherwise.
func And[T, U any](o Option[T], b Option[U]) Option[U] {
	if o.IsSome() {
		return b
	}
	return Nil[U]()
}

// AndThen applies fn, which itself returns an Option, to the held
// value. This chains fallible transformations without producing nested
// Options.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return Nil[U]()
}

// Flatten collapses one level of Option nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if v, ok := o.Get(); ok {
		return v
	}
	return Nil[T]()
}

// Pair holds two values of possibly different types. It is the element
// type produced by [Zip] and by the pull package's Zip combinator.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Zip combines two Options into an Option of a [Pair]. The result is
// Nil unless both inputs hold a value.
func Zip[L, R any](a Option[L], b Option[R]) Option[Pair[L, R]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(Pair[L, R]{Left: av, Right: bv})
	}
	return Nil[Pair[L, R]]()
}

// Unzip splits an Option of a [Pair] into two Options. A Nil input
// produces two Nil results.
func Unzip[L, R any](o Option[Pair[L, R]]) (Option[L], Option[R]) {
	if p, ok := o.Get(); ok {
		return Some(p.Left), Some(p.Right)
	}
	return Nil[L](), Nil[R]()
}

// Equal reports whether two Options are the same variant holding equal
// values.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

// EqualFunc is like [Equal], using eq to compare held values.
func EqualFunc[L, R any](a Option[L], b Option[R], eq func(L, R) bool) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || eq(av, bv)
}

// Compare orders two Options: Nil orders before any Some, and two Some
// values order by their payloads. The result follows the [cmp.Compare]
// convention.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare], using compare to order held values.
func CompareFunc[L, R any](a Option[L], b Option[R], compare func(L, R) int) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return +1
	}
	return compare(av, bv)
}
