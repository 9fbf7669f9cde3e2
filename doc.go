// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pull provides lazy, composable iteration over pull-based
// sequences.
//
// A sequence is anything implementing [Iter]: a single Next method
// that returns an [option.Option] holding the next element, or Nil
// once exhausted. Chains of combinators transform sequences
// without materializing intermediate collections; elements flow
// through the whole chain one at a time, and only when a terminal
// operation (or a direct Next call) pulls them.
//
// # Sources
//
// [Slice] wraps a slice, [FromSeq] wraps a native range-over-func
// sequence, and [FromFunc] wraps a bare generator function. [Range],
// [RangeStep], and [RangeFrom] produce arithmetic progressions of
// integers with O(1) stepping from either end. [Empty], [Once],
// [Repeat], and [FromOption] cover the trivial cases.
//
// # Combinators
//
// Each combinator takes ownership of the iterator(s) it wraps and
// returns a new lazy sequence: [Map], [Filter], [FilterMap],
// [FlatMap], [Flatten], [Chain], [Zip], [Enumerate], [Take],
// [TakeWhile], [Skip], [SkipWhile], [StepBy], [Scan], [MapWhile],
// [Peekable], [Fuse], [Cycle], and [Inspect]. No element is pulled
// from an inner sequence until the combinator itself is pulled, and
// only the minimum number of inner pulls needed to answer a call is
// performed.
//
//	squares := pull.Collect(
//		pull.Filter(
//			pull.Map(pull.Range(0, 5), func(x int) int { return x*x + 1 }),
//			func(x int) bool { return x%2 == 1 },
//		))
//	// squares is [1, 5, 17]
//
// # Double-ended sequences
//
// A [DoubleEnded] sequence can additionally be pulled from the back;
// the two cursors converge and no element is ever produced twice.
// Combinators whose transformation is order-symmetric have
// double-ended variants ([MapBack], [FilterBack], [FilterMapBack],
// [ChainBack], [ZipBack], [EnumerateBack], [PeekableBack], [FuseBack],
// [InspectBack], and [Rev]) that require a double-ended inner
// sequence at compile time. [ZipBack] and [EnumerateBack] further
// require the [Sized] capability, since their back-pulling behavior
// depends on the exact remaining length. Combinators that are
// inherently asymmetric, such as [Take], [Cycle], [Scan], and
// [StepBy], have no double-ended form.
//
// # Terminal operations
//
// Terminal operations eagerly drain a sequence: [Fold], [Collect],
// [Count], [Nth], [ForEach], [Last], [Find], [Position], [All],
// [Any], [Reduce], [Partition], [Sum], [Min], [Max], the pairwise
// comparisons [Equal] and [Compare], and the back-to-front variants
// [RFold], [RFind], [RPosition], and [NthBack]. They are defined
// purely against [Iter], so every conforming sequence inherits them.
// A consumed sequence is not restartable.
//
// # Absence and failure
//
// Absence is a normal outcome and is always reported as Nil through
// the [option] package, never as an error. Hard failures are reserved
// for programmer mistakes: unchecked Option accessors panic with
// typed errors, and invalid construction parameters ([StepBy] with a
// step below one, [RangeStep] with a zero step) panic at construction
// rather than on first pull.
//
// # Concurrency
//
// Everything in this package is single-threaded and synchronous. A
// chain is exclusively owned by its caller: each stage owns the
// stage(s) it wraps, nothing is shared, and no operation blocks.
// Cancellation is implicit; stop pulling and discard the chain.
package pull
