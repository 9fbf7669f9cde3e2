// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/pull"
	"vawter.tech/pull/option"
)

// flicker alternates between a value and Nil forever, modeling a
// generator that resumes after signaling exhaustion.
func flicker() pull.Iter[int] {
	n := 0
	return pull.FromFunc[int](func() option.Option[int] {
		n++
		if n%2 == 0 {
			return option.Nil[int]()
		}
		return option.Some(n)
	})
}

// TestFuse verifies that the first Nil is made permanent even when the
// inner iterator would produce more values.
func TestFuse(t *testing.T) {
	r := require.New(t)

	raw := flicker()
	r.Equal(option.Some(1), raw.Next())
	r.Equal(option.Nil[int](), raw.Next())
	r.Equal(option.Some(3), raw.Next()) // misbehaves

	it := pull.Fuse(flicker())
	r.Equal(option.Some(1), it.Next())
	r.Equal(option.Nil[int](), it.Next())
	r.Equal(option.Nil[int](), it.Next())
	r.Equal(option.Nil[int](), it.Next())
}

// TestFuseBack verifies that exhaustion observed on one end fuses the
// other end as well.
func TestFuseBack(t *testing.T) {
	r := require.New(t)

	it := pull.FuseBack(pull.Slice([]int{1, 2}))
	r.Equal(option.Some(2), it.NextBack())
	r.Equal(option.Some(1), it.Next())
	r.Equal(option.Nil[int](), it.Next())
	r.Equal(option.Nil[int](), it.NextBack())
}
