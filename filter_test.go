// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/pull"
	"vawter.tech/pull/option"
)

// TestFilter verifies that a single pull may consume several inner
// elements before one satisfies the predicate.
func TestFilter(t *testing.T) {
	r := require.New(t)

	pulled := 0
	inner := pull.Inspect(pull.Slice([]int{1, 2, 3, 4, 5, 6}), func(int) { pulled++ })
	it := pull.Filter(inner, func(v int) bool { return v%3 == 0 })

	r.Equal(option.Some(3), it.Next())
	r.Equal(3, pulled)
	r.Equal(option.Some(6), it.Next())
	r.Equal(option.Nil[int](), it.Next())
}

// TestFilterBack verifies filtering from both ends.
func TestFilterBack(t *testing.T) {
	r := require.New(t)

	it := pull.FilterBack(pull.Slice([]int{1, 2, 3, 4, 5}), func(v int) bool {
		return v%2 == 1
	})
	r.Equal(option.Some(5), it.NextBack())
	r.Equal(option.Some(1), it.Next())
	r.Equal(option.Some(3), it.NextBack())
	r.Equal(option.Nil[int](), it.Next())
	r.Equal(option.Nil[int](), it.NextBack())
}

// TestFilterMap verifies filtering and mapping in one pass.
func TestFilterMap(t *testing.T) {
	r := require.New(t)

	parse := func(s string) option.Option[int] {
		if v, err := strconv.Atoi(s); err == nil {
			return option.Some(v)
		}
		return option.Nil[int]()
	}
	it := pull.FilterMap(pull.Slice([]string{"1", "two", "NaN", "four", "5"}), parse)
	r.Equal([]int{1, 5}, pull.Collect(it))
}

// TestFilterMapBack verifies the double-ended form.
func TestFilterMapBack(t *testing.T) {
	r := require.New(t)

	halve := func(v int) option.Option[int] {
		if v%2 == 0 {
			return option.Some(v / 2)
		}
		return option.Nil[int]()
	}
	it := pull.FilterMapBack(pull.Slice([]int{2, 3, 4, 5, 6}), halve)
	r.Equal(option.Some(3), it.NextBack())
	r.Equal(option.Some(1), it.Next())
	r.Equal(option.Some(2), it.NextBack())
	r.Equal(option.Nil[int](), it.NextBack())
}
