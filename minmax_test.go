// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pull_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/pull"
	"vawter.tech/pull/option"
)

// TestMinMax verifies the extrema reductions and their empty cases.
func TestMinMax(t *testing.T) {
	r := require.New(t)

	r.Equal(option.Some(1), pull.Min(pull.Slice([]int{3, 1, 4, 1, 5})))
	r.Equal(option.Some(5), pull.Max(pull.Slice([]int{3, 1, 4, 1, 5})))
	r.Equal(option.Nil[int](), pull.Min(pull.Empty[int]()))
	r.Equal(option.Nil[int](), pull.Max(pull.Empty[int]()))
}

type scored struct {
	name  string
	score int
}

// TestMinMaxTies verifies the tie rules: Min keeps the first smallest
// element, Max keeps the last largest.
func TestMinMaxTies(t *testing.T) {
	r := require.New(t)

	vals := []scored{{"a", 1}, {"b", 2}, {"c", 1}, {"d", 2}}
	key := func(s scored) int { return s.score }

	r.Equal(option.Some(scored{"a", 1}), pull.MinByKey(pull.Slice(vals), key))
	r.Equal(option.Some(scored{"d", 2}), pull.MaxByKey(pull.Slice(vals), key))
}

// TestMinMaxBy verifies the comparison-function forms.
func TestMinMaxBy(t *testing.T) {
	r := require.New(t)

	byLen := func(a, b string) int { return len(a) - len(b) }
	words := []string{"pear", "fig", "banana"}
	r.Equal(option.Some("fig"), pull.MinBy(pull.Slice(words), byLen))
	r.Equal(option.Some("banana"), pull.MaxBy(pull.Slice(words), byLen))
}
