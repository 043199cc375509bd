// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

func TestUndefinedSpecializesOnFirstPush(t *testing.T) {
	c := AllUndefined("a", 3)
	require.Equal(t, types.Undefined, c.Type())
	require.Equal(t, 3, c.Len())

	c.Push(value.Int4(42))
	require.Equal(t, types.Int4, c.Type())
	require.Equal(t, 4, c.Len())

	for i := 0; i < 3; i++ {
		require.True(t, c.Get(i).IsUndefined())
	}
	require.Equal(t, int64(42), c.Get(3).AsInt64())
}

func TestBoolContainerValidity(t *testing.T) {
	c := WithCapacity("b", types.Bool, 0)
	c.Push(value.Bool(true))
	c.PushUndefined()
	c.Push(value.Bool(false))

	require.True(t, c.IsValid(0))
	require.False(t, c.IsValid(1))
	require.True(t, c.IsValid(2))
	require.False(t, c.IsFullyDefined())
	require.True(t, c.Get(1).IsUndefined())
}

func TestCowCloneSharesUntilMutated(t *testing.T) {
	c := WithCapacity("n", types.Int8, 0)
	c.Push(value.Int8v(1))
	c.Push(value.Int8v(2))

	clone := c.Clone()
	clone.Push(value.Int8v(3))

	require.Equal(t, 2, c.Len())
	require.Equal(t, 3, clone.Len())
}

func TestColumnsRowCountMismatchPanics(t *testing.T) {
	a := WithCapacity("a", types.Int4, 0)
	a.Push(value.Int4(1))
	b := WithCapacity("b", types.Int4, 0)
	b.Push(value.Int4(1))
	b.Push(value.Int4(2))

	require.Panics(t, func() { NewColumns(a, b) })
}

func TestColumnsSelectExtendTake(t *testing.T) {
	a := WithCapacity("a", types.Int4, 0)
	a.Push(value.Int4(1))
	a.Push(value.Int4(2))
	b := WithCapacity("b", types.Int4, 0)
	b.Push(value.Int4(10))
	b.Push(value.Int4(20))

	cs := NewColumns(a, b)
	sel, err := cs.Select("b")
	require.NoError(t, err)
	require.Equal(t, 1, sel.Width())

	ext := cs.Extend(WithCapacity("c", types.Int4, 0))
	require.Equal(t, 3, ext.Width())

	taken := cs.Take(1)
	require.Equal(t, 1, taken.Len())
}

func TestColumnsFilterKeepsOnlyListedRows(t *testing.T) {
	a := WithCapacity("a", types.Int4, 0)
	a.Push(value.Int4(1))
	a.Push(value.Int4(2))
	a.Push(value.Int4(3))
	cs := NewColumns(a)

	filtered := cs.Filter([]int{0, 2})
	require.Equal(t, 2, filtered.Len())
	require.Equal(t, int64(1), filtered.Column(0).Get(0).AsInt64())
	require.Equal(t, int64(3), filtered.Column(0).Get(1).AsInt64())
}

func TestCloneMaterializesIdenticalValues(t *testing.T) {
	a := WithCapacity("a", types.Int4, 0)
	a.Push(value.Int4(1))
	a.Push(value.Int4(2))
	a.PushUndefined()

	clone := a.Clone()
	original := make([]value.Value, a.Len())
	copied := make([]value.Value, clone.Len())
	for i := 0; i < a.Len(); i++ {
		original[i] = a.Get(i)
		copied[i] = clone.Get(i)
	}
	if diff := deep.Equal(original, copied); diff != nil {
		t.Fatalf("clone diverged from original: %v", diff)
	}
}
