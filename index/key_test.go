// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/types"
)

func TestInt4AscOrderPreserving(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4}, []Direction{Asc})
	values := []int32{-100, -1, 0, 1, 100, -2147483648, 2147483647}

	keys := make([]*EncodedIndexKey, len(values))
	for i, v := range values {
		k := New(l)
		l.SetInt4(k, 0, v)
		keys[i] = k
	}

	sorted := append([]*EncodedIndexKey(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })

	got := make([]int32, len(sorted))
	for i, k := range sorted {
		got[i] = l.GetInt4(k, 0)
	}
	want := append([]int32(nil), values...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got)
}

func TestInt4DescReversesOrder(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4}, []Direction{Desc})
	a, b := New(l), New(l)
	l.SetInt4(a, 0, 5)
	l.SetInt4(b, 0, 10)
	require.True(t, Compare(a, b) > 0) // Desc puts the larger value first, so b (10) sorts ahead of a (5)
	require.Equal(t, int32(5), l.GetInt4(a, 0))
	require.Equal(t, int32(10), l.GetInt4(b, 0))
}

func TestUint8RoundTripAndOrder(t *testing.T) {
	l := NewLayout([]types.Type{types.Uint8}, []Direction{Asc})
	a, b := New(l), New(l)
	l.SetUint8(a, 0, 1)
	l.SetUint8(b, 0, ^uint64(0))
	require.True(t, Compare(a, b) < 0)
	require.Equal(t, uint64(1), l.GetUint8(a, 0))
	require.Equal(t, ^uint64(0), l.GetUint8(b, 0))
}

func TestFloat8OrderAcrossSignAndNaN(t *testing.T) {
	l := NewLayout([]types.Type{types.Float8}, []Direction{Asc})
	values := []float64{-1.5, math.Copysign(0, -1), 0.0, 1.5, 100.25}

	keys := make([]*EncodedIndexKey, len(values))
	for i, v := range values {
		k := New(l)
		l.SetFloat8(k, 0, v)
		keys[i] = k
	}
	for i := 1; i < len(keys); i++ {
		require.True(t, Compare(keys[i-1], keys[i]) < 0, "expected %v < %v in key order", values[i-1], values[i])
	}

	nanKey := New(l)
	l.SetFloat8(nanKey, 0, math.NaN())
	maxKey := New(l)
	l.SetFloat8(maxKey, 0, 1e300)
	require.True(t, Compare(maxKey, nanKey) < 0, "canonical NaN must sort as the maximal float")
}

func TestBoolAndUuidRoundTrip(t *testing.T) {
	l := NewLayout([]types.Type{types.Bool, types.Uuid4}, []Direction{Asc, Asc})
	k := New(l)
	l.SetBool(k, 0, true)
	id := types.NewUuid4()
	l.SetUuid4(k, 1, id)

	require.True(t, l.GetBool(k, 0))
	require.Equal(t, id, l.GetUuid4(k, 1))
}

func TestUndefinedSortsFirst(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4}, []Direction{Asc})
	defined := New(l)
	l.SetInt4(defined, 0, -2147483648)
	undefined := New(l)
	undefined.SetUndefined(l, 0)

	require.True(t, Compare(undefined, defined) < 0)
}

// TestNullOrderingIsPerFieldNotTupleWide reproduces the counterexample from
// the review that found the original leading-bitmap encoding: with a
// tuple-wide bitmap, t1=(10, undefined) encodes as bitmap 0x01 and
// t2=(5, 5) encodes as bitmap 0x03, so 0x01 < 0x03 makes t1 sort before t2
// even though 10 > 5 on the leading field. The per-field validity byte must
// keep the leading field's priority intact regardless of a trailing field's
// null-ness.
func TestNullOrderingIsPerFieldNotTupleWide(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4, types.Int4}, []Direction{Asc, Asc})

	t1 := New(l)
	l.SetInt4(t1, 0, 10)
	t1.SetUndefined(l, 1)

	t2 := New(l)
	l.SetInt4(t2, 0, 5)
	l.SetInt4(t2, 1, 5)

	require.True(t, Compare(t1, t2) > 0, "t1's leading field (10) must outrank t2's (5) regardless of t1's trailing null")
}

func TestRandomInt4OrderMatchesNativeOrder(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4}, []Direction{Asc})
	rng := rand.New(rand.NewSource(1))
	values := make([]int32, 200)
	for i := range values {
		values[i] = int32(rng.Uint32())
	}
	keys := make([]*EncodedIndexKey, len(values))
	for i, v := range values {
		k := New(l)
		l.SetInt4(k, 0, v)
		keys[i] = k
	}
	sort.Slice(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 })
	for i := 1; i < len(keys); i++ {
		require.LessOrEqual(t, l.GetInt4(keys[i-1], 0), l.GetInt4(keys[i], 0))
	}
}
