// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package row

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/types"
)

func TestFixedWidthRoundTrip(t *testing.T) {
	l := NewLayout([]types.Type{types.Bool, types.Int4, types.Uint8, types.Float8, types.Date})
	r := New(l)

	r.SetBool(l, 0, true)
	r.SetInt4(l, 1, -12345)
	r.SetUint8(l, 2, 9999999999)
	r.SetFloat8(l, 3, 3.5)
	r.SetDate(l, 4, types.Date(19000))

	require.True(t, r.GetBool(l, 0))
	require.Equal(t, int32(-12345), r.GetInt4(l, 1))
	require.Equal(t, uint64(9999999999), r.GetUint8(l, 2))
	require.Equal(t, 3.5, r.GetFloat8(l, 3))
	require.Equal(t, types.Date(19000), r.GetDate(l, 4))

	for i := 0; i < 5; i++ {
		require.True(t, r.IsDefined(i))
	}
}

func TestUndefinedClearsValidity(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4})
	r := New(l)
	r.SetInt4(l, 0, 7)
	require.True(t, r.IsDefined(0))
	r.SetUndefined(l, 0)
	require.False(t, r.IsDefined(0))
	require.Equal(t, int32(0), r.GetInt4(l, 0))
}

func TestVariableWidthRoundTrip(t *testing.T) {
	l := NewLayout([]types.Type{types.Utf8, types.Blob})
	r := New(l)

	r.SetUtf8(l, 0, "hello, row")
	r.SetBlob(l, 1, []byte{0xde, 0xad, 0xbe, 0xef})

	require.Equal(t, "hello, row", r.GetUtf8(l, 0))
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, r.GetBlob(l, 1))
	require.Equal(t, l.TotalStaticSize()+len("hello, row")+4, r.Len())
}

func TestVariableWidthSetTwicePanics(t *testing.T) {
	l := NewLayout([]types.Type{types.Utf8})
	r := New(l)
	r.SetUtf8(l, 0, "first")
	require.Panics(t, func() { r.SetUtf8(l, 0, "second") })
}

func TestArbitraryPrecisionRoundTrip(t *testing.T) {
	l := NewLayout([]types.Type{types.Int, types.Uint, types.Decimal})
	r := New(l)

	big1, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	r.SetIntBig(l, 0, big1)

	u1 := uint256.NewInt(0)
	u1.SetFromDecimal("987654321098765432109876543210")
	r.SetUintBig(l, 1, u1)

	d1 := decimal.RequireFromString("12345.6789")
	r.SetDecimal(l, 2, d1)

	require.Equal(t, 0, big1.Cmp(r.GetIntBig(l, 0)))
	require.Equal(t, u1.String(), r.GetUintBig(l, 1).String())
	require.True(t, d1.Equal(r.GetDecimal(l, 2)))
}

func TestFixed128RoundTrip(t *testing.T) {
	l := NewLayout([]types.Type{types.Int16, types.Uint16})
	r := New(l)

	neg, _ := new(big.Int).SetString("-170141183460469231731687303715884105727", 10)
	r.SetInt16(l, 0, neg)

	u := uint256.NewInt(0)
	u.SetFromDecimal("340282366920938463463374607431768211455")
	r.SetUint16(l, 1, u)

	require.Equal(t, 0, neg.Cmp(r.GetInt16(l, 0)))
	require.Equal(t, u.String(), r.GetUint16(l, 1).String())
}

func TestCowCloneIsolatesMutation(t *testing.T) {
	l := NewLayout([]types.Type{types.Int4})
	r := New(l)
	r.SetInt4(l, 0, 1)

	clone := r.Clone()
	clone.SetInt4(l, 0, 2)

	require.Equal(t, int32(1), r.GetInt4(l, 0))
	require.Equal(t, int32(2), clone.GetInt4(l, 0))
}
