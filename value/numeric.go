// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package value

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/types"
)

// Float64Of returns v's value as a float64 for any numeric type, used
// internally by kernels operating at Float8/Decimal promotion. ok is false
// for non-numeric types.
func Float64Of(v Value) (float64, bool) {
	switch v.typ {
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return float64(v.i64), true
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		return float64(v.u64), true
	case types.Float4:
		return float64(v.f32), true
	case types.Float8:
		return v.f64, true
	case types.Int16, types.Int:
		f := new(big.Float).SetInt(v.bigInt)
		out, _ := f.Float64()
		return out, true
	case types.Uint16, types.Uint:
		f := new(big.Float).SetInt(v.bigUint.ToBig())
		out, _ := f.Float64()
		return out, true
	case types.Decimal:
		out, _ := v.decimal.Float64()
		return out, true
	default:
		return 0, false
	}
}

// Int64Of returns v's value as an int64 when it fits without loss.
func Int64Of(v Value) (int64, bool) {
	switch v.typ {
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return v.i64, true
	case types.Uint1, types.Uint2, types.Uint4:
		return int64(v.u64), true
	case types.Uint8:
		if v.u64 > math.MaxInt64 {
			return 0, false
		}
		return int64(v.u64), true
	case types.Int16, types.Int:
		if !v.bigInt.IsInt64() {
			return 0, false
		}
		return v.bigInt.Int64(), true
	default:
		return 0, false
	}
}

// BigIntOf returns v's value as an arbitrary-precision signed integer for
// any integer-typed value.
func BigIntOf(v Value) (*big.Int, bool) {
	switch v.typ {
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return big.NewInt(v.i64), true
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		return new(big.Int).SetUint64(v.u64), true
	case types.Int16, types.Int:
		return v.bigInt, true
	case types.Uint16, types.Uint:
		return v.bigUint.ToBig(), true
	default:
		return nil, false
	}
}

// DecimalOf converts v's numeric value to a decimal.Decimal.
func DecimalOf(v Value) (decimal.Decimal, bool) {
	switch v.typ {
	case types.Decimal:
		return v.decimal, true
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return decimal.NewFromInt(v.i64), true
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v.u64), 0), true
	case types.Int16, types.Int:
		return decimal.NewFromBigInt(v.bigInt, 0), true
	case types.Uint16, types.Uint:
		return decimal.NewFromBigInt(v.bigUint.ToBig(), 0), true
	case types.Float4:
		return decimal.NewFromFloat32(v.f32), true
	case types.Float8:
		return decimal.NewFromFloat(v.f64), true
	default:
		return decimal.Decimal{}, false
	}
}

// NewUint256FromBig converts a non-negative big.Int into a *uint256.Int,
// reporting ok=false on overflow (value too large) or a negative input.
func NewUint256FromBig(b *big.Int) (*uint256.Int, bool) {
	if b.Sign() < 0 {
		return nil, false
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return nil, false
	}
	return u, true
}
