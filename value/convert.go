// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package value

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/types"
)

// SafeConvert coerces v to the target type, returning ok=false when the
// value would lose information (overflow, truncation, non-finite float) —
// spec.md §4.1. Callers materialize a failed conversion as Undefined in the
// destination column and optionally emit a diagnostic (the caller's
// responsibility: this function is pure and side-effect free).
//
// SafePromote and SafeDemote are the same underlying coercion; spec.md
// names them separately only to describe caller intent (widening vs
// narrowing), not a different algorithm — a narrowing call and a widening
// call both go through the identical overflow-checked path here.
func SafeConvert(v Value, target types.Type) (Value, bool) {
	if v.IsUndefined() {
		return Undefined, true
	}
	if v.typ == target {
		return v, true
	}

	switch target {
	case types.Bool:
		return convertToBool(v)
	case types.Int1:
		return convertToSignedInt(v, target, math.MinInt8, math.MaxInt8)
	case types.Int2:
		return convertToSignedInt(v, target, math.MinInt16, math.MaxInt16)
	case types.Int4:
		return convertToSignedInt(v, target, math.MinInt32, math.MaxInt32)
	case types.Int8:
		return convertToSignedInt(v, target, math.MinInt64, math.MaxInt64)
	case types.Uint1:
		return convertToUnsignedInt(v, target, math.MaxUint8)
	case types.Uint2:
		return convertToUnsignedInt(v, target, math.MaxUint16)
	case types.Uint4:
		return convertToUnsignedInt(v, target, math.MaxUint32)
	case types.Uint8:
		return convertToUnsignedInt(v, target, math.MaxUint64)
	case types.Int16, types.Int:
		return convertToBigInt(v, target)
	case types.Uint16, types.Uint:
		return convertToBigUint(v, target)
	case types.Float4:
		return convertToFloat32(v)
	case types.Float8:
		return convertToFloat64(v)
	case types.Decimal:
		return convertToDecimal(v)
	case types.Utf8:
		return convertToUtf8(v)
	default:
		return Undefined, false
	}
}

// SafePromote widens v to target. See SafeConvert.
func SafePromote(v Value, target types.Type) (Value, bool) { return SafeConvert(v, target) }

// SafeDemote narrows v to target. See SafeConvert.
func SafeDemote(v Value, target types.Type) (Value, bool) { return SafeConvert(v, target) }

func convertToBool(v Value) (Value, bool) {
	switch v.typ {
	case types.Bool:
		return v, true
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return Bool(v.i64 != 0), true
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		return Bool(v.u64 != 0), true
	default:
		return Undefined, false
	}
}

func convertToSignedInt(v Value, target types.Type, min, max int64) (Value, bool) {
	var n int64
	switch v.typ {
	case types.Bool:
		if v.b {
			n = 1
		}
	case types.Int1, types.Int2, types.Int4, types.Int8:
		n = v.i64
	case types.Uint1, types.Uint2, types.Uint4:
		n = int64(v.u64)
	case types.Uint8:
		if v.u64 > math.MaxInt64 {
			return Undefined, false
		}
		n = int64(v.u64)
	case types.Float4:
		f := float64(v.f32)
		if f != math.Trunc(f) || f < float64(min) || f > float64(max) {
			return Undefined, false
		}
		n = int64(f)
	case types.Float8:
		f := v.f64
		if f != math.Trunc(f) || f < float64(min) || f > float64(max) {
			return Undefined, false
		}
		n = int64(f)
	case types.Int16, types.Int:
		if !v.bigInt.IsInt64() {
			return Undefined, false
		}
		n = v.bigInt.Int64()
	case types.Uint16, types.Uint:
		b := v.bigUint.ToBig()
		if !b.IsInt64() {
			return Undefined, false
		}
		n = b.Int64()
	case types.Decimal:
		if !v.decimal.Equal(v.decimal.Truncate(0)) {
			return Undefined, false
		}
		big := v.decimal.BigInt()
		if !big.IsInt64() {
			return Undefined, false
		}
		n = big.Int64()
	case types.Utf8:
		parsed, diagErr := types.ParseInt(v.str)
		if diagErr != nil {
			return Undefined, false
		}
		n = parsed
	default:
		return Undefined, false
	}
	if n < min || n > max {
		return Undefined, false
	}
	switch target {
	case types.Int1:
		return Int1(int8(n)), true
	case types.Int2:
		return Int2(int16(n)), true
	case types.Int4:
		return Int4(int32(n)), true
	default:
		return Int8v(n), true
	}
}

func convertToUnsignedInt(v Value, target types.Type, max uint64) (Value, bool) {
	var n uint64
	switch v.typ {
	case types.Bool:
		if v.b {
			n = 1
		}
	case types.Int1, types.Int2, types.Int4, types.Int8:
		if v.i64 < 0 {
			return Undefined, false
		}
		n = uint64(v.i64)
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		n = v.u64
	case types.Float4:
		f := float64(v.f32)
		if f != math.Trunc(f) || f < 0 || f > float64(max) {
			return Undefined, false
		}
		n = uint64(f)
	case types.Float8:
		f := v.f64
		if f != math.Trunc(f) || f < 0 || f > float64(max) {
			return Undefined, false
		}
		n = uint64(f)
	case types.Int16, types.Int:
		if v.bigInt.Sign() < 0 || !v.bigInt.IsUint64() {
			return Undefined, false
		}
		n = v.bigInt.Uint64()
	case types.Uint16, types.Uint:
		b := v.bigUint.ToBig()
		if !b.IsUint64() {
			return Undefined, false
		}
		n = b.Uint64()
	case types.Utf8:
		parsed, diagErr := types.ParseUint(v.str)
		if diagErr != nil {
			return Undefined, false
		}
		n = parsed
	default:
		return Undefined, false
	}
	if n > max {
		return Undefined, false
	}
	switch target {
	case types.Uint1:
		return Uint1(uint8(n)), true
	case types.Uint2:
		return Uint2(uint16(n)), true
	case types.Uint4:
		return Uint4(uint32(n)), true
	default:
		return Uint8v(n), true
	}
}

func convertToBigInt(v Value, target types.Type) (Value, bool) {
	b, ok := BigIntOf(v)
	if !ok {
		if v.typ == types.Float4 || v.typ == types.Float8 {
			f, _ := Float64Of(v)
			if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
				return Undefined, false
			}
			bi, _ := big.NewFloat(f).Int(nil)
			b = bi
		} else if v.typ == types.Decimal {
			if !v.decimal.Equal(v.decimal.Truncate(0)) {
				return Undefined, false
			}
			b = v.decimal.BigInt()
		} else {
			return Undefined, false
		}
	}
	if target == types.Int16 {
		if b.BitLen() > 127 {
			return Undefined, false
		}
	}
	return Value{typ: target, bigInt: new(big.Int).Set(b)}, true
}

func convertToBigUint(v Value, target types.Type) (Value, bool) {
	var b *big.Int
	switch v.typ {
	case types.Decimal:
		if !v.decimal.Equal(v.decimal.Truncate(0)) {
			return Undefined, false
		}
		b = v.decimal.BigInt()
	case types.Float4, types.Float8:
		f, _ := Float64Of(v)
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return Undefined, false
		}
		bi, _ := big.NewFloat(f).Int(nil)
		b = bi
	default:
		var ok bool
		b, ok = BigIntOf(v)
		if !ok {
			return Undefined, false
		}
	}
	u, ok := NewUint256FromBig(b)
	if !ok {
		return Undefined, false
	}
	if target == types.Uint16 && b.BitLen() > 128 {
		return Undefined, false
	}
	return Value{typ: target, bigUint: u}, true
}

func convertToFloat32(v Value) (Value, bool) {
	f, ok := Float64Of(v)
	if !ok {
		if v.typ == types.Utf8 {
			parsed, diagErr := types.ParseFloat(v.str)
			if diagErr != nil {
				return Undefined, false
			}
			f = parsed
		} else {
			return Undefined, false
		}
	}
	if math.IsNaN(f) {
		return Float4(types.CanonicalNaN32), true
	}
	if math.Abs(f) > math.MaxFloat32 {
		return Undefined, false
	}
	return Float4(float32(f)), true
}

func convertToFloat64(v Value) (Value, bool) {
	f, ok := Float64Of(v)
	if !ok {
		if v.typ == types.Utf8 {
			parsed, diagErr := types.ParseFloat(v.str)
			if diagErr != nil {
				return Undefined, false
			}
			f = parsed
		} else {
			return Undefined, false
		}
	}
	return Float8(f), true
}

func convertToDecimal(v Value) (Value, bool) {
	if v.typ == types.Utf8 {
		d, err := decimal.NewFromString(v.str)
		if err != nil {
			return Undefined, false
		}
		return DecimalV(d), true
	}
	d, ok := DecimalOf(v)
	if !ok {
		return Undefined, false
	}
	return DecimalV(d), true
}

func convertToUtf8(v Value) (Value, bool) {
	switch v.typ {
	case types.Bool:
		return Utf8(fmt.Sprintf("%t", v.b)), true
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return Utf8(fmt.Sprintf("%d", v.i64)), true
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8:
		return Utf8(fmt.Sprintf("%d", v.u64)), true
	case types.Float4:
		return Utf8(fmt.Sprintf("%g", v.f32)), true
	case types.Float8:
		return Utf8(fmt.Sprintf("%g", v.f64)), true
	case types.Int16, types.Int:
		return Utf8(v.bigInt.String()), true
	case types.Uint16, types.Uint:
		return Utf8(v.bigUint.String()), true
	case types.Decimal:
		return Utf8(v.decimal.String()), true
	default:
		return Undefined, false
	}
}
