// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package value

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/types"
)

// Op identifies one arithmetic operator. The kernel package (C5) dispatches
// column pairs through here one row at a time; this is where the actual
// checked primitive lives, grounded on the overflow-checked style of
// erigon-lib/common/math.SafeAdd/SafeMul (bits.Add64/bits.Mul64).
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

// Arith computes a Op b, promoting both operands to types.Promote(a, b)
// first. It returns Undefined and a non-nil Diagnostic when the checked primitive
// detects overflow, division by zero, or another domain error — the caller
// (kernel) pushes Undefined at that row and files the diagnostic rather
// than aborting the whole column (spec.md §4.5 "On overflow,
// divide-by-zero, or domain error... returns None").
func Arith(op Op, a, b Value, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	result := types.Promote(a.Type(), b.Type())

	switch {
	case result.IsFloat():
		return arithFloat(op, a, b, result, fragment)
	case result == types.Decimal:
		return arithDecimal(op, a, b, fragment)
	case result == types.Int || result == types.Int16:
		return arithBigInt(op, a, b, fragment)
	case result == types.Uint || result == types.Uint16:
		return arithBigUint(op, a, b, fragment)
	case result.IsSignedInt():
		return arithSigned(op, a, b, result, fragment)
	case result.IsUnsignedInt():
		return arithUnsigned(op, a, b, result, fragment)
	default:
		return Undefined, diag.New(diag.CodeTypeMismatch, "operands are not numeric").WithFragment(fragment)
	}
}

// uint64Of converts v to a uint64 when it fits without loss, handling mixed
// signed/unsigned operands the same way BigIntOf does, without ever calling
// a panicking As* accessor on the wrong signedness.
func uint64Of(v Value) (uint64, bool) {
	n, ok := BigIntOf(v)
	if !ok || n.Sign() < 0 || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

func float64Of(v Value) float64 {
	switch v.Type() {
	case types.Float4:
		return float64(v.AsFloat32())
	case types.Float8:
		return v.AsFloat64()
	default:
		f, _ := Float64Of(v)
		return f
	}
}

func arithFloat(op Op, a, b Value, result types.Type, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, y := float64Of(a), float64Of(b)
	var r float64
	switch op {
	case OpAdd:
		r = x + y
	case OpSub:
		r = x - y
	case OpMul:
		r = x * y
	case OpDiv:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = x / y
	case OpRem:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = math.Mod(x, y)
	}
	if result == types.Float4 {
		return Float4(float32(r)), nil
	}
	return Float8(r), nil
}

func arithDecimal(op Op, a, b Value, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, _ := DecimalOf(a)
	y, _ := DecimalOf(b)
	switch op {
	case OpAdd:
		return DecimalV(x.Add(y)), nil
	case OpSub:
		return DecimalV(x.Sub(y)), nil
	case OpMul:
		return DecimalV(x.Mul(y)), nil
	case OpDiv:
		if y.IsZero() {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		return DecimalV(x.Div(y)), nil
	case OpRem:
		if y.IsZero() {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		return DecimalV(x.Mod(y)), nil
	}
	return Undefined, diag.New(diag.CodeUnsupportedOperation, "unsupported decimal operator").WithFragment(fragment)
}

func arithBigInt(op Op, a, b Value, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, _ := BigIntOf(a)
	y, _ := BigIntOf(b)
	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(x, y)
	case OpSub:
		r.Sub(x, y)
	case OpMul:
		r.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r.Quo(x, y)
	case OpRem:
		if y.Sign() == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r.Rem(x, y)
	}
	return IntBig(r), nil
}

func arithBigUint(op Op, a, b Value, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, xok := NewUint256FromBig(mustBigUint(a))
	y, yok := NewUint256FromBig(mustBigUint(b))
	if !xok || !yok {
		return Undefined, diag.New(diag.CodeTypeMismatch, "value does not fit in uint256 domain").WithFragment(fragment)
	}
	r := new(uint256.Int)
	switch op {
	case OpAdd:
		if _, overflow := r.AddOverflow(x, y); overflow {
			return Undefined, diag.New(diag.CodeArithOverflow, "unsigned addition overflow").WithFragment(fragment)
		}
	case OpSub:
		if _, overflow := r.SubOverflow(x, y); overflow {
			return Undefined, diag.New(diag.CodeArithOverflow, "unsigned subtraction overflow").WithFragment(fragment)
		}
	case OpMul:
		if _, overflow := r.MulOverflow(x, y); overflow {
			return Undefined, diag.New(diag.CodeArithOverflow, "unsigned multiplication overflow").WithFragment(fragment)
		}
	case OpDiv:
		if y.IsZero() {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r.Div(x, y)
	case OpRem:
		if y.IsZero() {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r.Mod(x, y)
	}
	return UintBig(r), nil
}

func mustBigUint(v Value) *big.Int {
	switch v.Type() {
	case types.Uint, types.Uint16:
		return v.AsBigUint().ToBig()
	default:
		n, _ := BigIntOf(v)
		return n
	}
}

func arithSigned(op Op, a, b Value, result types.Type, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, xok := Int64Of(a)
	y, yok := Int64Of(b)
	if !xok || !yok {
		return Undefined, diag.New(diag.CodeArithOverflow, "signed integer overflow").WithFragment(fragment)
	}
	min, max := signedRange(result)

	var r int64
	var overflow bool
	switch op {
	case OpAdd:
		r, overflow = addInt64(x, y)
	case OpSub:
		r, overflow = subInt64(x, y)
	case OpMul:
		r, overflow = mulInt64(x, y)
	case OpDiv:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = x / y
	case OpRem:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = x % y
	}
	if overflow || r < min || r > max {
		return Undefined, diag.New(diag.CodeArithOverflow, "signed integer overflow").WithFragment(fragment)
	}
	return wrapSigned(result, r), nil
}

func arithUnsigned(op Op, a, b Value, result types.Type, fragment diag.Fragment) (Value, *diag.Diagnostic) {
	x, xok := uint64Of(a)
	y, yok := uint64Of(b)
	if !xok || !yok {
		return Undefined, diag.New(diag.CodeArithOverflow, "unsigned integer overflow").WithFragment(fragment)
	}
	_, max := unsignedRange(result)

	var r uint64
	var overflow bool
	switch op {
	case OpAdd:
		r, overflow = SafeAddUint64(x, y)
	case OpSub:
		if y > x {
			return Undefined, diag.New(diag.CodeArithOverflow, "unsigned subtraction underflow").WithFragment(fragment)
		}
		r = x - y
	case OpMul:
		r, overflow = SafeMulUint64(x, y)
	case OpDiv:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = x / y
	case OpRem:
		if y == 0 {
			return Undefined, diag.New(diag.CodeArithDivByZero, "division by zero").WithFragment(fragment)
		}
		r = x % y
	}
	if overflow || r > max {
		return Undefined, diag.New(diag.CodeArithOverflow, "unsigned integer overflow").WithFragment(fragment)
	}
	return wrapUnsigned(result, r), nil
}

// SafeAddUint64 returns x+y and reports overflow, grounded directly on
// erigon-lib/common/math.SafeAdd (bits.Add64).
func SafeAddUint64(x, y uint64) (uint64, bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut != 0
}

// SafeMulUint64 returns x*y and reports overflow, grounded directly on
// erigon-lib/common/math.SafeMul (bits.Mul64).
func SafeMulUint64(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

func addInt64(x, y int64) (int64, bool) {
	r := x + y
	overflow := (y > 0 && r < x) || (y < 0 && r > x)
	return r, overflow
}

func subInt64(x, y int64) (int64, bool) {
	r := x - y
	overflow := (y < 0 && r < x) || (y > 0 && r > x)
	return r, overflow
}

func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	r := x * y
	overflow := r/y != x
	return r, overflow
}

func signedRange(t types.Type) (min, max int64) {
	switch t {
	case types.Int1:
		return math.MinInt8, math.MaxInt8
	case types.Int2:
		return math.MinInt16, math.MaxInt16
	case types.Int4:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func unsignedRange(t types.Type) (min, max uint64) {
	switch t {
	case types.Uint1:
		return 0, math.MaxUint8
	case types.Uint2:
		return 0, math.MaxUint16
	case types.Uint4:
		return 0, math.MaxUint32
	default:
		return 0, math.MaxUint64
	}
}

func wrapSigned(t types.Type, v int64) Value {
	switch t {
	case types.Int1:
		return Int1(int8(v))
	case types.Int2:
		return Int2(int16(v))
	case types.Int4:
		return Int4(int32(v))
	default:
		return Int8v(v)
	}
}

func wrapUnsigned(t types.Type, v uint64) Value {
	switch t {
	case types.Uint1:
		return Uint1(uint8(v))
	case types.Uint2:
		return Uint2(uint16(v))
	case types.Uint4:
		return Uint4(uint32(v))
	default:
		return Uint8v(v)
	}
}
