// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package value implements the scalar Value union (spec.md §3 "Scalar
// value") and the safe coercions over it (spec.md §4.1). Idiomatic Go has
// no sum types; following the teacher's habit of a single tagged struct for
// a hot-path value (e.g. uint256.Int, hexutil wrappers) rather than
// interface{}, Value is one struct carrying every payload field guarded by
// an explicit Type tag.
package value

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/types"
)

// Value is a tagged union: exactly one payload field is meaningful,
// selected by Type. The zero Value is Undefined.
type Value struct {
	typ types.Type

	b        bool
	i64      int64
	u64      uint64
	f32      float32
	f64      float64
	bigInt   *big.Int
	bigUint  *uint256.Int
	decimal  decimal.Decimal
	str      string
	blob     []byte
	date     types.Date
	datetime types.DateTime
	time     types.Time
	interval types.Interval
	uuid4    types.Uuid4
	uuid7    types.Uuid7
	identity types.IdentityId
}

// Undefined is the null/missing marker value.
var Undefined = Value{typ: types.Undefined}

// Type reports the value's type tag.
func (v Value) Type() types.Type { return v.typ }

// IsUndefined reports whether v is the Undefined marker.
func (v Value) IsUndefined() bool { return v.typ == types.Undefined }

func Bool(b bool) Value { return Value{typ: types.Bool, b: b} }

func Int1(i int8) Value   { return Value{typ: types.Int1, i64: int64(i)} }
func Int2(i int16) Value  { return Value{typ: types.Int2, i64: int64(i)} }
func Int4(i int32) Value  { return Value{typ: types.Int4, i64: int64(i)} }
func Int8v(i int64) Value { return Value{typ: types.Int8, i64: i} }

func Int16(i *big.Int) Value { return Value{typ: types.Int16, bigInt: i} }

func Uint1(u uint8) Value   { return Value{typ: types.Uint1, u64: uint64(u)} }
func Uint2(u uint16) Value  { return Value{typ: types.Uint2, u64: uint64(u)} }
func Uint4(u uint32) Value  { return Value{typ: types.Uint4, u64: uint64(u)} }
func Uint8v(u uint64) Value { return Value{typ: types.Uint8, u64: u} }

func Uint16(u *uint256.Int) Value { return Value{typ: types.Uint16, bigUint: u} }

func Float4(f float32) Value { return Value{typ: types.Float4, f32: types.CanonicalizeFloat32(f)} }
func Float8(f float64) Value { return Value{typ: types.Float8, f64: types.CanonicalizeFloat64(f)} }

func Utf8(s string) Value  { return Value{typ: types.Utf8, str: s} }
func Blob(b []byte) Value  { return Value{typ: types.Blob, blob: b} }
func IntBig(i *big.Int) Value { return Value{typ: types.Int, bigInt: i} }
func UintBig(u *uint256.Int) Value { return Value{typ: types.Uint, bigUint: u} }
func DecimalV(d decimal.Decimal) Value { return Value{typ: types.Decimal, decimal: d} }

func DateV(d types.Date) Value         { return Value{typ: types.Date, date: d} }
func DateTimeV(dt types.DateTime) Value { return Value{typ: types.DateTime, datetime: dt} }
func TimeV(t types.Time) Value         { return Value{typ: types.Time, time: t} }
func IntervalV(iv types.Interval) Value { return Value{typ: types.Interval, interval: iv} }

func RowNumber(n uint64) Value { return Value{typ: types.RowNumber, u64: n} }
func Uuid4V(u types.Uuid4) Value { return Value{typ: types.Uuid4, uuid4: u} }
func Uuid7V(u types.Uuid7) Value { return Value{typ: types.Uuid7, uuid7: u} }
func IdentityIdV(id types.IdentityId) Value { return Value{typ: types.IdentityId, identity: id} }

// The As* accessors panic if called against the wrong Type tag: callers are
// expected to dispatch on Type() first, exactly like every other tag-driven
// access point in this module (spec.md §4.5 "dispatch on the (left_type,
// right_type) pair").

func (v Value) AsBool() bool { v.expect(types.Bool); return v.b }

func (v Value) AsInt64() int64 {
	switch v.typ {
	case types.Int1, types.Int2, types.Int4, types.Int8:
		return v.i64
	default:
		panic(wrongType("AsInt64", v.typ))
	}
}

func (v Value) AsUint64() uint64 {
	switch v.typ {
	case types.Uint1, types.Uint2, types.Uint4, types.Uint8, types.RowNumber:
		return v.u64
	default:
		panic(wrongType("AsUint64", v.typ))
	}
}

func (v Value) AsFloat32() float32 { v.expect(types.Float4); return v.f32 }
func (v Value) AsFloat64() float64 { v.expect(types.Float8); return v.f64 }

func (v Value) AsBigInt() *big.Int {
	if v.typ != types.Int && v.typ != types.Int16 {
		panic(wrongType("AsBigInt", v.typ))
	}
	return v.bigInt
}

func (v Value) AsBigUint() *uint256.Int {
	if v.typ != types.Uint && v.typ != types.Uint16 {
		panic(wrongType("AsBigUint", v.typ))
	}
	return v.bigUint
}

func (v Value) AsDecimal() decimal.Decimal { v.expect(types.Decimal); return v.decimal }
func (v Value) AsUtf8() string             { v.expect(types.Utf8); return v.str }
func (v Value) AsBlob() []byte             { v.expect(types.Blob); return v.blob }
func (v Value) AsDate() types.Date         { v.expect(types.Date); return v.date }
func (v Value) AsDateTime() types.DateTime { v.expect(types.DateTime); return v.datetime }
func (v Value) AsTime() types.Time         { v.expect(types.Time); return v.time }
func (v Value) AsInterval() types.Interval { v.expect(types.Interval); return v.interval }
func (v Value) AsUuid4() types.Uuid4       { v.expect(types.Uuid4); return v.uuid4 }
func (v Value) AsUuid7() types.Uuid7       { v.expect(types.Uuid7); return v.uuid7 }
func (v Value) AsIdentityId() types.IdentityId { v.expect(types.IdentityId); return v.identity }

func (v Value) expect(t types.Type) {
	if v.typ != t {
		panic(wrongType("Value accessor", v.typ))
	}
}

func wrongType(op string, got types.Type) string {
	return op + ": wrong type tag " + got.String()
}
