// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Number is the set of fixed-width Go primitives backing the fixed-width
// integer and float Type variants.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// NumberContainer backs every fixed-width numeric column (Int1/2/4/8,
// Uint1/2/4/8, Float4/8): one generic container parameterized over the Go
// primitive, since Go has no sum-type macro/codegen step the way the
// original uses a per-width Rust trait impl.
type NumberContainer[T Number] struct {
	validity
	data CowVec[T]
	typ  types.Type
	wrap func(T) value.Value
	un   func(value.Value) T
}

func newNumberContainer[T Number](typ types.Type, data []T, v *bitvec.Vec, wrap func(T) value.Value, un func(value.Value) T) *NumberContainer[T] {
	return &NumberContainer[T]{validity: validity{bits: v}, data: NewCowVec(data), typ: typ, wrap: wrap, un: un}
}

func (c *NumberContainer[T]) Type() types.Type { return c.typ }
func (c *NumberContainer[T]) Len() int         { return c.data.Len() }

func (c *NumberContainer[T]) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return c.wrap(c.data.View()[i])
}

func (c *NumberContainer[T]) PushValue(v value.Value) {
	c.data.Append(c.un(v))
	c.pushValid(true)
}

func (c *NumberContainer[T]) PushUndefined() {
	var zero T
	c.data.Append(zero)
	c.pushValid(false)
}

func (c *NumberContainer[T]) Clone() Data {
	return &NumberContainer[T]{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), typ: c.typ, wrap: c.wrap, un: c.un}
}

func (c *NumberContainer[T]) Slice(start, end int) Data {
	return &NumberContainer[T]{
		validity: validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:     NewCowVec(append([]T(nil), c.data.View()[start:end]...)),
		typ:      c.typ,
		wrap:     c.wrap,
		un:       c.un,
	}
}

// Raw exposes the backing slice for the null-check-free hot loop (C5
// kernels): callers must first confirm IsFullyDefined.
func (c *NumberContainer[T]) Raw() []T { return c.data.View() }

// Constructors, one per fixed-width numeric Type.

func NewInt1(data []int8) *NumberContainer[int8] {
	return newNumberContainer(types.Int1, append([]int8(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v int8) value.Value { return value.Int1(v) },
		func(v value.Value) int8 { return int8(v.AsInt64()) })
}
func NewInt1WithValidity(data []int8, v *bitvec.Vec) *NumberContainer[int8] {
	return newNumberContainer(types.Int1, append([]int8(nil), data...), v,
		func(v int8) value.Value { return value.Int1(v) },
		func(v value.Value) int8 { return int8(v.AsInt64()) })
}

func NewInt2(data []int16) *NumberContainer[int16] {
	return newNumberContainer(types.Int2, append([]int16(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v int16) value.Value { return value.Int2(v) },
		func(v value.Value) int16 { return int16(v.AsInt64()) })
}
func NewInt2WithValidity(data []int16, v *bitvec.Vec) *NumberContainer[int16] {
	return newNumberContainer(types.Int2, append([]int16(nil), data...), v,
		func(v int16) value.Value { return value.Int2(v) },
		func(v value.Value) int16 { return int16(v.AsInt64()) })
}

func NewInt4(data []int32) *NumberContainer[int32] {
	return newNumberContainer(types.Int4, append([]int32(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v int32) value.Value { return value.Int4(v) },
		func(v value.Value) int32 { return int32(v.AsInt64()) })
}
func NewInt4WithValidity(data []int32, v *bitvec.Vec) *NumberContainer[int32] {
	return newNumberContainer(types.Int4, append([]int32(nil), data...), v,
		func(v int32) value.Value { return value.Int4(v) },
		func(v value.Value) int32 { return int32(v.AsInt64()) })
}

func NewInt8(data []int64) *NumberContainer[int64] {
	return newNumberContainer(types.Int8, append([]int64(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v int64) value.Value { return value.Int8v(v) },
		func(v value.Value) int64 { return v.AsInt64() })
}
func NewInt8WithValidity(data []int64, v *bitvec.Vec) *NumberContainer[int64] {
	return newNumberContainer(types.Int8, append([]int64(nil), data...), v,
		func(v int64) value.Value { return value.Int8v(v) },
		func(v value.Value) int64 { return v.AsInt64() })
}

func NewUint1(data []uint8) *NumberContainer[uint8] {
	return newNumberContainer(types.Uint1, append([]uint8(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v uint8) value.Value { return value.Uint1(v) },
		func(v value.Value) uint8 { return uint8(v.AsUint64()) })
}
func NewUint1WithValidity(data []uint8, v *bitvec.Vec) *NumberContainer[uint8] {
	return newNumberContainer(types.Uint1, append([]uint8(nil), data...), v,
		func(v uint8) value.Value { return value.Uint1(v) },
		func(v value.Value) uint8 { return uint8(v.AsUint64()) })
}

func NewUint2(data []uint16) *NumberContainer[uint16] {
	return newNumberContainer(types.Uint2, append([]uint16(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v uint16) value.Value { return value.Uint2(v) },
		func(v value.Value) uint16 { return uint16(v.AsUint64()) })
}
func NewUint2WithValidity(data []uint16, v *bitvec.Vec) *NumberContainer[uint16] {
	return newNumberContainer(types.Uint2, append([]uint16(nil), data...), v,
		func(v uint16) value.Value { return value.Uint2(v) },
		func(v value.Value) uint16 { return uint16(v.AsUint64()) })
}

func NewUint4(data []uint32) *NumberContainer[uint32] {
	return newNumberContainer(types.Uint4, append([]uint32(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v uint32) value.Value { return value.Uint4(v) },
		func(v value.Value) uint32 { return uint32(v.AsUint64()) })
}
func NewUint4WithValidity(data []uint32, v *bitvec.Vec) *NumberContainer[uint32] {
	return newNumberContainer(types.Uint4, append([]uint32(nil), data...), v,
		func(v uint32) value.Value { return value.Uint4(v) },
		func(v value.Value) uint32 { return uint32(v.AsUint64()) })
}

func NewUint8(data []uint64) *NumberContainer[uint64] {
	return newNumberContainer(types.Uint8, append([]uint64(nil), data...), bitvec.AllSet(uint(len(data))),
		func(v uint64) value.Value { return value.Uint8v(v) },
		func(v value.Value) uint64 { return v.AsUint64() })
}
func NewUint8WithValidity(data []uint64, v *bitvec.Vec) *NumberContainer[uint64] {
	return newNumberContainer(types.Uint8, append([]uint64(nil), data...), v,
		func(v uint64) value.Value { return value.Uint8v(v) },
		func(v value.Value) uint64 { return v.AsUint64() })
}

func NewFloat4(data []float32) *NumberContainer[float32] {
	canon := make([]float32, len(data))
	for i, f := range data {
		canon[i] = types.CanonicalizeFloat32(f)
	}
	return newNumberContainer(types.Float4, canon, bitvec.AllSet(uint(len(data))),
		func(v float32) value.Value { return value.Float4(v) },
		func(v value.Value) float32 { return v.AsFloat32() })
}
func NewFloat4WithValidity(data []float32, v *bitvec.Vec) *NumberContainer[float32] {
	canon := make([]float32, len(data))
	for i, f := range data {
		canon[i] = types.CanonicalizeFloat32(f)
	}
	return newNumberContainer(types.Float4, canon, v,
		func(v float32) value.Value { return value.Float4(v) },
		func(v value.Value) float32 { return v.AsFloat32() })
}

func NewFloat8(data []float64) *NumberContainer[float64] {
	canon := make([]float64, len(data))
	for i, f := range data {
		canon[i] = types.CanonicalizeFloat64(f)
	}
	return newNumberContainer(types.Float8, canon, bitvec.AllSet(uint(len(data))),
		func(v float64) value.Value { return value.Float8(v) },
		func(v value.Value) float64 { return v.AsFloat64() })
}
func NewFloat8WithValidity(data []float64, v *bitvec.Vec) *NumberContainer[float64] {
	canon := make([]float64, len(data))
	for i, f := range data {
		canon[i] = types.CanonicalizeFloat64(f)
	}
	return newNumberContainer(types.Float8, canon, v,
		func(v float64) value.Value { return value.Float8(v) },
		func(v value.Value) float64 { return v.AsFloat64() })
}
