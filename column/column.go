// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Column is one named, typed, value-parallel vector within a Columns batch
// (spec.md §3 "Column"). It owns a Data payload and lazily specializes from
// Undefined to a concrete typed container on the first defined Push, mirroring
// how the VM builds result columns one row at a time without knowing the
// eventual type up front (spec.md §4.2).
type Column struct {
	Name string
	data Data
}

// WithCapacity returns an empty Column of the given logical type, ready to
// accept Push calls.
func WithCapacity(name string, t types.Type, capacity int) *Column {
	return &Column{Name: name, data: newTypedEmpty(t, capacity)}
}

// AllUndefined returns a Column of n Undefined rows; its type specializes on
// the first defined Push.
func AllUndefined(name string, n int) *Column {
	return &Column{Name: name, data: NewUndefined(n)}
}

// FromData wraps an already-built Data payload (used by the row/index codecs
// and kernels, which build typed containers directly).
func FromData(name string, data Data) *Column { return &Column{Name: name, data: data} }

func (c *Column) Type() types.Type      { return c.data.Type() }
func (c *Column) Len() int              { return c.data.Len() }
func (c *Column) Get(i int) value.Value { return c.data.Get(i) }
func (c *Column) IsValid(i int) bool    { return c.data.IsValid(i) }
func (c *Column) IsFullyDefined() bool  { return c.data.IsFullyDefined() }
func (c *Column) Data() Data            { return c.data }

func (c *Column) IsNumber() bool   { return c.Type().IsNumber() }
func (c *Column) IsFloat() bool    { return c.Type().IsFloat() }
func (c *Column) IsUtf8() bool     { return c.Type().IsUtf8() }
func (c *Column) IsTemporal() bool { return c.Type().IsTemporal() }
func (c *Column) IsUuid() bool     { return c.Type().IsUuid() }

// Push appends one value. If the column is still Undefined and v carries a
// concrete type, the column specializes: every prior row becomes an
// undefined slot of the new container, and v becomes the first defined row
// (spec.md §4.2 "a column specializes from Undefined to a concrete typed
// container on the first defined push").
func (c *Column) Push(v value.Value) {
	if u, ok := c.data.(*UndefinedData); ok {
		if v.IsUndefined() {
			u.PushUndefined()
			return
		}
		specialized := newTypedEmpty(v.Type(), u.Len()+1)
		for i := 0; i < u.Len(); i++ {
			specialized.PushUndefined()
		}
		specialized.PushValue(v)
		c.data = specialized
		return
	}
	if v.IsUndefined() {
		c.data.PushUndefined()
		return
	}
	c.data.PushValue(v)
}

func (c *Column) PushUndefined() { c.data.PushUndefined() }

// Clone returns a column sharing copy-on-write storage with the receiver.
func (c *Column) Clone() *Column { return &Column{Name: c.Name, data: c.data.Clone()} }

// Slice returns a new Column covering rows [start, end).
func (c *Column) Slice(start, end int) *Column {
	return &Column{Name: c.Name, data: c.data.Slice(start, end)}
}

// newTypedEmpty returns an empty, zero-length Data of the given type, with
// capacity preallocated where the container supports it.
func newTypedEmpty(t types.Type, capacity int) Data {
	switch t {
	case types.Undefined:
		return NewUndefined(0)
	case types.Bool:
		return NewBoolWithCapacity(capacity)
	case types.Int1:
		return NewInt1WithValidity(make([]int8, 0, capacity), bitvec.New(0))
	case types.Int2:
		return NewInt2WithValidity(make([]int16, 0, capacity), bitvec.New(0))
	case types.Int4:
		return NewInt4WithValidity(make([]int32, 0, capacity), bitvec.New(0))
	case types.Int8:
		return NewInt8WithValidity(make([]int64, 0, capacity), bitvec.New(0))
	case types.Int16:
		return newBigIntContainer(types.Int16, make([]*big.Int, 0, capacity), bitvec.New(0))
	case types.Int:
		return newBigIntContainer(types.Int, make([]*big.Int, 0, capacity), bitvec.New(0))
	case types.Uint1:
		return NewUint1WithValidity(make([]uint8, 0, capacity), bitvec.New(0))
	case types.Uint2:
		return NewUint2WithValidity(make([]uint16, 0, capacity), bitvec.New(0))
	case types.Uint4:
		return NewUint4WithValidity(make([]uint32, 0, capacity), bitvec.New(0))
	case types.Uint8:
		return NewUint8WithValidity(make([]uint64, 0, capacity), bitvec.New(0))
	case types.Uint16:
		return newBigUintContainer(types.Uint16, make([]*uint256.Int, 0, capacity), bitvec.New(0))
	case types.Uint:
		return newBigUintContainer(types.Uint, make([]*uint256.Int, 0, capacity), bitvec.New(0))
	case types.Float4:
		return NewFloat4WithValidity(make([]float32, 0, capacity), bitvec.New(0))
	case types.Float8:
		return NewFloat8WithValidity(make([]float64, 0, capacity), bitvec.New(0))
	case types.Decimal:
		return NewDecimalWithValidity(make([]decimal.Decimal, 0, capacity), bitvec.New(0), 0, 0)
	case types.Utf8:
		return NewUtf8WithValidity(make([]string, 0, capacity), bitvec.New(0), 0)
	case types.Blob:
		return NewBlobWithValidity(make([][]byte, 0, capacity), bitvec.New(0), 0)
	case types.Date:
		return NewDateWithValidity(make([]types.Date, 0, capacity), bitvec.New(0))
	case types.DateTime:
		return NewDateTimeWithValidity(make([]types.DateTime, 0, capacity), bitvec.New(0))
	case types.Time:
		return NewTimeWithValidity(make([]types.Time, 0, capacity), bitvec.New(0))
	case types.Interval:
		return NewIntervalWithValidity(make([]types.Interval, 0, capacity), bitvec.New(0))
	case types.RowNumber:
		return NewRowNumber(make([]uint64, 0, capacity))
	case types.Uuid4:
		return NewUuid4WithValidity(make([]types.Uuid4, 0, capacity), bitvec.New(0))
	case types.Uuid7:
		return NewUuid7WithValidity(make([]types.Uuid7, 0, capacity), bitvec.New(0))
	case types.IdentityId:
		return NewIdentityIdWithValidity(make([]types.IdentityId, 0, capacity), bitvec.New(0))
	default:
		panic("column: unsupported type " + t.String())
	}
}
