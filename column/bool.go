// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// BoolContainer backs a Bool column.
type BoolContainer struct {
	validity
	data CowVec[bool]
}

// NewBool builds a BoolContainer from a fully-defined slice.
func NewBool(data []bool) *BoolContainer {
	return &BoolContainer{
		validity: validity{bits: bitvec.AllSet(uint(len(data)))},
		data:     NewCowVec(append([]bool(nil), data...)),
	}
}

// NewBoolWithValidity builds a BoolContainer with an explicit validity vector.
func NewBoolWithValidity(data []bool, v *bitvec.Vec) *BoolContainer {
	return &BoolContainer{validity: validity{bits: v}, data: NewCowVec(append([]bool(nil), data...))}
}

// NewBoolWithCapacity builds an empty BoolContainer with preallocated storage.
func NewBoolWithCapacity(capacity int) *BoolContainer {
	return &BoolContainer{validity: validity{bits: bitvec.New(0)}, data: NewCowVec(make([]bool, 0, capacity))}
}

func (c *BoolContainer) Type() types.Type { return types.Bool }
func (c *BoolContainer) Len() int         { return c.data.Len() }

func (c *BoolContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.Bool(c.data.View()[i])
}

func (c *BoolContainer) PushValue(v value.Value) {
	c.data.Append(v.AsBool())
	c.pushValid(true)
}

func (c *BoolContainer) PushUndefined() {
	c.data.Append(false)
	c.pushValid(false)
}

func (c *BoolContainer) Clone() Data {
	return &BoolContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}

func (c *BoolContainer) Slice(start, end int) Data {
	out := NewBoolWithCapacity(end - start)
	out.data = NewCowVec(append([]bool(nil), c.data.View()[start:end]...))
	out.bits = c.bits.Slice(uint(start), uint(end))
	return out
}

// Raw exposes the backing slice for the fast-path hot loop (C5 kernels):
// callers must first confirm IsFullyDefined.
func (c *BoolContainer) Raw() []bool { return c.data.View() }
