// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Uuid4Container backs a Uuid4 column.
type Uuid4Container struct {
	validity
	data CowVec[types.Uuid4]
}

func NewUuid4(data []types.Uuid4) *Uuid4Container {
	return &Uuid4Container{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.Uuid4(nil), data...))}
}
func NewUuid4WithValidity(data []types.Uuid4, v *bitvec.Vec) *Uuid4Container {
	return &Uuid4Container{validity: validity{bits: v}, data: NewCowVec(append([]types.Uuid4(nil), data...))}
}
func (c *Uuid4Container) Type() types.Type { return types.Uuid4 }
func (c *Uuid4Container) Len() int         { return c.data.Len() }
func (c *Uuid4Container) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.Uuid4V(c.data.View()[i])
}
func (c *Uuid4Container) PushValue(v value.Value) {
	c.data.Append(v.AsUuid4())
	c.pushValid(true)
}
func (c *Uuid4Container) PushUndefined() {
	c.data.Append(types.Uuid4{})
	c.pushValid(false)
}
func (c *Uuid4Container) Clone() Data {
	return &Uuid4Container{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *Uuid4Container) Slice(start, end int) Data {
	return &Uuid4Container{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.Uuid4(nil), c.data.View()[start:end]...))}
}
func (c *Uuid4Container) Raw() []types.Uuid4 { return c.data.View() }

// Uuid7Container backs a Uuid7 column.
type Uuid7Container struct {
	validity
	data CowVec[types.Uuid7]
}

func NewUuid7(data []types.Uuid7) *Uuid7Container {
	return &Uuid7Container{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.Uuid7(nil), data...))}
}
func NewUuid7WithValidity(data []types.Uuid7, v *bitvec.Vec) *Uuid7Container {
	return &Uuid7Container{validity: validity{bits: v}, data: NewCowVec(append([]types.Uuid7(nil), data...))}
}
func (c *Uuid7Container) Type() types.Type { return types.Uuid7 }
func (c *Uuid7Container) Len() int         { return c.data.Len() }
func (c *Uuid7Container) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.Uuid7V(c.data.View()[i])
}
func (c *Uuid7Container) PushValue(v value.Value) {
	c.data.Append(v.AsUuid7())
	c.pushValid(true)
}
func (c *Uuid7Container) PushUndefined() {
	c.data.Append(types.Uuid7{})
	c.pushValid(false)
}
func (c *Uuid7Container) Clone() Data {
	return &Uuid7Container{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *Uuid7Container) Slice(start, end int) Data {
	return &Uuid7Container{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.Uuid7(nil), c.data.View()[start:end]...))}
}
func (c *Uuid7Container) Raw() []types.Uuid7 { return c.data.View() }

// IdentityIdContainer backs an IdentityId column.
type IdentityIdContainer struct {
	validity
	data CowVec[types.IdentityId]
}

func NewIdentityId(data []types.IdentityId) *IdentityIdContainer {
	return &IdentityIdContainer{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.IdentityId(nil), data...))}
}
func NewIdentityIdWithValidity(data []types.IdentityId, v *bitvec.Vec) *IdentityIdContainer {
	return &IdentityIdContainer{validity: validity{bits: v}, data: NewCowVec(append([]types.IdentityId(nil), data...))}
}
func (c *IdentityIdContainer) Type() types.Type { return types.IdentityId }
func (c *IdentityIdContainer) Len() int         { return c.data.Len() }
func (c *IdentityIdContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.IdentityIdV(c.data.View()[i])
}
func (c *IdentityIdContainer) PushValue(v value.Value) {
	c.data.Append(v.AsIdentityId())
	c.pushValid(true)
}
func (c *IdentityIdContainer) PushUndefined() {
	c.data.Append(types.IdentityId{})
	c.pushValid(false)
}
func (c *IdentityIdContainer) Clone() Data {
	return &IdentityIdContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *IdentityIdContainer) Slice(start, end int) Data {
	return &IdentityIdContainer{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.IdentityId(nil), c.data.View()[start:end]...))}
}
func (c *IdentityIdContainer) Raw() []types.IdentityId { return c.data.View() }

// RowNumberContainer backs the RowNumber pseudo-column VM frames attach to
// every batch (spec.md GLOSSARY "RowNumber"): a dense uint64 sequence, never
// null, so it carries no validity bitmap of its own and always reports
// IsFullyDefined() true.
type RowNumberContainer struct {
	data CowVec[uint64]
}

func NewRowNumber(data []uint64) *RowNumberContainer {
	return &RowNumberContainer{data: NewCowVec(append([]uint64(nil), data...))}
}

func (c *RowNumberContainer) Type() types.Type        { return types.RowNumber }
func (c *RowNumberContainer) Len() int                { return c.data.Len() }
func (c *RowNumberContainer) IsValid(i int) bool      { return true }
func (c *RowNumberContainer) IsFullyDefined() bool    { return true }
func (c *RowNumberContainer) Get(i int) value.Value   { return value.RowNumber(c.data.View()[i]) }
func (c *RowNumberContainer) PushValue(v value.Value) { c.data.Append(v.AsUint64()) }
func (c *RowNumberContainer) PushUndefined() {
	panic("column: RowNumber is never undefined")
}
func (c *RowNumberContainer) Clone() Data { return &RowNumberContainer{data: c.data.Clone()} }
func (c *RowNumberContainer) Slice(start, end int) Data {
	return &RowNumberContainer{data: NewCowVec(append([]uint64(nil), c.data.View()[start:end]...))}
}
func (c *RowNumberContainer) Raw() []uint64 { return c.data.View() }
