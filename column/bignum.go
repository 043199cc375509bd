// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// BigIntContainer backs Int16 (fixed 128-bit signed) and Int (arbitrary
// precision signed): Go has no native 128-bit integer, so both widths share
// *big.Int as the backing payload, distinguished only by the typ tag.
type BigIntContainer struct {
	validity
	data CowVec[*big.Int]
	typ  types.Type
}

func newBigIntContainer(typ types.Type, data []*big.Int, v *bitvec.Vec) *BigIntContainer {
	return &BigIntContainer{validity: validity{bits: v}, data: NewCowVec(data), typ: typ}
}

// NewInt16 builds a fixed 128-bit signed container.
func NewInt16(data []*big.Int) *BigIntContainer {
	return newBigIntContainer(types.Int16, append([]*big.Int(nil), data...), bitvec.AllSet(uint(len(data))))
}

// NewIntBig builds an arbitrary-precision signed container.
func NewIntBig(data []*big.Int) *BigIntContainer {
	return newBigIntContainer(types.Int, append([]*big.Int(nil), data...), bitvec.AllSet(uint(len(data))))
}

func (c *BigIntContainer) Type() types.Type { return c.typ }
func (c *BigIntContainer) Len() int         { return c.data.Len() }

func (c *BigIntContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	n := c.data.View()[i]
	if c.typ == types.Int16 {
		return value.Int16(n)
	}
	return value.IntBig(n)
}

func (c *BigIntContainer) PushValue(v value.Value) {
	c.data.Append(v.AsBigInt())
	c.pushValid(true)
}

func (c *BigIntContainer) PushUndefined() {
	c.data.Append(big.NewInt(0))
	c.pushValid(false)
}

func (c *BigIntContainer) Clone() Data {
	return &BigIntContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), typ: c.typ}
}

func (c *BigIntContainer) Slice(start, end int) Data {
	return &BigIntContainer{
		validity: validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:     NewCowVec(append([]*big.Int(nil), c.data.View()[start:end]...)),
		typ:      c.typ,
	}
}

func (c *BigIntContainer) Raw() []*big.Int { return c.data.View() }

// BigUintContainer backs Uint16 (fixed 128-bit unsigned) and Uint
// (arbitrary precision unsigned), both backed by holiman/uint256.Int — the
// teacher's own oversized-unsigned-integer library.
type BigUintContainer struct {
	validity
	data CowVec[*uint256.Int]
	typ  types.Type
}

func newBigUintContainer(typ types.Type, data []*uint256.Int, v *bitvec.Vec) *BigUintContainer {
	return &BigUintContainer{validity: validity{bits: v}, data: NewCowVec(data), typ: typ}
}

// NewUint16 builds a fixed 128-bit unsigned container.
func NewUint16(data []*uint256.Int) *BigUintContainer {
	return newBigUintContainer(types.Uint16, append([]*uint256.Int(nil), data...), bitvec.AllSet(uint(len(data))))
}

// NewUintBig builds an arbitrary-precision unsigned container.
func NewUintBig(data []*uint256.Int) *BigUintContainer {
	return newBigUintContainer(types.Uint, append([]*uint256.Int(nil), data...), bitvec.AllSet(uint(len(data))))
}

func (c *BigUintContainer) Type() types.Type { return c.typ }
func (c *BigUintContainer) Len() int         { return c.data.Len() }

func (c *BigUintContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	n := c.data.View()[i]
	if c.typ == types.Uint16 {
		return value.Uint16(n)
	}
	return value.UintBig(n)
}

func (c *BigUintContainer) PushValue(v value.Value) {
	c.data.Append(v.AsBigUint())
	c.pushValid(true)
}

func (c *BigUintContainer) PushUndefined() {
	c.data.Append(uint256.NewInt(0))
	c.pushValid(false)
}

func (c *BigUintContainer) Clone() Data {
	return &BigUintContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), typ: c.typ}
}

func (c *BigUintContainer) Slice(start, end int) Data {
	return &BigUintContainer{
		validity: validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:     NewCowVec(append([]*uint256.Int(nil), c.data.View()[start:end]...)),
		typ:      c.typ,
	}
}

func (c *BigUintContainer) Raw() []*uint256.Int { return c.data.View() }
