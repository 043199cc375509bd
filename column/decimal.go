// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// DecimalContainer backs a Decimal column. Precision and Scale are carried
// on the container, not per-value: every row shares the column's declared
// (precision, scale), which PromoteDecimal widens when two Decimal columns
// of differing scale meet (spec.md §9 Open Question — resolved in
// SPEC_FULL.md §4.1).
type DecimalContainer struct {
	validity
	data      CowVec[decimal.Decimal]
	Precision uint8
	Scale     uint8
}

// NewDecimal builds a DecimalContainer from a fully-defined slice.
func NewDecimal(data []decimal.Decimal, precision, scale uint8) *DecimalContainer {
	return &DecimalContainer{
		validity:  validity{bits: bitvec.AllSet(uint(len(data)))},
		data:      NewCowVec(append([]decimal.Decimal(nil), data...)),
		Precision: precision,
		Scale:     scale,
	}
}

// NewDecimalWithValidity builds a DecimalContainer with an explicit validity vector.
func NewDecimalWithValidity(data []decimal.Decimal, v *bitvec.Vec, precision, scale uint8) *DecimalContainer {
	return &DecimalContainer{
		validity:  validity{bits: v},
		data:      NewCowVec(append([]decimal.Decimal(nil), data...)),
		Precision: precision,
		Scale:     scale,
	}
}

func (c *DecimalContainer) Type() types.Type { return types.Decimal }
func (c *DecimalContainer) Len() int         { return c.data.Len() }

func (c *DecimalContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.DecimalV(c.data.View()[i])
}

func (c *DecimalContainer) PushValue(v value.Value) {
	c.data.Append(v.AsDecimal())
	c.pushValid(true)
}

func (c *DecimalContainer) PushUndefined() {
	c.data.Append(decimal.Zero)
	c.pushValid(false)
}

func (c *DecimalContainer) Clone() Data {
	return &DecimalContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), Precision: c.Precision, Scale: c.Scale}
}

func (c *DecimalContainer) Slice(start, end int) Data {
	return &DecimalContainer{
		validity:  validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:      NewCowVec(append([]decimal.Decimal(nil), c.data.View()[start:end]...)),
		Precision: c.Precision,
		Scale:     c.Scale,
	}
}

func (c *DecimalContainer) Raw() []decimal.Decimal { return c.data.View() }
