// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// DateContainer backs a Date column.
type DateContainer struct {
	validity
	data CowVec[types.Date]
}

func NewDate(data []types.Date) *DateContainer {
	return &DateContainer{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.Date(nil), data...))}
}
func NewDateWithValidity(data []types.Date, v *bitvec.Vec) *DateContainer {
	return &DateContainer{validity: validity{bits: v}, data: NewCowVec(append([]types.Date(nil), data...))}
}
func (c *DateContainer) Type() types.Type { return types.Date }
func (c *DateContainer) Len() int         { return c.data.Len() }
func (c *DateContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.DateV(c.data.View()[i])
}
func (c *DateContainer) PushValue(v value.Value) {
	c.data.Append(v.AsDate())
	c.pushValid(true)
}
func (c *DateContainer) PushUndefined() {
	c.data.Append(0)
	c.pushValid(false)
}
func (c *DateContainer) Clone() Data {
	return &DateContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *DateContainer) Slice(start, end int) Data {
	return &DateContainer{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.Date(nil), c.data.View()[start:end]...))}
}
func (c *DateContainer) Raw() []types.Date { return c.data.View() }

// DateTimeContainer backs a DateTime column.
type DateTimeContainer struct {
	validity
	data CowVec[types.DateTime]
}

func NewDateTime(data []types.DateTime) *DateTimeContainer {
	return &DateTimeContainer{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.DateTime(nil), data...))}
}
func NewDateTimeWithValidity(data []types.DateTime, v *bitvec.Vec) *DateTimeContainer {
	return &DateTimeContainer{validity: validity{bits: v}, data: NewCowVec(append([]types.DateTime(nil), data...))}
}
func (c *DateTimeContainer) Type() types.Type { return types.DateTime }
func (c *DateTimeContainer) Len() int         { return c.data.Len() }
func (c *DateTimeContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.DateTimeV(c.data.View()[i])
}
func (c *DateTimeContainer) PushValue(v value.Value) {
	c.data.Append(v.AsDateTime())
	c.pushValid(true)
}
func (c *DateTimeContainer) PushUndefined() {
	c.data.Append(types.DateTime{})
	c.pushValid(false)
}
func (c *DateTimeContainer) Clone() Data {
	return &DateTimeContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *DateTimeContainer) Slice(start, end int) Data {
	return &DateTimeContainer{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.DateTime(nil), c.data.View()[start:end]...))}
}
func (c *DateTimeContainer) Raw() []types.DateTime { return c.data.View() }

// TimeContainer backs a Time column.
type TimeContainer struct {
	validity
	data CowVec[types.Time]
}

func NewTime(data []types.Time) *TimeContainer {
	return &TimeContainer{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.Time(nil), data...))}
}
func NewTimeWithValidity(data []types.Time, v *bitvec.Vec) *TimeContainer {
	return &TimeContainer{validity: validity{bits: v}, data: NewCowVec(append([]types.Time(nil), data...))}
}
func (c *TimeContainer) Type() types.Type { return types.Time }
func (c *TimeContainer) Len() int         { return c.data.Len() }
func (c *TimeContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.TimeV(c.data.View()[i])
}
func (c *TimeContainer) PushValue(v value.Value) {
	c.data.Append(v.AsTime())
	c.pushValid(true)
}
func (c *TimeContainer) PushUndefined() {
	c.data.Append(0)
	c.pushValid(false)
}
func (c *TimeContainer) Clone() Data {
	return &TimeContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *TimeContainer) Slice(start, end int) Data {
	return &TimeContainer{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.Time(nil), c.data.View()[start:end]...))}
}
func (c *TimeContainer) Raw() []types.Time { return c.data.View() }

// IntervalContainer backs an Interval column.
type IntervalContainer struct {
	validity
	data CowVec[types.Interval]
}

func NewInterval(data []types.Interval) *IntervalContainer {
	return &IntervalContainer{validity: validity{bits: bitvec.AllSet(uint(len(data)))}, data: NewCowVec(append([]types.Interval(nil), data...))}
}
func NewIntervalWithValidity(data []types.Interval, v *bitvec.Vec) *IntervalContainer {
	return &IntervalContainer{validity: validity{bits: v}, data: NewCowVec(append([]types.Interval(nil), data...))}
}
func (c *IntervalContainer) Type() types.Type { return types.Interval }
func (c *IntervalContainer) Len() int         { return c.data.Len() }
func (c *IntervalContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.IntervalV(c.data.View()[i])
}
func (c *IntervalContainer) PushValue(v value.Value) {
	c.data.Append(v.AsInterval())
	c.pushValid(true)
}
func (c *IntervalContainer) PushUndefined() {
	c.data.Append(types.Interval{})
	c.pushValid(false)
}
func (c *IntervalContainer) Clone() Data {
	return &IntervalContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone()}
}
func (c *IntervalContainer) Slice(start, end int) Data {
	return &IntervalContainer{validity: validity{bits: c.bits.Slice(uint(start), uint(end))}, data: NewCowVec(append([]types.Interval(nil), c.data.View()[start:end]...))}
}
func (c *IntervalContainer) Raw() []types.Interval { return c.data.View() }
