// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package evaluate

import (
	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/value"
)

// EvalValue is either a scalar, broadcastable to every row of the current
// batch, or a Record (name → Value), produced by FrameRow/GetField (C7) and
// consumed by Variable lookups that resolve to a materialized row rather
// than a single scalar.
type EvalValue struct {
	record map[string]value.Value
	scalar value.Value
	isRec  bool
}

func ScalarValue(v value.Value) EvalValue { return EvalValue{scalar: v} }

func RecordValue(fields map[string]value.Value) EvalValue {
	return EvalValue{record: fields, isRec: true}
}

func (v EvalValue) IsRecord() bool { return v.isRec }

func (v EvalValue) Scalar() value.Value { return v.scalar }

func (v EvalValue) Record() map[string]value.Value { return v.record }

// Function describes a resolved scalar function callable from a Call node.
// Arity is checked against MinArgs/MaxArgs by the compiled Call expression
// before Invoke runs.
type Function struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 means unbounded
	Invoke  func(args []*column.Column) (*column.Column, error)
}

// Context carries everything a compiled closure needs besides the batch
// itself: the numeric variable table (spec.md §4.6 "Variable reference"),
// the outer-row map for correlated subqueries, and the function registry
// Call nodes dispatch through.
type Context struct {
	vars      map[uint32]EvalValue
	outerRow  map[string]value.Value
	functions map[string]*Function
	sink      *diag.Sink
}

func NewContext() *Context {
	return &Context{
		vars:      make(map[uint32]EvalValue),
		functions: make(map[string]*Function),
		sink:      diag.NewSink(),
	}
}

// Sink returns the diagnostic accumulator arithmetic/comparison kernels
// file per-row failures to (spec.md §6); never nil.
func (c *Context) Sink() *diag.Sink { return c.sink }

func (c *Context) SetVar(id uint32, v EvalValue) { c.vars[id] = v }

func (c *Context) GetVar(id uint32) (EvalValue, bool) {
	v, ok := c.vars[id]
	return v, ok
}

// WithOuterRow returns a shallow copy of c carrying an outer-row map,
// for evaluating a correlated subquery's inner expressions.
func (c *Context) WithOuterRow(row map[string]value.Value) *Context {
	cp := *c
	cp.outerRow = row
	return &cp
}

func (c *Context) OuterRow(name string) (value.Value, bool) {
	if c.outerRow == nil {
		return value.Value{}, false
	}
	v, ok := c.outerRow[name]
	return v, ok
}

func (c *Context) RegisterFunction(fn *Function) { c.functions[fn.Name] = fn }

func (c *Context) LookupFunction(name string) (*Function, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// Columns is an alias kept for readability at call sites; Compile works
// directly against *column.Columns batches.
type Columns = column.Columns
