// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package kernel implements the null-aware arithmetic and comparison
// kernels (spec.md §3 "Kernel", §4.5): one binary op per (left, right)
// column pair, dispatching on the promoted result type and emitting
// Undefined plus a diagnostic wherever the checked primitive can't produce
// a value. Grounded on spec.md §4.5's per-row contract; the actual checked
// primitives live in value.Arith (kernel just drives the row loop and the
// Undefined-column shortcut).
package kernel

import (
	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Arith applies op to every row of a and b, returning a column of the
// promoted result type. Any row where either operand is undefined, or
// where the checked primitive fails, is Undefined in the result; failures
// are additionally filed on sink.
func Arith(op value.Op, a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	if a.Len() != b.Len() {
		return nil, diag.New(diag.CodeRowCountMismatch, "operand columns have different row counts").WithFragment(fragment)
	}

	// Undefined-column shortcut (spec.md §4.5): no allocation of payload.
	if a.Type() == types.Undefined || b.Type() == types.Undefined {
		return column.AllUndefined("", a.Len()), nil
	}

	result := types.Promote(a.Type(), b.Type())
	out := column.WithCapacity("", result, a.Len())

	for i := 0; i < a.Len(); i++ {
		if !a.IsValid(i) || !b.IsValid(i) {
			out.PushUndefined()
			continue
		}
		v, d := value.Arith(op, a.Get(i), b.Get(i), fragment)
		if d != nil {
			sink.Emit(d)
			out.PushUndefined()
			continue
		}
		out.Push(v)
	}
	return out, nil
}

func Add(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Arith(value.OpAdd, a, b, sink, fragment)
}
func Sub(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Arith(value.OpSub, a, b, sink, fragment)
}
func Mul(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Arith(value.OpMul, a, b, sink, fragment)
}
func Div(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Arith(value.OpDiv, a, b, sink, fragment)
}
func Rem(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Arith(value.OpRem, a, b, sink, fragment)
}
