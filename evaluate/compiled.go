// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package evaluate

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/types"
)

// CompiledExpr is a cheaply clonable handle wrapping a closure of shape
// (Columns, Context) → Column (spec.md §4.6). Go has no async/await; the
// ctx.Context thread stands in for cancellation, and the VM (C7) is free to
// run independent CompiledExprs concurrently via errgroup.Group.Go.
type CompiledExpr struct {
	fn func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error)
}

func newCompiledExpr(fn func(context.Context, *column.Columns, *Context) (*column.Column, error)) CompiledExpr {
	return CompiledExpr{fn: fn}
}

// Eval runs the closure. A zero-value CompiledExpr (never produced by
// Compile) would panic, same as calling through a nil function pointer.
func (e CompiledExpr) Eval(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
	return e.fn(ctx, cols, evalCtx)
}

// CompiledFilter produces a validity bitmap directly from a boolean column,
// skipping the intermediate Column materialization a Filter operator (C7)
// would otherwise need (spec.md §4.6).
type CompiledFilter struct {
	expr CompiledExpr
}

func CompileFilter(n Node) CompiledFilter {
	return CompiledFilter{expr: Compile(n)}
}

// FilterFromExpr wraps an already-compiled expression (e.g. one resolved
// from a bytecode program's Exprs table) as a CompiledFilter, without
// recompiling it from a Node.
func FilterFromExpr(expr CompiledExpr) CompiledFilter {
	return CompiledFilter{expr: expr}
}

func (f CompiledFilter) Eval(ctx context.Context, cols *column.Columns, evalCtx *Context) (*roaring.Bitmap, error) {
	col, err := f.expr.Eval(ctx, cols, evalCtx)
	if err != nil {
		return nil, err
	}
	if col.Type() != types.Bool {
		return nil, errTypeMismatch("filter predicate", "Bool", col.Type().String())
	}
	mask := roaring.New()
	for i := 0; i < col.Len(); i++ {
		if col.IsValid(i) && col.Get(i).AsBool() {
			mask.Add(uint32(i))
		}
	}
	return mask, nil
}
