// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package evaluate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/kernel"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

func ageColumns() *column.Columns {
	age := column.WithCapacity("age", types.Int4, 0)
	age.Push(value.Int4(25))
	age.Push(value.Int4(30))
	age.Push(value.Int4(35))
	return column.NewColumns(age)
}

func TestCompileLiteralBroadcasts(t *testing.T) {
	expr := Compile(LiteralNode{Value: value.Int4(42)})
	out, err := expr.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	require.Equal(t, int64(42), out.Get(0).AsInt64())
	require.Equal(t, int64(42), out.Get(2).AsInt64())
}

func TestCompileColumnRefFound(t *testing.T) {
	expr := Compile(ColumnNode{Name: "age"})
	out, err := expr.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, int64(25), out.Get(0).AsInt64())
}

func TestCompileColumnRefMissingErrors(t *testing.T) {
	expr := Compile(ColumnNode{Name: "missing"})
	_, err := expr.Eval(context.Background(), ageColumns(), NewContext())
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, KindColumnNotFound, evalErr.Kind)
}

func TestCompileColumnRefFallsBackToOuterRow(t *testing.T) {
	expr := Compile(ColumnNode{Name: "outer_id"})
	ctx := NewContext().WithOuterRow(map[string]value.Value{"outer_id": value.Int4(7)})
	out, err := expr.Eval(context.Background(), ageColumns(), ctx)
	require.NoError(t, err)
	require.Equal(t, int64(7), out.Get(0).AsInt64())
	require.Equal(t, int64(7), out.Get(2).AsInt64())
}

func TestCompileVariableRefBroadcastsScalar(t *testing.T) {
	ctx := NewContext()
	ctx.SetVar(1, ScalarValue(value.Int4(100)))
	expr := Compile(VariableNode{ID: 1, Name: "x"})
	out, err := expr.Eval(context.Background(), ageColumns(), ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), out.Get(1).AsInt64())
}

func TestCompileVariableRefMissingErrors(t *testing.T) {
	expr := Compile(VariableNode{ID: 9, Name: "x"})
	_, err := expr.Eval(context.Background(), ageColumns(), NewContext())
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, KindVariableNotFound, evalErr.Kind)
}

func TestCompileBinaryComparison(t *testing.T) {
	gt := Compile(BinaryNode{Op: OpGt, Left: ColumnNode{Name: "age"}, Right: LiteralNode{Value: value.Int4(30)}})
	out, err := gt.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.False(t, out.Get(0).AsBool())
	require.False(t, out.Get(1).AsBool())
	require.True(t, out.Get(2).AsBool())
}

func TestCompileBinaryArithmetic(t *testing.T) {
	add := Compile(BinaryNode{Op: OpAdd, Left: ColumnNode{Name: "age"}, Right: LiteralNode{Value: value.Int4(1)}})
	out, err := add.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, int64(26), out.Get(0).AsInt64())
}

func TestCompileBetween(t *testing.T) {
	between := Compile(BetweenNode{
		Expr: ColumnNode{Name: "age"},
		Low:  LiteralNode{Value: value.Int4(26)},
		High: LiteralNode{Value: value.Int4(31)},
	})
	out, err := between.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.False(t, out.Get(0).AsBool())
	require.True(t, out.Get(1).AsBool())
	require.False(t, out.Get(2).AsBool())
}

func TestCompileBetweenNegated(t *testing.T) {
	between := Compile(BetweenNode{
		Expr:    ColumnNode{Name: "age"},
		Low:     LiteralNode{Value: value.Int4(26)},
		High:    LiteralNode{Value: value.Int4(31)},
		Negated: true,
	})
	out, err := between.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.True(t, out.Get(0).AsBool())
	require.False(t, out.Get(1).AsBool())
	require.True(t, out.Get(2).AsBool())
}

func TestCompileInList(t *testing.T) {
	in := Compile(InNode{
		Expr: ColumnNode{Name: "age"},
		List: []Node{LiteralNode{Value: value.Int4(25)}, LiteralNode{Value: value.Int4(35)}},
	})
	out, err := in.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.True(t, out.Get(0).AsBool())
	require.False(t, out.Get(1).AsBool())
	require.True(t, out.Get(2).AsBool())
}

func TestCompileInEmptyList(t *testing.T) {
	in := Compile(InNode{Expr: ColumnNode{Name: "age"}, List: nil})
	out, err := in.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.False(t, out.Get(0).AsBool())
}

func TestCompileUnaryNot(t *testing.T) {
	not := Compile(UnaryNode{Op: OpNot, Operand: BinaryNode{Op: OpGt, Left: ColumnNode{Name: "age"}, Right: LiteralNode{Value: value.Int4(30)}}})
	out, err := not.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.True(t, out.Get(0).AsBool())
	require.False(t, out.Get(2).AsBool())
}

func TestCompileUnaryNeg(t *testing.T) {
	neg := Compile(UnaryNode{Op: OpNeg, Operand: ColumnNode{Name: "age"}})
	out, err := neg.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, int64(-25), out.Get(0).AsInt64())
}

func TestCompileConditional(t *testing.T) {
	cond := Compile(ConditionalNode{
		Condition: BinaryNode{Op: OpGt, Left: ColumnNode{Name: "age"}, Right: LiteralNode{Value: value.Int4(30)}},
		Then:      LiteralNode{Value: value.Int4(1)},
		Else:      LiteralNode{Value: value.Int4(0)},
	})
	out, err := cond.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, int64(0), out.Get(0).AsInt64())
	require.Equal(t, int64(1), out.Get(2).AsInt64())
}

func TestCompileCastIntToFloat(t *testing.T) {
	cast := Compile(CastNode{Expr: ColumnNode{Name: "age"}, Target: types.Float8})
	out, err := cast.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, types.Float8, out.Type())
	require.Equal(t, 25.0, out.Get(0).AsFloat64())
}

func TestCompileFilterProducesBitmap(t *testing.T) {
	filter := CompileFilter(BinaryNode{Op: OpGt, Left: ColumnNode{Name: "age"}, Right: LiteralNode{Value: value.Int4(30)}})
	mask, err := filter.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.False(t, mask.Contains(0))
	require.False(t, mask.Contains(1))
	require.True(t, mask.Contains(2))
}

func TestCompileCallInvokesRegisteredFunction(t *testing.T) {
	ctx := NewContext()
	ctx.RegisterFunction(&Function{
		Name: "double", MinArgs: 1, MaxArgs: 1,
		Invoke: func(args []*column.Column) (*column.Column, error) {
			return kernel.Add(args[0], args[0], diag.NewSink(), diag.Fragment{})
		},
	})
	call := Compile(CallNode{Function: "double", Arguments: []Node{ColumnNode{Name: "age"}}})
	out, err := call.Eval(context.Background(), ageColumns(), ctx)
	require.NoError(t, err)
	require.Equal(t, int64(50), out.Get(0).AsInt64())
}

func TestCompileCallUnknownFunctionErrors(t *testing.T) {
	call := Compile(CallNode{Function: "nope"})
	_, err := call.Eval(context.Background(), ageColumns(), NewContext())
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, KindUnsupportedOperation, evalErr.Kind)
}

func TestCompileRownum(t *testing.T) {
	expr := Compile(RownumNode{})
	out, err := expr.Eval(context.Background(), ageColumns(), NewContext())
	require.NoError(t, err)
	require.Equal(t, uint64(0), out.Get(0).AsUint64())
	require.Equal(t, uint64(2), out.Get(2).AsUint64())
}
