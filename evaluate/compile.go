// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package evaluate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/kernel"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Compile converts a resolved Node into a CompiledExpr. The resulting
// closure captures every static part of n (column names, literals,
// operators, resolved function descriptors) and only needs the batch and
// Context at evaluation time (spec.md §4.6).
func Compile(n Node) CompiledExpr {
	switch node := n.(type) {
	case LiteralNode:
		return compileLiteral(node.Value)
	case ColumnNode:
		return compileColumnRef(node.Name)
	case VariableNode:
		return compileVariableRef(node.ID, node.Name)
	case RownumNode:
		return compileRownum()
	case BinaryNode:
		return compileBinary(node.Op, node.Left, node.Right)
	case UnaryNode:
		return compileUnary(node.Op, node.Operand)
	case BetweenNode:
		return compileBetween(node.Expr, node.Low, node.High, node.Negated)
	case InNode:
		return compileIn(node.Expr, node.List, node.Negated)
	case CastNode:
		return compileCast(node.Expr, node.Target)
	case ConditionalNode:
		return compileConditional(node.Condition, node.Then, node.Else)
	case CallNode:
		return compileCall(node.Function, node.Arguments)
	case AggregateNode:
		return compileAggregate()
	case ListNode:
		return compileList(node.Items)
	case TupleNode:
		return compileTuple(node.Items)
	case RecordNode:
		return compileRecord(node.Fields)
	case AliasNode:
		return Compile(node.Expr) // alias is metadata only
	default:
		return newCompiledExpr(func(context.Context, *column.Columns, *Context) (*column.Column, error) {
			return nil, errUnsupported("unknown expression node")
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────
// Literal / reference compilation
// ─────────────────────────────────────────────────────────────────────────

func compileLiteral(v value.Value) CompiledExpr {
	return newCompiledExpr(func(_ context.Context, cols *column.Columns, _ *Context) (*column.Column, error) {
		return broadcastValue(v, cols.Len()), nil
	})
}

func compileColumnRef(name string) CompiledExpr {
	return newCompiledExpr(func(_ context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		if col, ok := cols.ColumnByName(name); ok {
			return col, nil
		}
		if v, ok := evalCtx.OuterRow(name); ok {
			return broadcastValue(v, cols.Len()), nil
		}
		return nil, errColumnNotFound(name)
	})
}

func compileVariableRef(id uint32, name string) CompiledExpr {
	return newCompiledExpr(func(_ context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		v, ok := evalCtx.GetVar(id)
		if !ok {
			return nil, errVariableNotFound(id)
		}
		if v.IsRecord() {
			return nil, errTypeMismatch("variable '"+name+"'", "scalar", "record")
		}
		return broadcastValue(v.Scalar(), cols.Len()), nil
	})
}

func compileRownum() CompiledExpr {
	return newCompiledExpr(func(_ context.Context, cols *column.Columns, _ *Context) (*column.Column, error) {
		out := column.WithCapacity("_rownum", types.RowNumber, cols.Len())
		for i := 0; i < cols.Len(); i++ {
			out.Push(value.RowNumber(uint64(i)))
		}
		return out, nil
	})
}

// ─────────────────────────────────────────────────────────────────────────
// Operator compilation
// ─────────────────────────────────────────────────────────────────────────

func compileBinary(op BinaryOp, left, right Node) CompiledExpr {
	leftFn := Compile(left)
	rightFn := Compile(right)
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		l, err := leftFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		r, err := rightFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		return evalBinary(op, l, r, evalCtx)
	})
}

func compileUnary(op UnaryOp, operand Node) CompiledExpr {
	operandFn := Compile(operand)
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		c, err := operandFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		return evalUnary(op, c, evalCtx)
	})
}

func compileBetween(expr, low, high Node, negated bool) CompiledExpr {
	exprFn, lowFn, highFn := Compile(expr), Compile(low), Compile(high)
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		exprCol, err := exprFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		lowCol, err := lowFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		highCol, err := highFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}

		ge, err := evalBinary(OpGe, exprCol, lowCol, evalCtx)
		if err != nil {
			return nil, err
		}
		le, err := evalBinary(OpLe, exprCol, highCol, evalCtx)
		if err != nil {
			return nil, err
		}
		result, err := evalBinary(OpAnd, ge, le, evalCtx)
		if err != nil {
			return nil, err
		}
		if negated {
			return evalUnary(OpNot, result, evalCtx)
		}
		return result, nil
	})
}

func compileIn(expr Node, list []Node, negated bool) CompiledExpr {
	exprFn := Compile(expr)
	listFns := make([]CompiledExpr, len(list))
	for i, item := range list {
		listFns[i] = Compile(item)
	}
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		if len(listFns) == 0 {
			out := column.WithCapacity("_in", types.Bool, cols.Len())
			for i := 0; i < cols.Len(); i++ {
				out.Push(value.Bool(negated))
			}
			return out, nil
		}

		exprCol, err := exprFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}

		first, err := listFns[0].Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		result, err := evalBinary(OpEq, exprCol, first, evalCtx)
		if err != nil {
			return nil, err
		}
		for _, itemFn := range listFns[1:] {
			itemCol, err := itemFn.Eval(ctx, cols, evalCtx)
			if err != nil {
				return nil, err
			}
			eq, err := evalBinary(OpEq, exprCol, itemCol, evalCtx)
			if err != nil {
				return nil, err
			}
			result, err = evalBinary(OpOr, result, eq, evalCtx)
			if err != nil {
				return nil, err
			}
		}
		if negated {
			return evalUnary(OpNot, result, evalCtx)
		}
		return result, nil
	})
}

func compileCast(expr Node, target types.Type) CompiledExpr {
	exprFn := Compile(expr)
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		c, err := exprFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		out := column.WithCapacity("_cast", target, c.Len())
		for i := 0; i < c.Len(); i++ {
			if !c.IsValid(i) {
				out.PushUndefined()
				continue
			}
			converted, ok := value.SafeConvert(c.Get(i), target)
			if !ok {
				out.PushUndefined()
				continue
			}
			out.Push(converted)
		}
		return out, nil
	})
}

func compileCall(function string, arguments []Node) CompiledExpr {
	argFns := make([]CompiledExpr, len(arguments))
	for i, a := range arguments {
		argFns[i] = Compile(a)
	}
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		fn, ok := evalCtx.LookupFunction(function)
		if !ok {
			return nil, errUnsupported("unknown function: " + function)
		}
		if len(argFns) < fn.MinArgs || (fn.MaxArgs >= 0 && len(argFns) > fn.MaxArgs) {
			return nil, errUnsupported("wrong arity for function: " + function)
		}
		args := make([]*column.Column, len(argFns))
		for i, argFn := range argFns {
			col, err := argFn.Eval(ctx, cols, evalCtx)
			if err != nil {
				return nil, err
			}
			args[i] = col
		}
		return fn.Invoke(args)
	})
}

// compileAggregate rejects aggregate calls in scalar expression context;
// aggregates are handled by the Aggregate operator (C7 Apply), not here.
func compileAggregate() CompiledExpr {
	return newCompiledExpr(func(context.Context, *column.Columns, *Context) (*column.Column, error) {
		return nil, errUnsupported("aggregate function in scalar expression context")
	})
}

func compileConditional(condition, then, els Node) CompiledExpr {
	condFn, thenFn, elseFn := Compile(condition), Compile(then), Compile(els)
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		condCol, err := condFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		thenCol, err := thenFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		elseCol, err := elseFn.Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		return evalConditional(condCol, thenCol, elseCol)
	})
}

func compileList(items []Node) CompiledExpr {
	itemFns := make([]CompiledExpr, len(items))
	for i, it := range items {
		itemFns[i] = Compile(it)
	}
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		// A list's column form is its first item's column (an
		// all-undefined column when the list is empty); the other
		// items are not evaluated here. In/Between desugaring
		// evaluates the items directly instead of calling this closure.
		if len(itemFns) == 0 {
			return column.AllUndefined("_list", cols.Len()), nil
		}
		first, err := itemFns[0].Eval(ctx, cols, evalCtx)
		if err != nil {
			return nil, err
		}
		return first, nil
	})
}

func compileTuple(items []Node) CompiledExpr {
	return compileList(items)
}

func compileRecord(fields []RecordField) CompiledExpr {
	fieldFns := make([]struct {
		name string
		fn   CompiledExpr
	}, len(fields))
	for i, f := range fields {
		fieldFns[i].name = f.Name
		fieldFns[i].fn = Compile(f.Expr)
	}
	return newCompiledExpr(func(ctx context.Context, cols *column.Columns, evalCtx *Context) (*column.Column, error) {
		// Records materialize into EvalValue.Record for variable
		// binding, not into a Column; callers that need a record
		// (scalar subquery capture, FrameRow) go through
		// CompileRecord directly rather than through Compile/Eval.
		for _, ff := range fieldFns {
			if _, err := ff.fn.Eval(ctx, cols, evalCtx); err != nil {
				return nil, err
			}
		}
		return nil, errUnsupported("record expression evaluated as a column")
	})
}

// CompileRecord evaluates fields against row 0 of cols and returns an
// EvalValue.Record, the representation FrameRow/GetField (C7) and
// correlated-subquery capture actually consume.
func CompileRecord(fields []RecordField, ctx context.Context, cols *column.Columns, evalCtx *Context) (EvalValue, error) {
	out := make(map[string]value.Value, len(fields))
	for _, f := range fields {
		col, err := Compile(f.Expr).Eval(ctx, cols, evalCtx)
		if err != nil {
			return EvalValue{}, err
		}
		if col.Len() == 0 {
			out[f.Name] = value.Value{}
			continue
		}
		out[f.Name] = col.Get(0)
	}
	return RecordValue(out), nil
}

// ─────────────────────────────────────────────────────────────────────────
// Evaluation helpers
// ─────────────────────────────────────────────────────────────────────────

func broadcastValue(v value.Value, rowCount int) *column.Column {
	if v.IsUndefined() {
		return column.AllUndefined("_literal", rowCount)
	}
	out := column.WithCapacity("_literal", v.Type(), rowCount)
	for i := 0; i < rowCount; i++ {
		out.Push(v)
	}
	return out
}

func evalBinary(op BinaryOp, left, right *column.Column, evalCtx *Context) (*column.Column, error) {
	if left.Len() != right.Len() {
		return nil, errRowCountMismatch(left.Len(), right.Len())
	}

	if cmpOp, ok := kernelCompareOp(op); ok {
		return kernel.Compare(cmpOp, left, right, evalCtx.Sink(), diag.Fragment{})
	}
	if op == OpAnd {
		return kernel.And(left, right, diag.Fragment{})
	}
	if op == OpOr {
		return kernel.Or(left, right, diag.Fragment{})
	}
	if arithOp, ok := kernelArithOp(op); ok {
		return kernel.Arith(arithOp, left, right, evalCtx.Sink(), diag.Fragment{})
	}
	return nil, errUnsupported("unknown binary operator")
}

func evalUnary(op UnaryOp, col *column.Column, evalCtx *Context) (*column.Column, error) {
	switch op {
	case OpPlus:
		return col, nil
	case OpNot:
		return evalNot(col)
	case OpNeg:
		return evalNeg(col, evalCtx)
	default:
		return nil, errUnsupported("unknown unary operator")
	}
}

func evalNot(col *column.Column) (*column.Column, error) {
	if col.Type() != types.Bool {
		return nil, errTypeMismatch("NOT operand", "Bool", col.Type().String())
	}
	out := column.WithCapacity("_not", types.Bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		if !col.IsValid(i) {
			out.PushUndefined()
			continue
		}
		out.Push(value.Bool(!col.Get(i).AsBool()))
	}
	return out, nil
}

func evalNeg(col *column.Column, evalCtx *Context) (*column.Column, error) {
	if !col.IsNumber() {
		return nil, errTypeMismatch("NEG operand", "numeric", col.Type().String())
	}
	zero := broadcastValue(zeroOf(col.Type()), col.Len())
	return kernel.Sub(zero, col, evalCtx.Sink(), diag.Fragment{})
}

func zeroOf(t types.Type) value.Value {
	switch {
	case t.IsFloat():
		if t == types.Float4 {
			return value.Float4(0)
		}
		return value.Float8(0)
	case t == types.Decimal:
		return value.DecimalV(decimal.Zero)
	default:
		return value.Int1(0)
	}
}

func evalConditional(cond, then, els *column.Column) (*column.Column, error) {
	if cond.Type() != types.Bool {
		return nil, errTypeMismatch("conditional condition", "Bool", cond.Type().String())
	}
	if then.Type() != els.Type() {
		return nil, errTypeMismatch("conditional branches", then.Type().String(), els.Type().String())
	}
	out := column.WithCapacity("_if", then.Type(), cond.Len())
	for i := 0; i < cond.Len(); i++ {
		switch {
		case !cond.IsValid(i):
			out.PushUndefined()
		case cond.Get(i).AsBool():
			if then.IsValid(i) {
				out.Push(then.Get(i))
			} else {
				out.PushUndefined()
			}
		default:
			if els.IsValid(i) {
				out.Push(els.Get(i))
			} else {
				out.PushUndefined()
			}
		}
	}
	return out, nil
}
