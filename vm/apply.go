// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"context"

	"github.com/reifydb/reifydb/evaluate"
)

// applyInstruction decodes the operator-specific immediates following an
// Apply opcode's u8 OperatorKind byte, pops the pipeline it operates over,
// and pushes the resulting pipeline (spec.md §4.7 "Apply").
//
// Encoding per kind, all after the OperatorKind byte:
//
//	Filter:    u32 expr index
//	Select:    u32 column-list index
//	Extend:    u32 extension-spec index
//	Take:      u32 row limit
//	Sort:      u32 sort-spec index
//	Aggregate: u32 column-list index (group-by columns), u32 column-list
//	           index (aggregate column names), u32 string index (function
//	           name, shared by every aggregate in this instruction — a
//	           program needing mixed functions emits one Apply per
//	           function and merges via successive Extend/Select)
func (m *Machine) applyInstruction(ctx context.Context, r *BytecodeReader, offset int) error {
	st := m.State
	kindByte, ok := r.ReadU8()
	if !ok {
		return newErr(ErrTruncatedProgram, offset, "Apply: missing operator kind")
	}
	kind := OperatorKind(kindByte)

	var arg operatorArg
	switch kind {
	case OperatorFilter:
		idx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Filter: missing expr index")
		}
		expr, err := indexed(st.program.Exprs, int(idx), offset, "expr")
		if err != nil {
			return err
		}
		arg.filter = evaluate.FilterFromExpr(expr)

	case OperatorSelect:
		idx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Select: missing column list index")
		}
		cols, err := indexed(st.program.ColumnLists, int(idx), offset, "column list")
		if err != nil {
			return err
		}
		arg.columns = cols

	case OperatorExtend:
		idx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Extend: missing extension spec index")
		}
		fields, err := indexed(st.program.ExtensionSpecs, int(idx), offset, "extension spec")
		if err != nil {
			return err
		}
		arg.fields = fields

	case OperatorTake:
		limit, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Take: missing limit")
		}
		arg.limit = int(limit)

	case OperatorSort:
		idx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Sort: missing sort spec index")
		}
		spec, err := indexed(st.program.SortSpecs, int(idx), offset, "sort spec")
		if err != nil {
			return err
		}
		arg.sort = spec

	case OperatorAggregate:
		groupIdx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Aggregate: missing group-by column list index")
		}
		group, err := indexed(st.program.ColumnLists, int(groupIdx), offset, "column list")
		if err != nil {
			return err
		}
		aggIdx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Aggregate: missing aggregate column list index")
		}
		aggCols, err := indexed(st.program.ColumnLists, int(aggIdx), offset, "column list")
		if err != nil {
			return err
		}
		fnIdx, ok := r.ReadU32()
		if !ok {
			return newErr(ErrTruncatedProgram, offset, "Apply Aggregate: missing function name index")
		}
		fn, err := indexed(st.program.Strings, int(fnIdx), offset, "string")
		if err != nil {
			return err
		}
		arg.groupBy = group
		specs := make([]AggregateSpec, len(aggCols))
		for i, c := range aggCols {
			specs[i] = AggregateSpec{Output: c, Fn: fn, Column: c}
		}
		arg.aggregates = specs

	default:
		return newErr(ErrUnsupportedOperator, offset, "unknown operator kind %d", kindByte)
	}

	in, err := st.popPipeline(offset)
	if err != nil {
		return err
	}
	out, err := applyOperator(ctx, kind, in, st.program, st.evalCtx, arg, offset)
	if err != nil {
		return err
	}
	st.pushPipeline(out)
	return nil
}
