// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/evaluate"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// applyOperator drives one OperatorKind over an input Pipeline, returning
// the output Pipeline the Apply instruction pushes back
// (spec.md §4.7 "Operator application under Apply"). Filter, Select,
// Extend and Take preserve streaming; Sort and Aggregate must materialize
// the whole input before they can produce their first output batch.
func applyOperator(ctx context.Context, kind OperatorKind, in Pipeline, program *BytecodeProgram, evalCtx *evaluate.Context, arg operatorArg, offset int) (Pipeline, error) {
	switch kind {
	case OperatorFilter:
		return &filterPipeline{in: in, evalCtx: evalCtx, filter: arg.filter}, nil
	case OperatorSelect:
		return &selectPipeline{in: in, names: arg.columns}, nil
	case OperatorExtend:
		return &extendPipeline{in: in, evalCtx: evalCtx, fields: arg.fields}, nil
	case OperatorTake:
		return &takePipeline{in: in, remaining: arg.limit}, nil
	case OperatorSort:
		return materializeSorted(ctx, in, arg.sort)
	case OperatorAggregate:
		return materializeAggregated(ctx, in, arg.groupBy, arg.aggregates)
	default:
		return nil, newErr(ErrUnsupportedOperator, offset, "unknown operator kind %d", kind)
	}
}

// operatorArg bundles the operator-specific immediates applyOperator needs;
// the interpreter fills in only the field the given OperatorKind uses.
type operatorArg struct {
	filter     evaluate.CompiledFilter
	columns    []string
	fields     []ExtensionField
	limit      int
	sort       SortSpec
	groupBy    []string
	aggregates []AggregateSpec
}

// AggregateSpec is one `name = fn(column)` output of an Aggregate operator.
type AggregateSpec struct {
	Output string
	Fn     string
	Column string
}

type filterPipeline struct {
	in      Pipeline
	evalCtx *evaluate.Context
	filter  evaluate.CompiledFilter
}

func (p *filterPipeline) Next(ctx context.Context) (*column.Columns, bool, error) {
	for {
		batch, ok, err := p.in.Next(ctx)
		if err != nil || !ok {
			return nil, ok, err
		}
		mask, err := p.filter.Eval(ctx, batch, p.evalCtx)
		if err != nil {
			return nil, false, err
		}
		if mask.IsEmpty() {
			continue
		}
		keep := make([]int, 0, mask.GetCardinality())
		it := mask.Iterator()
		for it.HasNext() {
			keep = append(keep, int(it.Next()))
		}
		return batch.Filter(keep), true, nil
	}
}

func (p *filterPipeline) Close() error { return p.in.Close() }

type selectPipeline struct {
	in    Pipeline
	names []string
}

func (p *selectPipeline) Next(ctx context.Context) (*column.Columns, bool, error) {
	batch, ok, err := p.in.Next(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	out, err := batch.Select(p.names...)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (p *selectPipeline) Close() error { return p.in.Close() }

type extendPipeline struct {
	in      Pipeline
	evalCtx *evaluate.Context
	fields  []ExtensionField
}

func (p *extendPipeline) Next(ctx context.Context) (*column.Columns, bool, error) {
	batch, ok, err := p.in.Next(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	seen := make(map[string]bool, len(p.fields))
	extra := make([]*column.Column, 0, len(p.fields))
	for _, f := range p.fields {
		if _, exists := batch.ColumnByName(f.Name); exists {
			return nil, false, fmt.Errorf("vm: Extend: column %q already exists", f.Name)
		}
		if seen[f.Name] {
			return nil, false, fmt.Errorf("vm: Extend: duplicate output column %q", f.Name)
		}
		seen[f.Name] = true
		col, err := f.Expr.Eval(ctx, batch, p.evalCtx)
		if err != nil {
			return nil, false, err
		}
		extra = append(extra, column.FromData(f.Name, col.Data()))
	}
	return batch.Extend(extra...), true, nil
}

func (p *extendPipeline) Close() error { return p.in.Close() }

type takePipeline struct {
	in        Pipeline
	remaining int
}

func (p *takePipeline) Next(ctx context.Context) (*column.Columns, bool, error) {
	if p.remaining <= 0 {
		return nil, false, nil
	}
	batch, ok, err := p.in.Next(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	if batch.Len() <= p.remaining {
		p.remaining -= batch.Len()
		return batch, true, nil
	}
	out := batch.Take(p.remaining)
	p.remaining = 0
	return out, true, nil
}

func (p *takePipeline) Close() error { return p.in.Close() }

// materializeSorted drains the input fully, sorts the concatenated rows by
// SortSpec's key tuple, and replays the result as a single-batch pipeline
// (spec.md §4.7 "Sort ... requires materialization").
func materializeSorted(ctx context.Context, in Pipeline, spec SortSpec) (Pipeline, error) {
	all, err := drain(ctx, in)
	if err != nil {
		return nil, err
	}
	if all == nil {
		return newInlinePipeline(nil), nil
	}
	n := all.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	keyCols := make([]*column.Column, len(spec.Keys))
	for i, k := range spec.Keys {
		col, ok := all.ColumnByName(k.Column)
		if !ok {
			return nil, fmt.Errorf("vm: Sort: column %q not found", k.Column)
		}
		keyCols[i] = col
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := idx[a], idx[b]
		for i, k := range spec.Keys {
			col := keyCols[i]
			av, bv := col.Get(ra), col.Get(rb)
			cmp, ok := value.Compare(av, bv)
			if !ok {
				continue
			}
			if cmp == 0 {
				continue
			}
			if k.Direction == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return newInlinePipeline([]*column.Columns{all.Filter(idx)}), nil
}

// materializeAggregated drains the input fully, groups rows by the
// concatenated textual representation of groupBy's columns, and emits one
// row per group (spec.md §4.7 "Aggregate: group, one row per group").
//
// The group key is built by string-concatenating each grouping column's
// per-row textual form; no row-hashing utility exists elsewhere in this
// module, and this keeps grouping correct (if not maximally fast) without
// introducing one just for this call site.
func materializeAggregated(ctx context.Context, in Pipeline, groupBy []string, aggs []AggregateSpec) (Pipeline, error) {
	all, err := drain(ctx, in)
	if err != nil {
		return nil, err
	}
	if all == nil {
		return newInlinePipeline(nil), nil
	}
	n := all.Len()
	groupCols := make([]*column.Column, len(groupBy))
	for i, name := range groupBy {
		col, ok := all.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("vm: Aggregate: column %q not found", name)
		}
		groupCols[i] = col
	}

	order := make([]string, 0)
	groups := make(map[string][]int)
	for row := 0; row < n; row++ {
		var b strings.Builder
		for _, col := range groupCols {
			if col.IsValid(row) {
				fmt.Fprintf(&b, "%v|", col.Get(row))
			} else {
				b.WriteString("\x00|")
			}
		}
		key := b.String()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	outCols := make([]*column.Column, 0, len(groupBy)+len(aggs))
	for i, name := range groupBy {
		col := groupCols[i]
		out := column.WithCapacity(name, col.Type(), len(order))
		for _, key := range order {
			rows := groups[key]
			if col.IsValid(rows[0]) {
				out.Push(col.Get(rows[0]))
			} else {
				out.PushUndefined()
			}
		}
		outCols = append(outCols, out)
	}
	for _, spec := range aggs {
		src, ok := all.ColumnByName(spec.Column)
		if !ok {
			return nil, fmt.Errorf("vm: Aggregate: column %q not found", spec.Column)
		}
		col, err := aggregateColumn(spec, src, order, groups)
		if err != nil {
			return nil, err
		}
		outCols = append(outCols, col)
	}
	return newInlinePipeline([]*column.Columns{column.NewColumns(outCols...)}), nil
}

func aggregateColumn(spec AggregateSpec, src *column.Column, order []string, groups map[string][]int) (*column.Column, error) {
	switch spec.Fn {
	case "count":
		out := column.WithCapacity(spec.Output, types.Int8, len(order))
		for _, key := range order {
			out.Push(countValue(len(groups[key])))
		}
		return out, nil
	case "sum", "min", "max", "avg":
		out := column.WithCapacity(spec.Output, src.Type(), len(order))
		for _, key := range order {
			v, ok := reduceRows(spec.Fn, src, groups[key])
			if !ok {
				out.PushUndefined()
				continue
			}
			out.Push(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("vm: Aggregate: unknown function %q", spec.Fn)
	}
}

func countValue(n int) value.Value { return value.Int8v(int64(n)) }

func reduceRows(fn string, col *column.Column, rows []int) (value.Value, bool) {
	var acc value.Value
	have := false
	for _, r := range rows {
		if !col.IsValid(r) {
			continue
		}
		v := col.Get(r)
		if !have {
			acc = v
			have = true
			continue
		}
		cmp, ok := value.Compare(v, acc)
		if !ok {
			continue
		}
		switch fn {
		case "min":
			if cmp < 0 {
				acc = v
			}
		case "max":
			if cmp > 0 {
				acc = v
			}
		}
	}
	if fn == "min" || fn == "max" {
		return acc, have
	}
	return acc, false
}

// drain exhausts a Pipeline and concatenates every batch's rows into one
// Columns value, column by column in the first batch's column order.
func drain(ctx context.Context, in Pipeline) (*column.Columns, error) {
	var batches []*column.Columns
	for {
		batch, ok, err := in.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		batches = append(batches, batch)
	}
	if len(batches) == 0 {
		return nil, nil
	}
	if len(batches) == 1 {
		return batches[0], nil
	}
	first := batches[0]
	out := make([]*column.Column, first.Width())
	for i := 0; i < first.Width(); i++ {
		name := first.Column(i).Name
		t := first.Column(i).Type()
		total := 0
		for _, b := range batches {
			total += b.Len()
		}
		merged := column.WithCapacity(name, t, total)
		for _, b := range batches {
			col := b.Column(i)
			for row := 0; row < col.Len(); row++ {
				if col.IsValid(row) {
					merged.Push(col.Get(row))
				} else {
					merged.PushUndefined()
				}
			}
		}
		out[i] = merged
	}
	return column.NewColumns(out...), nil
}
