// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/evaluate"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

func ageBatch() *column.Columns {
	age := column.WithCapacity("age", types.Int4, 0)
	age.Push(value.Int4(25))
	age.Push(value.Int4(30))
	age.Push(value.Int4(35))
	name := column.WithCapacity("name", types.Utf8, 0)
	name.Push(value.Utf8("a"))
	name.Push(value.Utf8("b"))
	name.Push(value.Utf8("c"))
	return column.NewColumns(age, name)
}

func TestFilterPipelineKeepsOnlyMatchingRows(t *testing.T) {
	in := newInlinePipeline([]*column.Columns{ageBatch()})
	filter := evaluate.CompileFilter(evaluate.BinaryNode{
		Op:    evaluate.OpGt,
		Left:  evaluate.ColumnNode{Name: "age"},
		Right: evaluate.LiteralNode{Value: value.Int4(28)},
	})
	p := &filterPipeline{in: in, evalCtx: evaluate.NewContext(), filter: filter}
	out, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, out.Len())
}

func TestSelectPipelineProjectsNamedColumns(t *testing.T) {
	in := newInlinePipeline([]*column.Columns{ageBatch()})
	p := &selectPipeline{in: in, names: []string{"name"}}
	out, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	got := make([]string, 0, out.Width())
	for _, c := range out.All() {
		got = append(got, c.Name)
	}
	if diff := cmp.Diff([]string{"name"}, got); diff != "" {
		t.Fatalf("unexpected column list (-want +got):\n%s", diff)
	}
}

func TestTakePipelineStopsAtLimit(t *testing.T) {
	in := newInlinePipeline([]*column.Columns{ageBatch()})
	p := &takePipeline{in: in, remaining: 2}
	out, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, out.Len())

	_, ok, err = p.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMaterializeAggregatedCountsGroups(t *testing.T) {
	cat := column.WithCapacity("cat", types.Utf8, 0)
	cat.Push(value.Utf8("x"))
	cat.Push(value.Utf8("y"))
	cat.Push(value.Utf8("x"))
	batch := column.NewColumns(cat)
	in := newInlinePipeline([]*column.Columns{batch})

	out, err := materializeAggregated(context.Background(), in, []string{"cat"}, []AggregateSpec{
		{Output: "n", Fn: "count", Column: "cat"},
	})
	require.NoError(t, err)
	result, ok, err := out.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, result.Len())
}
