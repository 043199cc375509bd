// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

func ints(vs ...int32) *column.Column {
	c := column.WithCapacity("", types.Int4, len(vs))
	for _, v := range vs {
		c.Push(value.Int4(v))
	}
	return c
}

func TestAddPropagatesNull(t *testing.T) {
	a := column.WithCapacity("a", types.Int4, 0)
	a.Push(value.Int4(1))
	a.PushUndefined()
	b := ints(10, 20)

	sink := diag.NewSink()
	out, err := Add(a, b, sink, diag.Fragment{})
	require.NoError(t, err)
	require.Equal(t, int64(11), out.Get(0).AsInt64())
	require.True(t, out.Get(1).IsUndefined())
	require.Equal(t, 0, sink.Len())
}

func TestAddOverflowEmitsDiagnosticAndUndefined(t *testing.T) {
	a := column.WithCapacity("a", types.Int1, 0)
	a.Push(value.Int1(120))
	b := column.WithCapacity("b", types.Int1, 0)
	b.Push(value.Int1(10))

	sink := diag.NewSink()
	out, err := Add(a, b, sink, diag.Fragment{})
	require.NoError(t, err)
	require.True(t, out.Get(0).IsUndefined())
	require.Equal(t, 1, sink.Len())
	require.Equal(t, diag.CodeArithOverflow, sink.All()[0].Code)
}

func TestDivByZeroEmitsDiagnostic(t *testing.T) {
	a := ints(10)
	b := ints(0)
	sink := diag.NewSink()
	out, err := Div(a, b, sink, diag.Fragment{})
	require.NoError(t, err)
	require.True(t, out.Get(0).IsUndefined())
	require.Equal(t, diag.CodeArithDivByZero, sink.All()[0].Code)
}

func TestUndefinedColumnShortcut(t *testing.T) {
	a := column.AllUndefined("a", 3)
	b := ints(1, 2, 3)
	sink := diag.NewSink()
	out, err := Add(a, b, sink, diag.Fragment{})
	require.NoError(t, err)
	require.Equal(t, types.Undefined, out.Type())
	require.Equal(t, 3, out.Len())
	require.Equal(t, 0, sink.Len())
}

func TestCompareLt(t *testing.T) {
	a := ints(1, 5, 9)
	b := ints(2, 5, 3)
	sink := diag.NewSink()
	out, err := Lt(a, b, sink, diag.Fragment{})
	require.NoError(t, err)
	require.True(t, out.Get(0).AsBool())
	require.False(t, out.Get(1).AsBool())
	require.False(t, out.Get(2).AsBool())
}

func TestLogicalAndThreeValued(t *testing.T) {
	a := column.WithCapacity("a", types.Bool, 0)
	a.Push(value.Bool(false))
	a.Push(value.Bool(true))
	a.PushUndefined()
	b := column.WithCapacity("b", types.Bool, 0)
	b.PushUndefined()
	b.PushUndefined()
	b.Push(value.Bool(true))

	out, err := And(a, b, diag.Fragment{})
	require.NoError(t, err)
	require.False(t, out.Get(0).AsBool())  // false AND undefined = false
	require.True(t, out.Get(1).IsUndefined()) // true AND undefined = undefined
	require.True(t, out.Get(2).IsUndefined()) // undefined AND true = undefined
}

func TestLogicalOrThreeValued(t *testing.T) {
	a := column.WithCapacity("a", types.Bool, 0)
	a.Push(value.Bool(true))
	a.Push(value.Bool(false))
	b := column.WithCapacity("b", types.Bool, 0)
	b.PushUndefined()
	b.PushUndefined()

	out, err := Or(a, b, diag.Fragment{})
	require.NoError(t, err)
	require.True(t, out.Get(0).AsBool()) // true OR undefined = true
	require.True(t, out.Get(1).IsUndefined()) // false OR undefined = undefined
}
