// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package kernel

import (
	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// CompareOp identifies one comparison operator.
type CompareOp uint8

const (
	CompareEq CompareOp = iota
	CompareNe
	CompareLt
	CompareLe
	CompareGt
	CompareGe
)

// Compare applies op row-wise, returning a Bool column of the same length.
// A row is Undefined when either operand is undefined. For Lt/Le/Gt/Ge a row
// is also Undefined when the pair is unordered (IEEE NaN, spec.md §9 Open
// Question — relational kernels use IEEE semantics, unlike the index codec's
// total order); Eq and Ne report an unordered pair as not equal (false and
// true respectively).
func Compare(op CompareOp, a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	if a.Len() != b.Len() {
		return nil, diag.New(diag.CodeRowCountMismatch, "operand columns have different row counts").WithFragment(fragment)
	}
	if a.Type() == types.Undefined || b.Type() == types.Undefined {
		return column.AllUndefined("", a.Len()), nil
	}

	out := column.WithCapacity("", types.Bool, a.Len())
	for i := 0; i < a.Len(); i++ {
		if !a.IsValid(i) || !b.IsValid(i) {
			out.PushUndefined()
			continue
		}
		av, bv := a.Get(i), b.Get(i)
		if op == CompareEq {
			out.Push(value.Bool(value.Equal(av, bv)))
			continue
		}
		if op == CompareNe {
			out.Push(value.Bool(!value.Equal(av, bv)))
			continue
		}
		cmp, ok := value.Compare(av, bv)
		if !ok {
			out.PushUndefined()
			continue
		}
		switch op {
		case CompareLt:
			out.Push(value.Bool(cmp < 0))
		case CompareLe:
			out.Push(value.Bool(cmp <= 0))
		case CompareGt:
			out.Push(value.Bool(cmp > 0))
		case CompareGe:
			out.Push(value.Bool(cmp >= 0))
		}
	}
	return out, nil
}

func Eq(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareEq, a, b, sink, fragment)
}
func Ne(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareNe, a, b, sink, fragment)
}
func Lt(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareLt, a, b, sink, fragment)
}
func Le(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareLe, a, b, sink, fragment)
}
func Gt(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareGt, a, b, sink, fragment)
}
func Ge(a, b *column.Column, sink *diag.Sink, fragment diag.Fragment) (*column.Column, error) {
	return Compare(CompareGe, a, b, sink, fragment)
}
