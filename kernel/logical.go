// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package kernel

import (
	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/diag"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// And implements three-valued logical AND over two Bool columns
// (spec.md §4.5): false AND anything = false; true AND undefined =
// undefined; undefined AND undefined = undefined.
func And(a, b *column.Column, fragment diag.Fragment) (*column.Column, error) {
	if a.Len() != b.Len() {
		return nil, diag.New(diag.CodeRowCountMismatch, "operand columns have different row counts").WithFragment(fragment)
	}
	out := column.WithCapacity("", types.Bool, a.Len())
	for i := 0; i < a.Len(); i++ {
		aDef, aVal := a.IsValid(i), false
		if aDef {
			aVal = a.Get(i).AsBool()
		}
		bDef, bVal := b.IsValid(i), false
		if bDef {
			bVal = b.Get(i).AsBool()
		}

		switch {
		case aDef && !aVal, bDef && !bVal:
			out.Push(value.Bool(false))
		case aDef && bDef:
			out.Push(value.Bool(aVal && bVal))
		default:
			out.PushUndefined()
		}
	}
	return out, nil
}

// Or implements three-valued logical OR: true OR anything = true; false OR
// undefined = undefined; undefined OR undefined = undefined.
func Or(a, b *column.Column, fragment diag.Fragment) (*column.Column, error) {
	if a.Len() != b.Len() {
		return nil, diag.New(diag.CodeRowCountMismatch, "operand columns have different row counts").WithFragment(fragment)
	}
	out := column.WithCapacity("", types.Bool, a.Len())
	for i := 0; i < a.Len(); i++ {
		aDef, aVal := a.IsValid(i), false
		if aDef {
			aVal = a.Get(i).AsBool()
		}
		bDef, bVal := b.IsValid(i), false
		if bDef {
			bVal = b.Get(i).AsBool()
		}

		switch {
		case aDef && aVal, bDef && bVal:
			out.Push(value.Bool(true))
		case aDef && bDef:
			out.Push(value.Bool(aVal || bVal))
		default:
			out.PushUndefined()
		}
	}
	return out, nil
}
