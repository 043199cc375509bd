// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package value

import (
	"strings"

	"github.com/reifydb/reifydb/types"
)

// Compare orders two defined, same-or-promotable-type values. ok is false
// when the values have no common ordering (incompatible types, or either
// operand is a canonical NaN — relational comparisons treat NaN as
// unordered per IEEE 754 semantics, spec.md §4.1's resolved Open Question).
func Compare(a, b Value) (cmp int, ok bool) {
	if a.IsUndefined() || b.IsUndefined() {
		return 0, false
	}

	if a.typ == types.Utf8 && b.typ == types.Utf8 {
		return strings.Compare(a.str, b.str), true
	}
	if a.typ == types.Bool && b.typ == types.Bool {
		switch {
		case a.b == b.b:
			return 0, true
		case !a.b:
			return -1, true
		default:
			return 1, true
		}
	}

	target := types.Promote(a.typ, b.typ)
	if target == types.Undefined || !target.IsNumber() {
		return 0, false
	}

	if target == types.Decimal {
		da, ok1 := DecimalOf(a)
		db, ok2 := DecimalOf(b)
		if !ok1 || !ok2 {
			return 0, false
		}
		return da.Cmp(db), true
	}

	if target == types.Int16 || target == types.Int || target == types.Uint16 || target == types.Uint {
		ba, ok1 := BigIntOf(a)
		bb, ok2 := BigIntOf(b)
		if !ok1 || !ok2 {
			return 0, false
		}
		return ba.Cmp(bb), true
	}

	// Int8/Uint8 promote to themselves, so routing them through float64
	// loses precision above 2^53. Compare as integers instead; fall back
	// to big.Int only when a Uint8 operand doesn't fit in an int64 (mixed
	// signed/unsigned or a value past math.MaxInt64).
	if target == types.Int8 || target == types.Uint8 {
		if ia, aok := Int64Of(a); aok {
			if ib, bok := Int64Of(b); bok {
				switch {
				case ia < ib:
					return -1, true
				case ia > ib:
					return 1, true
				default:
					return 0, true
				}
			}
		}
		ba, ok1 := BigIntOf(a)
		bb, ok2 := BigIntOf(b)
		if !ok1 || !ok2 {
			return 0, false
		}
		return ba.Cmp(bb), true
	}

	fa, ok1 := Float64Of(a)
	fb, ok2 := Float64Of(b)
	if !ok1 || !ok2 {
		return 0, false
	}
	if fa != fa || fb != fb { // NaN: unordered
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	default:
		return 0, true
	}
}

// Equal reports whether a and b compare equal under relational semantics
// (NaN is never equal to anything, including another NaN).
func Equal(a, b Value) bool {
	cmp, ok := Compare(a, b)
	return ok && cmp == 0
}
