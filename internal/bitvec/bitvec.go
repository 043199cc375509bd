// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package bitvec implements the validity bitmap shared by every Column
// container (spec.md §3, §4.2, §9): a bit-packed vector, one bit per row,
// 1 = defined. It wraps github.com/willf/bitset, the teacher's dense
// fixed-size bitset library, rather than rolling a byte-slice bitmap by
// hand — it already gives popcount and AND/OR exactly as spec.md §9 names
// them ("The validity bitmap itself is a bit-packed vector with popcount
// and AND/OR helpers").
package bitvec

import "github.com/willf/bitset"

// Vec is a fixed-length validity bitmap: bit i is set iff row i is defined.
type Vec struct {
	set *bitset.BitSet
	n   uint
}

// New returns a Vec of length n with every bit clear (all-undefined).
func New(n uint) *Vec {
	return &Vec{set: bitset.New(n), n: n}
}

// AllSet returns a Vec of length n with every bit set (all-defined).
func AllSet(n uint) *Vec {
	v := New(n)
	for i := uint(0); i < n; i++ {
		v.set.Set(i)
	}
	return v
}

// FromBools builds a Vec from an explicit validity slice.
func FromBools(bits []bool) *Vec {
	v := New(uint(len(bits)))
	for i, b := range bits {
		if b {
			v.set.Set(uint(i))
		}
	}
	return v
}

// Len reports the number of rows this Vec tracks.
func (v *Vec) Len() uint { return v.n }

// Get reports whether row i is defined.
func (v *Vec) Get(i uint) bool { return v.set.Test(i) }

// Set marks row i defined.
func (v *Vec) Set(i uint) { v.set.Set(i) }

// Clear marks row i undefined.
func (v *Vec) Clear(i uint) { v.set.Clear(i) }

// Push appends one bit.
func (v *Vec) Push(b bool) {
	if b {
		v.set.Set(v.n)
	}
	v.n++
}

// Popcount returns the number of defined rows.
func (v *Vec) Popcount() uint { return v.set.Count() }

// IsAllSet reports whether every tracked row is defined — the fast-path
// enabler column.Data.IsFullyDefined relies on (spec.md §4.2, §9).
func (v *Vec) IsAllSet() bool { return v.set.Count() == v.n }

// IsAllClear reports whether every tracked row is undefined.
func (v *Vec) IsAllClear() bool { return v.set.None() }

// And returns the bitwise AND of v and other, both of length n.
func (v *Vec) And(other *Vec) *Vec {
	return &Vec{set: v.set.Intersection(other.set), n: v.n}
}

// Or returns the bitwise OR of v and other, both of length n.
func (v *Vec) Or(other *Vec) *Vec {
	return &Vec{set: v.set.Union(other.set), n: v.n}
}

// Clone returns an independent copy of v.
func (v *Vec) Clone() *Vec {
	return &Vec{set: v.set.Clone(), n: v.n}
}

// Slice returns a new Vec covering rows [start, end) of v.
func (v *Vec) Slice(start, end uint) *Vec {
	out := New(end - start)
	for i := start; i < end; i++ {
		if v.set.Test(i) {
			out.set.Set(i - start)
		}
	}
	return out
}

// Append mutates v in place, appending other's bits after v's own.
func (v *Vec) Append(other *Vec) {
	base := v.n
	for i := uint(0); i < other.n; i++ {
		if other.set.Test(i) {
			v.set.Set(base + i)
		}
	}
	v.n += other.n
}

// Bools materializes the Vec as a []bool, mostly for tests.
func (v *Vec) Bools() []bool {
	out := make([]bool, v.n)
	for i := uint(0); i < v.n; i++ {
		out[i] = v.set.Test(i)
	}
	return out
}
