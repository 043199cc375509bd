// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package column implements the typed, value-parallel column store
// (spec.md §3 "Column", §4.2) that every kernel (C5), the evaluator (C6)
// and the VM (C7) operate on.
package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Data is the payload of one Column: either a typed container pairing a
// dense backing vector with a validity bitmap of equal length, or the
// Undefined placeholder recording only a row count (spec.md §3).
//
// Implementations must uphold: payload.Len() == validity.Len() for every
// typed variant (Invariant 1, spec.md §8); an invalid slot's payload is
// never observed outside the container itself.
type Data interface {
	// Type reports the logical type this container holds. UndefinedData
	// reports types.Undefined.
	Type() types.Type

	// Len reports the row count.
	Len() int

	// Get materializes the scalar at row i, returning value.Undefined
	// when the validity bit is clear regardless of backing payload.
	Get(i int) value.Value

	// IsValid reports whether row i's validity bit is set.
	IsValid(i int) bool

	// IsFullyDefined reports whether every row is valid — the fast-path
	// enabler kernels (C5) consult to skip per-row bitmap reads
	// (spec.md §4.2, §9).
	IsFullyDefined() bool

	// PushValue appends one value, expanding the container if v's type
	// differs from this container's IF this container is Undefined
	// (handled by Column, not the concrete container — see column.go).
	// Concrete typed containers only accept a value of their own type.
	PushValue(v value.Value)

	// PushUndefined appends one undefined slot (default payload, clear
	// validity bit).
	PushUndefined()

	// Clone returns a cheap copy-on-write clone: shares storage with
	// the receiver until one of the two is mutated.
	Clone() Data

	// Slice returns a new Data covering rows [start, end).
	Slice(start, end int) Data
}

// validity is embedded by every typed container; it is not itself a Data
// implementation.
type validity struct {
	bits *bitvec.Vec
}

func newValidityAllFalse(n int) validity {
	return validity{bits: bitvec.New(uint(n))}
}

func (v validity) IsValid(i int) bool     { return v.bits.Get(uint(i)) }
func (v validity) IsFullyDefined() bool   { return v.bits.IsAllSet() }
func (v *validity) setValid(i int, b bool) {
	if b {
		v.bits.Set(uint(i))
	} else {
		v.bits.Clear(uint(i))
	}
}
func (v *validity) pushValid(b bool) { v.bits.Push(b) }
