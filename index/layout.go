// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package index implements the order-preserving binary index key codec
// (spec.md §3 "IndexKey", §4.4): encoding a tuple of scalar values into a
// byte string such that bytes.Compare over two encoded keys agrees with the
// multi-column sort order the key was built for. Grounded on
// original_source/crates/reifydb-core/src/index/set.rs: big-endian
// fixed-width fields with a sign-bit flip for signed integers, bitwise NOT
// of the whole field for unsigned integers under Desc, and the float
// encoding that treats negative values specially before any Desc inversion.
//
// Null-ness is encoded per field (a 1-byte validity indicator immediately
// ahead of that field's payload), not as a single bitmap ahead of the whole
// tuple: a leading tuple-wide bitmap would let a lower-priority field's
// null-ness outrank a higher-priority field's payload in bytes.Compare,
// which breaks memcmp/tuple-order agreement for any key with more than one
// field. Keeping each field's validity byte adjacent to its own payload
// means it is compared at exactly that field's priority, same as every
// other byte of the field.
package index

import "github.com/reifydb/reifydb/types"

// Direction is the per-field sort direction a key field was encoded for.
type Direction uint8

const (
	Asc Direction = iota
	Desc
)

// Field describes one key slot: its declared type, sort direction, and byte
// offset in the static section.
type Field struct {
	Value     types.Type
	Direction Direction
	Offset    int
}

// Layout is the compiled, reusable shape of an index key. Unlike row.Layout,
// every field here must be fixed-width: order-preserving encoding has no
// sound representation for a variable-width or arbitrary-precision value,
// so Utf8, Blob, Int, Uint and Decimal may not appear in an index key
// (spec.md §4.4 Non-goals).
type Layout struct {
	Fields     []Field
	staticSize int
}

// NewLayout computes field offsets for a key over fieldTypes in the given
// per-field directions (same length, same order). Each field gets its own
// 1-byte validity indicator immediately ahead of its payload bytes, so a
// field's null-ness is compared at exactly that field's priority in the
// byte stream — not grouped with every other field's null-ness ahead of
// the whole tuple.
func NewLayout(fieldTypes []types.Type, directions []Direction) *Layout {
	if len(fieldTypes) != len(directions) {
		panic("index: fieldTypes and directions length mismatch")
	}
	fields := make([]Field, len(fieldTypes))
	offset := 0
	for i, t := range fieldTypes {
		width, ok := t.FixedWidth()
		if !ok || t.IsVariableWidth() {
			panic("index: type " + t.String() + " cannot appear in an order-preserving key")
		}
		offset++ // this field's validity byte
		fields[i] = Field{Value: t, Direction: directions[i], Offset: offset}
		offset += width
	}
	return &Layout{Fields: fields, staticSize: offset}
}

// TotalSize returns the full encoded key length.
func (l *Layout) TotalSize() int { return l.staticSize }

func (l *Layout) field(index int, want types.Type) Field {
	f := l.Fields[index]
	if f.Value != want {
		panic("index: field " + f.Value.String() + " at index accessed as " + want.String())
	}
	return f
}
