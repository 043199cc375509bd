// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package row implements the fixed-layout binary row codec (spec.md §3
// "Row", §4.3): a validity bitmap, a static section of fixed-width payloads
// or 8-byte dynamic-section references, and a dynamic section for
// variable-width data. Grounded on
// original_source/crates/reifydb-core/src/row/set.rs, which this package
// reproduces in Go: little-endian fixed-width fields (row bytes are never
// memcmp-compared — that is the index codec's job, package index) and
// little-endian (offset u32, length u32) references for variable-width
// fields.
package row

import "github.com/reifydb/reifydb/types"

// Field describes one row slot: its declared type and its byte offset in
// the static section.
type Field struct {
	Value  types.Type
	Offset int
}

// Layout is the compiled, reusable shape of every row sharing a schema: the
// validity bitmap width, the per-field offsets, and the total static size.
// One Layout is built once per schema and reused for every row.
type Layout struct {
	Fields      []Field
	bitmapBytes int
	staticSize  int
}

// dynamicRef is the byte width of a (offset, length) reference into the
// dynamic section: Utf8, Blob, and the arbitrary-precision Int/Uint/Decimal
// axes (which carry no fixed width of their own) are all stored this way.
const dynamicRef = 8

func isDynamic(t types.Type) bool {
	if t.IsVariableWidth() {
		return true
	}
	switch t {
	case types.Int, types.Uint, types.Decimal:
		return true
	default:
		return false
	}
}

// NewLayout computes field offsets for a row holding one value per entry in
// fieldTypes, in order.
func NewLayout(fieldTypes []types.Type) *Layout {
	bitmapBytes := (len(fieldTypes) + 7) / 8
	fields := make([]Field, len(fieldTypes))
	offset := bitmapBytes
	for i, t := range fieldTypes {
		fields[i] = Field{Value: t, Offset: offset}
		if isDynamic(t) {
			offset += dynamicRef
			continue
		}
		width, ok := t.FixedWidth()
		if !ok {
			panic("row: type " + t.String() + " has no row encoding")
		}
		offset += width
	}
	return &Layout{Fields: fields, bitmapBytes: bitmapBytes, staticSize: offset}
}

// TotalStaticSize returns the byte length of the bitmap plus static section
// (everything before the dynamic section begins).
func (l *Layout) TotalStaticSize() int { return l.staticSize }

// BitmapBytes returns the byte width of the leading validity bitmap.
func (l *Layout) BitmapBytes() int { return l.bitmapBytes }

// field panics with a descriptive message instead of an out-of-range index
// panic, matching the debug_assert_eq! contract-violation style the codec
// this is grounded on uses throughout.
func (l *Layout) field(index int, want types.Type) Field {
	f := l.Fields[index]
	if f.Value != want {
		panic("row: field " + f.Value.String() + " at index accessed as " + want.String())
	}
	return f
}
