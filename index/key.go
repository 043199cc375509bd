// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import "bytes"

// EncodedIndexKey is an order-preserving binary key: bytes.Compare over two
// keys built from the same Layout agrees with the key's declared multi-column
// sort order. Each field carries its own 1-byte validity indicator (0 =
// undefined, 1 = defined) immediately ahead of its payload bytes, so an
// undefined field sorts before a defined one at that field's own priority —
// nulls-first, independent of direction, without a field's null-ness ever
// being compared ahead of a higher-priority field's payload.
type EncodedIndexKey struct {
	buf []byte
}

// New allocates a zeroed key sized for l; every field starts undefined.
func New(l *Layout) *EncodedIndexKey {
	return &EncodedIndexKey{buf: make([]byte, l.TotalSize())}
}

// Bytes returns the full encoded key.
func (k *EncodedIndexKey) Bytes() []byte { return k.buf }

// Compare orders a and b by memcmp, which is the whole point of this codec:
// any two keys built from the same Layout compare correctly without
// decoding.
func Compare(a, b *EncodedIndexKey) int { return bytes.Compare(a.buf, b.buf) }

// IsDefined reports whether the field at index was set to a value (as
// opposed to SetUndefined).
func (k *EncodedIndexKey) IsDefined(l *Layout, index int) bool {
	return k.buf[l.Fields[index].Offset-1] != 0
}

// SetValid sets or clears the validity byte immediately ahead of the
// field's payload; it does not touch the payload bytes themselves.
func (k *EncodedIndexKey) SetValid(l *Layout, index int, valid bool) {
	b := byte(0)
	if valid {
		b = 1
	}
	k.buf[l.Fields[index].Offset-1] = b
}

// SetUndefined clears field index's validity byte and zeroes its payload
// bytes, so two keys that are undefined at the same field compare equal
// there and the comparison moves on to the next field.
func (k *EncodedIndexKey) SetUndefined(l *Layout, index int) {
	k.SetValid(l, index, false)
	f := l.Fields[index]
	width, _ := f.Value.FixedWidth()
	clear(k.buf[f.Offset : f.Offset+width])
}
