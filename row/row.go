// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package row

import "github.com/reifydb/reifydb/column"

// EncodedRow is one row's binary encoding: a copy-on-write byte buffer. The
// leading Layout.BitmapBytes() bytes are the validity bitmap (one bit per
// field, LSB first within each byte, 1 = defined); the rest is the static
// section followed by the dynamic section, both described by a Layout.
type EncodedRow struct {
	buf column.CowVec[byte]
}

// New allocates a zeroed row sized for l's static section; every field
// starts undefined.
func New(l *Layout) EncodedRow {
	return EncodedRow{buf: column.NewCowVec(make([]byte, l.TotalStaticSize()))}
}

// FromBytes wraps an already-encoded row buffer (e.g. read back from
// storage).
func FromBytes(b []byte) EncodedRow {
	return EncodedRow{buf: column.NewCowVec(append([]byte(nil), b...))}
}

// Bytes returns a read-only view of the full encoded row.
func (r EncodedRow) Bytes() []byte { return r.buf.View() }

// Len reports the current byte length, static section plus however much of
// the dynamic section has been appended so far.
func (r EncodedRow) Len() int { return r.buf.Len() }

// Clone returns a row sharing copy-on-write storage with the receiver.
func (r EncodedRow) Clone() EncodedRow { return EncodedRow{buf: r.buf.Clone()} }

func (r *EncodedRow) makeMut() []byte { return r.buf.MakeMut() }

// IsDefined reports whether field index's validity bit is set.
func (r EncodedRow) IsDefined(index int) bool {
	byteIdx, bit := index/8, uint(index%8)
	if byteIdx >= len(r.buf.View()) {
		return false
	}
	return r.buf.View()[byteIdx]&(1<<bit) != 0
}

// SetValid sets or clears field index's validity bit.
func (r *EncodedRow) SetValid(index int, valid bool) {
	byteIdx, bit := index/8, uint(index%8)
	buf := r.makeMut()
	if valid {
		buf[byteIdx] |= 1 << bit
	} else {
		buf[byteIdx] &^= 1 << bit
	}
}

// SetUndefined clears field index's validity bit and, for a fixed-width
// field, zeroes its static-section bytes.
func (r *EncodedRow) SetUndefined(l *Layout, index int) {
	r.SetValid(index, false)
	f := l.Fields[index]
	if isDynamic(f.Value) {
		return
	}
	width, _ := f.Value.FixedWidth()
	buf := r.makeMut()
	for i := 0; i < width; i++ {
		buf[f.Offset+i] = 0
	}
}

// dynamicSectionSize reports how many bytes of the dynamic section are
// already in use, i.e. the byte length beyond the static section.
func (r EncodedRow) dynamicSectionSize(l *Layout) int {
	return r.buf.Len() - l.TotalStaticSize()
}

// appendDynamic appends data to the dynamic section and writes a
// little-endian (offset uint32, length uint32) reference into the static
// section at field.Offset. Per the codec this is grounded on, a
// variable-width field may only be set once per row: setting it twice would
// silently leak the first write's dynamic-section bytes.
func (r *EncodedRow) appendDynamic(l *Layout, index int, data []byte) {
	if r.IsDefined(index) {
		panic("row: field already set (variable-width fields are write-once)")
	}
	f := l.Fields[index]
	offset := uint32(r.dynamicSectionSize(l))
	r.buf.Append(data...)

	buf := r.makeMut()
	ref := buf[f.Offset : f.Offset+8]
	putU32LE(ref[0:4], offset)
	putU32LE(ref[4:8], uint32(len(data)))
	r.SetValid(index, true)
}

func (r EncodedRow) readDynamic(l *Layout, index int) []byte {
	f := l.Fields[index]
	ref := r.buf.View()[f.Offset : f.Offset+8]
	offset := getU32LE(ref[0:4])
	length := getU32LE(ref[4:8])
	start := l.TotalStaticSize() + int(offset)
	return r.buf.View()[start : start+int(length)]
}

func putU32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getU32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
