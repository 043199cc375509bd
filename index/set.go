// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import (
	"encoding/binary"
	"math"

	"github.com/reifydb/reifydb/types"
)

// signFlipDesc applies the ASC sign-bit flip (so two's-complement signed
// integers compare correctly under memcmp) and then, for Desc fields,
// inverts every byte — the same two-step recipe set.rs uses for every
// signed width.
func signFlipDesc(bytes []byte, dir Direction) {
	bytes[0] ^= 0x80
	if dir == Desc {
		for i := range bytes {
			bytes[i] = ^bytes[i]
		}
	}
}

// invertDesc inverts every byte for Desc fields; unsigned integers need no
// ASC transform since big-endian magnitude already orders correctly.
func invertDesc(bytes []byte, dir Direction) {
	if dir == Desc {
		for i := range bytes {
			bytes[i] = ^bytes[i]
		}
	}
}

// encodeFloatBits applies the float total-order transform: negative values
// invert every bit (so larger magnitude negatives sort first), non-negative
// values flip only the sign bit (so they sort after every negative value).
// Desc then inverts the whole thing again, matching set.rs.
func encodeFloatBits(bytes []byte, negative bool, dir Direction) {
	if negative {
		for i := range bytes {
			bytes[i] = ^bytes[i]
		}
	} else {
		bytes[0] ^= 0x80
	}
	if dir == Desc {
		for i := range bytes {
			bytes[i] = ^bytes[i]
		}
	}
}

func (l *Layout) SetBool(k *EncodedIndexKey, index int, v bool) {
	f := l.field(index, types.Bool)
	k.SetValid(l, index, true)
	b := byte(0)
	if v {
		b = 1
	}
	if f.Direction == Desc {
		b = 1 - b
	}
	k.buf[f.Offset] = b
}

func (l *Layout) SetInt1(k *EncodedIndexKey, index int, v int8) {
	f := l.field(index, types.Int1)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+1]
	buf[0] = byte(v)
	signFlipDesc(buf, f.Direction)
}

func (l *Layout) SetInt2(k *EncodedIndexKey, index int, v int16) {
	f := l.field(index, types.Int2)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+2]
	binary.BigEndian.PutUint16(buf, uint16(v))
	signFlipDesc(buf, f.Direction)
}

func (l *Layout) SetInt4(k *EncodedIndexKey, index int, v int32) {
	f := l.field(index, types.Int4)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+4]
	binary.BigEndian.PutUint32(buf, uint32(v))
	signFlipDesc(buf, f.Direction)
}

func (l *Layout) SetInt8(k *EncodedIndexKey, index int, v int64) {
	f := l.field(index, types.Int8)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+8]
	binary.BigEndian.PutUint64(buf, uint64(v))
	signFlipDesc(buf, f.Direction)
}

// SetInt16 encodes a fixed 128-bit signed value, magnitude big-endian, sign
// bit flipped for ASC total order.
func (l *Layout) SetInt16(k *EncodedIndexKey, index int, hi uint64, lo uint64) {
	f := l.field(index, types.Int16)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+16]
	binary.BigEndian.PutUint64(buf[0:8], hi)
	binary.BigEndian.PutUint64(buf[8:16], lo)
	signFlipDesc(buf, f.Direction)
}

func (l *Layout) SetUint1(k *EncodedIndexKey, index int, v uint8) {
	f := l.field(index, types.Uint1)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+1]
	buf[0] = v
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetUint2(k *EncodedIndexKey, index int, v uint16) {
	f := l.field(index, types.Uint2)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+2]
	binary.BigEndian.PutUint16(buf, v)
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetUint4(k *EncodedIndexKey, index int, v uint32) {
	f := l.field(index, types.Uint4)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+4]
	binary.BigEndian.PutUint32(buf, v)
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetUint8(k *EncodedIndexKey, index int, v uint64) {
	f := l.field(index, types.Uint8)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+8]
	binary.BigEndian.PutUint64(buf, v)
	invertDesc(buf, f.Direction)
}

// SetUint16 encodes a fixed 128-bit unsigned value, magnitude big-endian.
func (l *Layout) SetUint16(k *EncodedIndexKey, index int, hi uint64, lo uint64) {
	f := l.field(index, types.Uint16)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+16]
	binary.BigEndian.PutUint64(buf[0:8], hi)
	binary.BigEndian.PutUint64(buf[8:16], lo)
	invertDesc(buf, f.Direction)
}

// SetRowNumber encodes the RowNumber pseudo-column the same way as Uint8:
// big-endian magnitude, inverted under Desc.
func (l *Layout) SetRowNumber(k *EncodedIndexKey, index int, v uint64) {
	f := l.field(index, types.RowNumber)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+8]
	binary.BigEndian.PutUint64(buf, v)
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetFloat4(k *EncodedIndexKey, index int, v float32) {
	f := l.field(index, types.Float4)
	v = types.CanonicalizeFloat32(v)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+4]
	binary.BigEndian.PutUint32(buf, math.Float32bits(v))
	encodeFloatBits(buf, math.Signbit(float64(v)), f.Direction)
}

func (l *Layout) SetFloat8(k *EncodedIndexKey, index int, v float64) {
	f := l.field(index, types.Float8)
	v = types.CanonicalizeFloat64(v)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+8]
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	encodeFloatBits(buf, math.Signbit(v), f.Direction)
}

func (l *Layout) SetDate(k *EncodedIndexKey, index int, v types.Date) {
	f := l.field(index, types.Date)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+4]
	binary.BigEndian.PutUint32(buf, uint32(v))
	signFlipDesc(buf, f.Direction)
}

func (l *Layout) SetTime(k *EncodedIndexKey, index int, v types.Time) {
	f := l.field(index, types.Time)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+8]
	binary.BigEndian.PutUint64(buf, uint64(v))
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetDateTime(k *EncodedIndexKey, index int, v types.DateTime) {
	f := l.field(index, types.DateTime)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+12]
	binary.BigEndian.PutUint64(buf[0:8], uint64(v.Seconds))
	binary.BigEndian.PutUint32(buf[8:12], v.Nanos)
	buf[0] ^= 0x80
	if f.Direction == Desc {
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}
}

func (l *Layout) SetInterval(k *EncodedIndexKey, index int, v types.Interval) {
	f := l.field(index, types.Interval)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+16]
	binary.BigEndian.PutUint32(buf[0:4], uint32(v.Months))
	binary.BigEndian.PutUint32(buf[4:8], uint32(v.Days))
	binary.BigEndian.PutUint64(buf[8:16], uint64(v.Nanos))
	// months, days, and nanos are all signed components; each needs its
	// own sign-bit flip for order-preserving encoding (unlike SetDateTime,
	// whose nanos field is unsigned).
	buf[0] ^= 0x80
	buf[4] ^= 0x80
	buf[8] ^= 0x80
	if f.Direction == Desc {
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}
}

func (l *Layout) setFixed16(k *EncodedIndexKey, index int, want types.Type, v [16]byte) {
	f := l.field(index, want)
	k.SetValid(l, index, true)
	buf := k.buf[f.Offset : f.Offset+16]
	copy(buf, v[:])
	invertDesc(buf, f.Direction)
}

func (l *Layout) SetUuid4(k *EncodedIndexKey, index int, v types.Uuid4) {
	l.setFixed16(k, index, types.Uuid4, v)
}
func (l *Layout) SetUuid7(k *EncodedIndexKey, index int, v types.Uuid7) {
	l.setFixed16(k, index, types.Uuid7, v)
}
func (l *Layout) SetIdentityId(k *EncodedIndexKey, index int, v types.IdentityId) {
	l.setFixed16(k, index, types.IdentityId, v)
}
