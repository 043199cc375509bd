// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import (
	"encoding/binary"
	"math"

	"github.com/reifydb/reifydb/types"
)

// decodeSigned reverses signFlipDesc: undo the Desc inversion, then the ASC
// sign-bit flip, leaving the original two's-complement bytes.
func decodeSigned(src []byte, dir Direction) []byte {
	out := append([]byte(nil), src...)
	if dir == Desc {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	out[0] ^= 0x80
	return out
}

func decodeUnsigned(src []byte, dir Direction) []byte {
	out := append([]byte(nil), src...)
	if dir == Desc {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	return out
}

// decodeFloatBits reverses encodeFloatBits.
func decodeFloatBits(src []byte, dir Direction) []byte {
	out := append([]byte(nil), src...)
	if dir == Desc {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	if out[0]&0x80 != 0 {
		out[0] ^= 0x80
	} else {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	return out
}

func (l *Layout) GetBool(k *EncodedIndexKey, index int) bool {
	f := l.field(index, types.Bool)
	b := k.buf[f.Offset]
	if f.Direction == Desc {
		b = 1 - b
	}
	return b != 0
}

func (l *Layout) GetInt1(k *EncodedIndexKey, index int) int8 {
	f := l.field(index, types.Int1)
	out := decodeSigned(k.buf[f.Offset:f.Offset+1], f.Direction)
	return int8(out[0])
}

func (l *Layout) GetInt2(k *EncodedIndexKey, index int) int16 {
	f := l.field(index, types.Int2)
	out := decodeSigned(k.buf[f.Offset:f.Offset+2], f.Direction)
	return int16(binary.BigEndian.Uint16(out))
}

func (l *Layout) GetInt4(k *EncodedIndexKey, index int) int32 {
	f := l.field(index, types.Int4)
	out := decodeSigned(k.buf[f.Offset:f.Offset+4], f.Direction)
	return int32(binary.BigEndian.Uint32(out))
}

func (l *Layout) GetInt8(k *EncodedIndexKey, index int) int64 {
	f := l.field(index, types.Int8)
	out := decodeSigned(k.buf[f.Offset:f.Offset+8], f.Direction)
	return int64(binary.BigEndian.Uint64(out))
}

func (l *Layout) GetInt16(k *EncodedIndexKey, index int) (hi, lo uint64) {
	f := l.field(index, types.Int16)
	out := decodeSigned(k.buf[f.Offset:f.Offset+16], f.Direction)
	return binary.BigEndian.Uint64(out[0:8]), binary.BigEndian.Uint64(out[8:16])
}

func (l *Layout) GetUint1(k *EncodedIndexKey, index int) uint8 {
	f := l.field(index, types.Uint1)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+1], f.Direction)
	return out[0]
}

func (l *Layout) GetUint2(k *EncodedIndexKey, index int) uint16 {
	f := l.field(index, types.Uint2)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+2], f.Direction)
	return binary.BigEndian.Uint16(out)
}

func (l *Layout) GetUint4(k *EncodedIndexKey, index int) uint32 {
	f := l.field(index, types.Uint4)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+4], f.Direction)
	return binary.BigEndian.Uint32(out)
}

func (l *Layout) GetUint8(k *EncodedIndexKey, index int) uint64 {
	f := l.field(index, types.Uint8)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+8], f.Direction)
	return binary.BigEndian.Uint64(out)
}

func (l *Layout) GetUint16(k *EncodedIndexKey, index int) (hi, lo uint64) {
	f := l.field(index, types.Uint16)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+16], f.Direction)
	return binary.BigEndian.Uint64(out[0:8]), binary.BigEndian.Uint64(out[8:16])
}

func (l *Layout) GetRowNumber(k *EncodedIndexKey, index int) uint64 {
	f := l.field(index, types.RowNumber)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+8], f.Direction)
	return binary.BigEndian.Uint64(out)
}

func (l *Layout) GetFloat4(k *EncodedIndexKey, index int) float32 {
	f := l.field(index, types.Float4)
	out := decodeFloatBits(k.buf[f.Offset:f.Offset+4], f.Direction)
	return math.Float32frombits(binary.BigEndian.Uint32(out))
}

func (l *Layout) GetFloat8(k *EncodedIndexKey, index int) float64 {
	f := l.field(index, types.Float8)
	out := decodeFloatBits(k.buf[f.Offset:f.Offset+8], f.Direction)
	return math.Float64frombits(binary.BigEndian.Uint64(out))
}

func (l *Layout) GetDate(k *EncodedIndexKey, index int) types.Date {
	f := l.field(index, types.Date)
	out := decodeSigned(k.buf[f.Offset:f.Offset+4], f.Direction)
	return types.Date(int32(binary.BigEndian.Uint32(out)))
}

func (l *Layout) GetTime(k *EncodedIndexKey, index int) types.Time {
	f := l.field(index, types.Time)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+8], f.Direction)
	return types.Time(binary.BigEndian.Uint64(out))
}

func (l *Layout) GetDateTime(k *EncodedIndexKey, index int) types.DateTime {
	f := l.field(index, types.DateTime)
	out := append([]byte(nil), k.buf[f.Offset:f.Offset+12]...)
	if f.Direction == Desc {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	out[0] ^= 0x80
	return types.DateTime{
		Seconds: int64(binary.BigEndian.Uint64(out[0:8])),
		Nanos:   binary.BigEndian.Uint32(out[8:12]),
	}
}

func (l *Layout) GetInterval(k *EncodedIndexKey, index int) types.Interval {
	f := l.field(index, types.Interval)
	out := append([]byte(nil), k.buf[f.Offset:f.Offset+16]...)
	if f.Direction == Desc {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	out[0] ^= 0x80
	out[4] ^= 0x80
	out[8] ^= 0x80
	return types.Interval{
		Months: int32(binary.BigEndian.Uint32(out[0:4])),
		Days:   int32(binary.BigEndian.Uint32(out[4:8])),
		Nanos:  int64(binary.BigEndian.Uint64(out[8:16])),
	}
}

func (l *Layout) getFixed16(k *EncodedIndexKey, index int, want types.Type) [16]byte {
	f := l.field(index, want)
	out := decodeUnsigned(k.buf[f.Offset:f.Offset+16], f.Direction)
	var v [16]byte
	copy(v[:], out)
	return v
}

func (l *Layout) GetUuid4(k *EncodedIndexKey, index int) types.Uuid4 {
	return types.Uuid4(l.getFixed16(k, index, types.Uuid4))
}
func (l *Layout) GetUuid7(k *EncodedIndexKey, index int) types.Uuid7 {
	return types.Uuid7(l.getFixed16(k, index, types.Uuid7))
}
func (l *Layout) GetIdentityId(k *EncodedIndexKey, index int) types.IdentityId {
	return types.IdentityId(l.getFixed16(k, index, types.IdentityId))
}
