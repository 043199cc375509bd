// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package row

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/reifydb/reifydb/types"
)

func (r *EncodedRow) SetBool(l *Layout, index int, v bool) {
	l.field(index, types.Bool)
	buf := r.makeMut()
	if v {
		buf[l.Fields[index].Offset] = 1
	} else {
		buf[l.Fields[index].Offset] = 0
	}
	r.SetValid(index, true)
}

func (r *EncodedRow) SetInt1(l *Layout, index int, v int8) {
	f := l.field(index, types.Int1)
	r.makeMut()[f.Offset] = byte(v)
	r.SetValid(index, true)
}

func (r *EncodedRow) SetInt2(l *Layout, index int, v int16) {
	f := l.field(index, types.Int2)
	binary.LittleEndian.PutUint16(r.makeMut()[f.Offset:], uint16(v))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetInt4(l *Layout, index int, v int32) {
	f := l.field(index, types.Int4)
	binary.LittleEndian.PutUint32(r.makeMut()[f.Offset:], uint32(v))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetInt8(l *Layout, index int, v int64) {
	f := l.field(index, types.Int8)
	binary.LittleEndian.PutUint64(r.makeMut()[f.Offset:], uint64(v))
	r.SetValid(index, true)
}

// SetInt16 writes a fixed 128-bit signed value as 16 little-endian bytes,
// two's complement.
func (r *EncodedRow) SetInt16(l *Layout, index int, v *big.Int) {
	f := l.field(index, types.Int16)
	buf := r.makeMut()[f.Offset : f.Offset+16]
	putBigSigned128(buf, v)
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUint1(l *Layout, index int, v uint8) {
	f := l.field(index, types.Uint1)
	r.makeMut()[f.Offset] = v
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUint2(l *Layout, index int, v uint16) {
	f := l.field(index, types.Uint2)
	binary.LittleEndian.PutUint16(r.makeMut()[f.Offset:], v)
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUint4(l *Layout, index int, v uint32) {
	f := l.field(index, types.Uint4)
	binary.LittleEndian.PutUint32(r.makeMut()[f.Offset:], v)
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUint8(l *Layout, index int, v uint64) {
	f := l.field(index, types.Uint8)
	binary.LittleEndian.PutUint64(r.makeMut()[f.Offset:], v)
	r.SetValid(index, true)
}

// SetUint16 writes a fixed 128-bit unsigned value as 16 little-endian bytes.
func (r *EncodedRow) SetUint16(l *Layout, index int, v *uint256.Int) {
	f := l.field(index, types.Uint16)
	buf := r.makeMut()[f.Offset : f.Offset+16]
	b32 := v.Bytes32() // big-endian
	for i := 0; i < 16; i++ {
		buf[i] = b32[31-i]
	}
	r.SetValid(index, true)
}

func (r *EncodedRow) SetFloat4(l *Layout, index int, v float32) {
	f := l.field(index, types.Float4)
	binary.LittleEndian.PutUint32(r.makeMut()[f.Offset:], math.Float32bits(types.CanonicalizeFloat32(v)))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetFloat8(l *Layout, index int, v float64) {
	f := l.field(index, types.Float8)
	binary.LittleEndian.PutUint64(r.makeMut()[f.Offset:], math.Float64bits(types.CanonicalizeFloat64(v)))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUtf8(l *Layout, index int, v string) {
	l.field(index, types.Utf8)
	r.appendDynamic(l, index, []byte(v))
}

func (r *EncodedRow) SetBlob(l *Layout, index int, v []byte) {
	l.field(index, types.Blob)
	r.appendDynamic(l, index, v)
}

// SetIntBig stores an arbitrary-precision signed integer as a sign byte
// followed by big-endian magnitude in the dynamic section.
func (r *EncodedRow) SetIntBig(l *Layout, index int, v *big.Int) {
	l.field(index, types.Int)
	r.appendDynamic(l, index, encodeBigInt(v))
}

// SetUintBig stores an arbitrary-precision unsigned integer as its
// big-endian magnitude in the dynamic section.
func (r *EncodedRow) SetUintBig(l *Layout, index int, v *uint256.Int) {
	l.field(index, types.Uint)
	r.appendDynamic(l, index, v.Bytes())
}

// SetDecimal stores a Decimal as its shopspring/decimal string form in the
// dynamic section, preserving the exact declared scale.
func (r *EncodedRow) SetDecimal(l *Layout, index int, v decimal.Decimal) {
	l.field(index, types.Decimal)
	r.appendDynamic(l, index, []byte(v.String()))
}

func (r *EncodedRow) SetDate(l *Layout, index int, v types.Date) {
	f := l.field(index, types.Date)
	binary.LittleEndian.PutUint32(r.makeMut()[f.Offset:], uint32(v))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetDateTime(l *Layout, index int, v types.DateTime) {
	f := l.field(index, types.DateTime)
	buf := r.makeMut()[f.Offset:]
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Seconds))
	binary.LittleEndian.PutUint32(buf[8:12], v.Nanos)
	r.SetValid(index, true)
}

func (r *EncodedRow) SetTime(l *Layout, index int, v types.Time) {
	f := l.field(index, types.Time)
	binary.LittleEndian.PutUint64(r.makeMut()[f.Offset:], uint64(v))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetInterval(l *Layout, index int, v types.Interval) {
	f := l.field(index, types.Interval)
	buf := r.makeMut()[f.Offset:]
	binary.LittleEndian.PutUint32(buf[0:4], uint32(v.Months))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(v.Days))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(v.Nanos))
	r.SetValid(index, true)
}

func (r *EncodedRow) SetRowNumber(l *Layout, index int, v uint64) {
	f := l.field(index, types.RowNumber)
	binary.LittleEndian.PutUint64(r.makeMut()[f.Offset:], v)
	r.SetValid(index, true)
}

func (r *EncodedRow) setFixed16(l *Layout, index int, want types.Type, v [16]byte) {
	f := l.field(index, want)
	copy(r.makeMut()[f.Offset:f.Offset+16], v[:])
	r.SetValid(index, true)
}

func (r *EncodedRow) SetUuid4(l *Layout, index int, v types.Uuid4) {
	r.setFixed16(l, index, types.Uuid4, v)
}
func (r *EncodedRow) SetUuid7(l *Layout, index int, v types.Uuid7) {
	r.setFixed16(l, index, types.Uuid7, v)
}
func (r *EncodedRow) SetIdentityId(l *Layout, index int, v types.IdentityId) {
	r.setFixed16(l, index, types.IdentityId, v)
}

func putBigSigned128(buf []byte, v *big.Int) {
	for i := range buf {
		buf[i] = 0
	}
	mag := new(big.Int).Abs(v)
	magBytes := mag.Bytes() // big-endian
	for i := 0; i < len(magBytes) && i < 16; i++ {
		buf[i] = magBytes[len(magBytes)-1-i]
	}
	if v.Sign() < 0 {
		// two's complement: invert and add one
		carry := uint16(1)
		for i := 0; i < 16; i++ {
			sum := uint16(^buf[i]) + carry
			buf[i] = byte(sum)
			carry = sum >> 8
		}
	}
}

func encodeBigInt(v *big.Int) []byte {
	mag := new(big.Int).Abs(v)
	magBytes := mag.Bytes()
	out := make([]byte, 1+len(magBytes))
	if v.Sign() < 0 {
		out[0] = 1
	}
	copy(out[1:], magBytes)
	return out
}
