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

func (r EncodedRow) GetBool(l *Layout, index int) bool {
	f := l.field(index, types.Bool)
	return r.buf.View()[f.Offset] != 0
}

func (r EncodedRow) GetInt1(l *Layout, index int) int8 {
	f := l.field(index, types.Int1)
	return int8(r.buf.View()[f.Offset])
}

func (r EncodedRow) GetInt2(l *Layout, index int) int16 {
	f := l.field(index, types.Int2)
	return int16(binary.LittleEndian.Uint16(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetInt4(l *Layout, index int) int32 {
	f := l.field(index, types.Int4)
	return int32(binary.LittleEndian.Uint32(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetInt8(l *Layout, index int) int64 {
	f := l.field(index, types.Int8)
	return int64(binary.LittleEndian.Uint64(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetInt16(l *Layout, index int) *big.Int {
	f := l.field(index, types.Int16)
	buf := r.buf.View()[f.Offset : f.Offset+16]
	return getBigSigned128(buf)
}

func (r EncodedRow) GetUint1(l *Layout, index int) uint8 {
	f := l.field(index, types.Uint1)
	return r.buf.View()[f.Offset]
}

func (r EncodedRow) GetUint2(l *Layout, index int) uint16 {
	f := l.field(index, types.Uint2)
	return binary.LittleEndian.Uint16(r.buf.View()[f.Offset:])
}

func (r EncodedRow) GetUint4(l *Layout, index int) uint32 {
	f := l.field(index, types.Uint4)
	return binary.LittleEndian.Uint32(r.buf.View()[f.Offset:])
}

func (r EncodedRow) GetUint8(l *Layout, index int) uint64 {
	f := l.field(index, types.Uint8)
	return binary.LittleEndian.Uint64(r.buf.View()[f.Offset:])
}

func (r EncodedRow) GetUint16(l *Layout, index int) *uint256.Int {
	f := l.field(index, types.Uint16)
	buf := r.buf.View()[f.Offset : f.Offset+16]
	var b32 [32]byte
	for i := 0; i < 16; i++ {
		b32[31-i] = buf[i]
	}
	return new(uint256.Int).SetBytes32(b32[:])
}

func (r EncodedRow) GetFloat4(l *Layout, index int) float32 {
	f := l.field(index, types.Float4)
	return math.Float32frombits(binary.LittleEndian.Uint32(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetFloat8(l *Layout, index int) float64 {
	f := l.field(index, types.Float8)
	return math.Float64frombits(binary.LittleEndian.Uint64(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetUtf8(l *Layout, index int) string {
	l.field(index, types.Utf8)
	return string(r.readDynamic(l, index))
}

func (r EncodedRow) GetBlob(l *Layout, index int) []byte {
	l.field(index, types.Blob)
	return r.readDynamic(l, index)
}

func (r EncodedRow) GetIntBig(l *Layout, index int) *big.Int {
	l.field(index, types.Int)
	return decodeBigInt(r.readDynamic(l, index))
}

func (r EncodedRow) GetUintBig(l *Layout, index int) *uint256.Int {
	l.field(index, types.Uint)
	return new(uint256.Int).SetBytes(r.readDynamic(l, index))
}

func (r EncodedRow) GetDecimal(l *Layout, index int) decimal.Decimal {
	l.field(index, types.Decimal)
	d, err := decimal.NewFromString(string(r.readDynamic(l, index)))
	if err != nil {
		panic("row: corrupt decimal encoding: " + err.Error())
	}
	return d
}

func (r EncodedRow) GetDate(l *Layout, index int) types.Date {
	f := l.field(index, types.Date)
	return types.Date(int32(binary.LittleEndian.Uint32(r.buf.View()[f.Offset:])))
}

func (r EncodedRow) GetDateTime(l *Layout, index int) types.DateTime {
	f := l.field(index, types.DateTime)
	buf := r.buf.View()[f.Offset:]
	return types.DateTime{
		Seconds: int64(binary.LittleEndian.Uint64(buf[0:8])),
		Nanos:   binary.LittleEndian.Uint32(buf[8:12]),
	}
}

func (r EncodedRow) GetTime(l *Layout, index int) types.Time {
	f := l.field(index, types.Time)
	return types.Time(binary.LittleEndian.Uint64(r.buf.View()[f.Offset:]))
}

func (r EncodedRow) GetInterval(l *Layout, index int) types.Interval {
	f := l.field(index, types.Interval)
	buf := r.buf.View()[f.Offset:]
	return types.Interval{
		Months: int32(binary.LittleEndian.Uint32(buf[0:4])),
		Days:   int32(binary.LittleEndian.Uint32(buf[4:8])),
		Nanos:  int64(binary.LittleEndian.Uint64(buf[8:16])),
	}
}

func (r EncodedRow) GetRowNumber(l *Layout, index int) uint64 {
	f := l.field(index, types.RowNumber)
	return binary.LittleEndian.Uint64(r.buf.View()[f.Offset:])
}

func (r EncodedRow) getFixed16(l *Layout, index int, want types.Type) [16]byte {
	f := l.field(index, want)
	var out [16]byte
	copy(out[:], r.buf.View()[f.Offset:f.Offset+16])
	return out
}

func (r EncodedRow) GetUuid4(l *Layout, index int) types.Uuid4 {
	return types.Uuid4(r.getFixed16(l, index, types.Uuid4))
}
func (r EncodedRow) GetUuid7(l *Layout, index int) types.Uuid7 {
	return types.Uuid7(r.getFixed16(l, index, types.Uuid7))
}
func (r EncodedRow) GetIdentityId(l *Layout, index int) types.IdentityId {
	return types.IdentityId(r.getFixed16(l, index, types.IdentityId))
}

func getBigSigned128(buf []byte) *big.Int {
	negative := buf[15]&0x80 != 0
	work := make([]byte, 16)
	copy(work, buf)
	if negative {
		carry := uint16(1)
		for i := 0; i < 16; i++ {
			sum := uint16(^work[i]) + carry
			work[i] = byte(sum)
			carry = sum >> 8
		}
	}
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[15-i] = work[i]
	}
	mag := new(big.Int).SetBytes(be)
	if negative {
		mag.Neg(mag)
	}
	return mag
}

func decodeBigInt(data []byte) *big.Int {
	if len(data) == 0 {
		return big.NewInt(0)
	}
	mag := new(big.Int).SetBytes(data[1:])
	if data[0] == 1 {
		mag.Neg(mag)
	}
	return mag
}
