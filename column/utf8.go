// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/internal/bitvec"
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// Utf8Container backs a Utf8 column. MaxBytes is the declared per-value byte
// ceiling (spec.md §4.2); 0 means unbounded.
type Utf8Container struct {
	validity
	data     CowVec[string]
	MaxBytes int
}

// NewUtf8 builds a Utf8Container from a fully-defined slice.
func NewUtf8(data []string, maxBytes int) *Utf8Container {
	return &Utf8Container{
		validity: validity{bits: bitvec.AllSet(uint(len(data)))},
		data:     NewCowVec(append([]string(nil), data...)),
		MaxBytes: maxBytes,
	}
}

// NewUtf8WithValidity builds a Utf8Container with an explicit validity vector.
func NewUtf8WithValidity(data []string, v *bitvec.Vec, maxBytes int) *Utf8Container {
	return &Utf8Container{validity: validity{bits: v}, data: NewCowVec(append([]string(nil), data...)), MaxBytes: maxBytes}
}

func (c *Utf8Container) Type() types.Type { return types.Utf8 }
func (c *Utf8Container) Len() int         { return c.data.Len() }

func (c *Utf8Container) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.Utf8(c.data.View()[i])
}

func (c *Utf8Container) PushValue(v value.Value) {
	c.data.Append(v.AsUtf8())
	c.pushValid(true)
}

func (c *Utf8Container) PushUndefined() {
	c.data.Append("")
	c.pushValid(false)
}

func (c *Utf8Container) Clone() Data {
	return &Utf8Container{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), MaxBytes: c.MaxBytes}
}

func (c *Utf8Container) Slice(start, end int) Data {
	return &Utf8Container{
		validity: validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:     NewCowVec(append([]string(nil), c.data.View()[start:end]...)),
		MaxBytes: c.MaxBytes,
	}
}

func (c *Utf8Container) Raw() []string { return c.data.View() }

// BlobContainer backs a Blob column. MaxBytes is the declared per-value byte
// ceiling; 0 means unbounded.
type BlobContainer struct {
	validity
	data     CowVec[[]byte]
	MaxBytes int
}

// NewBlob builds a BlobContainer from a fully-defined slice.
func NewBlob(data [][]byte, maxBytes int) *BlobContainer {
	return &BlobContainer{
		validity: validity{bits: bitvec.AllSet(uint(len(data)))},
		data:     NewCowVec(append([][]byte(nil), data...)),
		MaxBytes: maxBytes,
	}
}

// NewBlobWithValidity builds a BlobContainer with an explicit validity vector.
func NewBlobWithValidity(data [][]byte, v *bitvec.Vec, maxBytes int) *BlobContainer {
	return &BlobContainer{validity: validity{bits: v}, data: NewCowVec(append([][]byte(nil), data...)), MaxBytes: maxBytes}
}

func (c *BlobContainer) Type() types.Type { return types.Blob }
func (c *BlobContainer) Len() int         { return c.data.Len() }

func (c *BlobContainer) Get(i int) value.Value {
	if !c.IsValid(i) {
		return value.Undefined
	}
	return value.Blob(c.data.View()[i])
}

func (c *BlobContainer) PushValue(v value.Value) {
	c.data.Append(v.AsBlob())
	c.pushValid(true)
}

func (c *BlobContainer) PushUndefined() {
	c.data.Append(nil)
	c.pushValid(false)
}

func (c *BlobContainer) Clone() Data {
	return &BlobContainer{validity: validity{bits: c.bits.Clone()}, data: c.data.Clone(), MaxBytes: c.MaxBytes}
}

func (c *BlobContainer) Slice(start, end int) Data {
	return &BlobContainer{
		validity: validity{bits: c.bits.Slice(uint(start), uint(end))},
		data:     NewCowVec(append([][]byte(nil), c.data.View()[start:end]...)),
		MaxBytes: c.MaxBytes,
	}
}

func (c *BlobContainer) Raw() [][]byte { return c.data.View() }
