// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import (
	"github.com/reifydb/reifydb/types"
	"github.com/reifydb/reifydb/value"
)

// UndefinedData is a column placeholder recording only a row count
// (spec.md §3). It converts to any typed column lazily, the first time a
// defined value is pushed (spec.md §4.2).
type UndefinedData struct {
	n int
}

// NewUndefined returns an UndefinedData of length n.
func NewUndefined(n int) *UndefinedData { return &UndefinedData{n: n} }

func (u *UndefinedData) Type() types.Type { return types.Undefined }
func (u *UndefinedData) Len() int         { return u.n }
func (u *UndefinedData) Get(i int) value.Value {
	return value.Undefined
}
func (u *UndefinedData) IsValid(i int) bool     { return false }
func (u *UndefinedData) IsFullyDefined() bool   { return u.n == 0 }
func (u *UndefinedData) PushUndefined()         { u.n++ }
func (u *UndefinedData) Clone() Data            { return &UndefinedData{n: u.n} }
func (u *UndefinedData) Slice(start, end int) Data {
	return &UndefinedData{n: end - start}
}

// PushValue on an UndefinedData is a programming error: expansion to a
// typed container is Column's responsibility (it knows the incoming
// value's type ahead of delegating), not the container's.
func (u *UndefinedData) PushValue(v value.Value) {
	panic("column: PushValue called directly on UndefinedData; use Column.Push")
}
