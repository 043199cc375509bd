// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"encoding/binary"

	"github.com/reifydb/reifydb/evaluate"
	"github.com/reifydb/reifydb/value"
)

// SortDirection mirrors index.Direction at the bytecode level; kept as its
// own type since a sort spec describes a pipeline-level key, not a storage
// key (spec.md §4.4 vs §4.7 are separate concerns that happen to share a
// concept).
type SortDirection uint8

const (
	SortAsc SortDirection = iota
	SortDesc
)

// SortKey names one column of a Sort operator's key tuple.
type SortKey struct {
	Column    string
	Direction SortDirection
}

// SortSpec is one entry of BytecodeProgram.SortSpecs.
type SortSpec struct {
	Keys []SortKey
}

// ExtensionField is one `(name, expr)` pair of an Extend operator
// (spec.md §4.7 "Extend ... evaluates each (name, expr) and appends
// resulting columns").
type ExtensionField struct {
	Name string
	Expr evaluate.CompiledExpr
}

// SourceDef names a storage scan target; the VM never interprets it beyond
// handing it to the Source implementation it was constructed with
// (spec.md §6 "VM ↔ storage interface").
type SourceDef struct {
	Name string
}

// FunctionDef describes a user-defined bytecode function: an entry offset
// into the shared bytecode, its parameter count, and its local count
// (spec.md §4.7 "Function calls").
type FunctionDef struct {
	Name       string
	Offset     int
	Params     int
	LocalCount int
}

// BytecodeProgram is the flat, fully-resolved unit the VM executes
// (spec.md §6 "Bytecode program"): one shared bytecode stream plus the
// indexable static tables its operand immediates reference.
type BytecodeProgram struct {
	Bytecode        []byte
	Constants       []value.Value
	Strings         []string
	ColumnLists     [][]string
	SortSpecs       []SortSpec
	ExtensionSpecs  [][]ExtensionField
	Sources         []SourceDef
	ScriptFunctions []FunctionDef
	Exprs           []evaluate.CompiledExpr
}

// BytecodeReader is a cursor over one BytecodeProgram's instruction stream.
// Every Read* call advances the cursor past the value it returns; callers
// check the ok flag instead of relying on a panic, since a truncated
// program is a well-formed runtime error (spec.md §7 "Plan errors"), not a
// programming bug.
type BytecodeReader struct {
	data []byte
	pos  int
}

func NewBytecodeReader(data []byte, pos int) *BytecodeReader {
	return &BytecodeReader{data: data, pos: pos}
}

func (r *BytecodeReader) Position() int { return r.pos }

func (r *BytecodeReader) SetPosition(pos int) { r.pos = pos }

func (r *BytecodeReader) ReadOpcode() (Opcode, bool) {
	b, ok := r.ReadU8()
	return Opcode(b), ok
}

func (r *BytecodeReader) ReadU8() (uint8, bool) {
	if r.pos+1 > len(r.data) {
		return 0, false
	}
	v := r.data[r.pos]
	r.pos++
	return v, true
}

func (r *BytecodeReader) ReadU16() (uint16, bool) {
	if r.pos+2 > len(r.data) {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, true
}

func (r *BytecodeReader) ReadU32() (uint32, bool) {
	if r.pos+4 > len(r.data) {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, true
}

func (r *BytecodeReader) ReadI16() (int16, bool) {
	u, ok := r.ReadU16()
	return int16(u), ok
}
