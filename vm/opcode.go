// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package vm executes the linear bytecode program produced by the planner
// (spec.md §4.7 "Bytecode Virtual Machine"), grounded on
// crates/vm/src/vmcore/interpreter.rs: one opcode per instruction byte, a
// set of stacks (operand, pipeline, call), a lexical scope table, and a set
// of indexable static tables the bytecode's operand immediates reference.
//
// The original is async (subqueries and storage scans are both awaited);
// this port is synchronous and threads a context.Context for cancellation
// instead, matching the rest of this module's concurrency story (spec.md §5).
package vm

// Opcode identifies a single bytecode instruction. Operand widths are
// declared per opcode (spec.md §6 "Bytecode program"): u8, u16, u32, or i16,
// little-endian, immediately following the opcode byte.
type Opcode uint8

const (
	// Stack
	OpPushConst Opcode = iota
	OpPushExpr
	OpPushColRef
	OpPushColList
	OpPushSortSpec
	OpPushExtSpec
	OpDrop

	// Variables
	OpLoadVar
	OpStoreVar
	OpUpdateVar
	OpLoadPipeline
	OpStorePipeline
	OpLoadInternalVar
	OpStoreInternalVar

	// Pipeline
	OpSource
	OpFetchBatch
	OpInline
	OpMerge
	OpApply
	OpCollect
	OpPopPipeline
	OpCheckComplete

	// Control
	OpJump
	OpJumpIf
	OpJumpIfNot
	OpCall
	OpReturn
	OpCallBuiltin
	OpNop
	OpHalt

	// Scopes
	OpEnterScope
	OpExitScope

	// Frames
	OpFrameLen
	OpFrameRow
	OpGetField

	// Scalar fast-path integer ops (crates/vm/src/vmcore/interpreter.rs
	// special-cases Int8 scalar arithmetic directly on the operand stack,
	// bypassing columnar kernel dispatch for loop counters / literals).
	OpIntAdd
	OpIntSub
	OpIntMul
	OpIntDiv
	OpIntLt
	OpIntLe
	OpIntGt
	OpIntGe
	OpIntEq
	OpIntNe
)

// OperatorKind identifies the pipeline operator an Apply instruction drives
// (spec.md §4.7 "Operator application under Apply").
type OperatorKind uint8

const (
	OperatorFilter OperatorKind = iota
	OperatorSelect
	OperatorExtend
	OperatorTake
	OperatorSort
	OperatorAggregate
)

func (k OperatorKind) String() string {
	switch k {
	case OperatorFilter:
		return "Filter"
	case OperatorSelect:
		return "Select"
	case OperatorExtend:
		return "Extend"
	case OperatorTake:
		return "Take"
	case OperatorSort:
		return "Sort"
	case OperatorAggregate:
		return "Aggregate"
	default:
		return "Unknown"
	}
}
