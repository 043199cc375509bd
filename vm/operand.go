// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"github.com/reifydb/reifydb/evaluate"
	"github.com/reifydb/reifydb/value"
)

// Operand is one value the operand stack or a scope slot can hold. Unlike
// Value (C1), an Operand can also reference VM-internal handles (an
// expression table index, a pipeline, a materialized Frame) that never flow
// into storage or across a wire (spec.md §4.7 "operand_stack: scalars,
// records, column-list handles, expression handles, frame handles, pipeline
// handles").
type Operand struct {
	kind operandKind

	scalar   value.Value
	record   evaluate.EvalValue
	exprRef  int
	colRef   string
	colList  []string
	sortSpec int
	extSpec  int
	pipeline Pipeline
	frame    *Frame
}

type operandKind uint8

const (
	operandScalar operandKind = iota
	operandRecord
	operandExprRef
	operandColRef
	operandColList
	operandSortSpecRef
	operandExtSpecRef
	operandPipelineRef
	operandFrame
)

func ScalarOperand(v value.Value) Operand       { return Operand{kind: operandScalar, scalar: v} }
func RecordOperand(v evaluate.EvalValue) Operand { return Operand{kind: operandRecord, record: v} }
func ExprRefOperand(i int) Operand              { return Operand{kind: operandExprRef, exprRef: i} }
func ColRefOperand(name string) Operand         { return Operand{kind: operandColRef, colRef: name} }
func ColListOperand(names []string) Operand     { return Operand{kind: operandColList, colList: names} }
func SortSpecRefOperand(i int) Operand          { return Operand{kind: operandSortSpecRef, sortSpec: i} }
func ExtSpecRefOperand(i int) Operand           { return Operand{kind: operandExtSpecRef, extSpec: i} }
func PipelineOperand(p Pipeline) Operand        { return Operand{kind: operandPipelineRef, pipeline: p} }
func FrameOperand(f *Frame) Operand             { return Operand{kind: operandFrame, frame: f} }

func (o Operand) IsScalar() bool   { return o.kind == operandScalar }
func (o Operand) IsPipeline() bool { return o.kind == operandPipelineRef }
func (o Operand) IsFrame() bool    { return o.kind == operandFrame }

func (o Operand) Scalar() (value.Value, bool) {
	if o.kind != operandScalar {
		return value.Value{}, false
	}
	return o.scalar, true
}

func (o Operand) Record() (evaluate.EvalValue, bool) {
	if o.kind != operandRecord {
		return evaluate.EvalValue{}, false
	}
	return o.record, true
}

func (o Operand) ExprRef() (int, bool) {
	if o.kind != operandExprRef {
		return 0, false
	}
	return o.exprRef, true
}

func (o Operand) ColRef() (string, bool) {
	if o.kind != operandColRef {
		return "", false
	}
	return o.colRef, true
}

func (o Operand) ColList() ([]string, bool) {
	if o.kind != operandColList {
		return nil, false
	}
	return o.colList, true
}

func (o Operand) SortSpecRef() (int, bool) {
	if o.kind != operandSortSpecRef {
		return 0, false
	}
	return o.sortSpec, true
}

func (o Operand) ExtSpecRef() (int, bool) {
	if o.kind != operandExtSpecRef {
		return 0, false
	}
	return o.extSpec, true
}

func (o Operand) Pipeline() (Pipeline, bool) {
	if o.kind != operandPipelineRef {
		return nil, false
	}
	return o.pipeline, true
}

func (o Operand) Frame() (*Frame, bool) {
	if o.kind != operandFrame {
		return nil, false
	}
	return o.frame, true
}
