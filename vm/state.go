// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"github.com/reifydb/reifydb/evaluate"
)

// State holds everything one execution of a BytecodeProgram needs: the
// instruction pointer, the three stacks, the lexical scope table, the
// active-scan LRU, and the storage/evaluation context the opcodes drive
// (spec.md §4.7 "State").
type State struct {
	ip      int
	program *BytecodeProgram

	operandStack   []Operand
	pipelineStack  []Pipeline
	callStack      []callFrame
	scopes         *scopes
	activeScans    *scanTable
	nextScanID     uint16

	source  Source
	evalCtx *evaluate.Context
	config  Config
}

func NewState(program *BytecodeProgram, source Source, evalCtx *evaluate.Context, cfg Config) (*State, error) {
	scans, err := newScanTable(cfg.ActiveScanLRU)
	if err != nil {
		return nil, err
	}
	return &State{
		program: program,
		scopes:  newScopes(),
		activeScans: scans,
		source:  source,
		evalCtx: evalCtx,
		config:  cfg,
	}, nil
}

func (s *State) pushOperand(o Operand) { s.operandStack = append(s.operandStack, o) }

func (s *State) popOperand(offset int) (Operand, error) {
	if len(s.operandStack) == 0 {
		return Operand{}, newErr(ErrStackUnderflow, offset, "operand stack empty")
	}
	last := len(s.operandStack) - 1
	v := s.operandStack[last]
	s.operandStack = s.operandStack[:last]
	return v, nil
}

func (s *State) peekOperand(offset int) (Operand, error) {
	if len(s.operandStack) == 0 {
		return Operand{}, newErr(ErrStackUnderflow, offset, "operand stack empty")
	}
	return s.operandStack[len(s.operandStack)-1], nil
}

func (s *State) pushPipeline(p Pipeline) { s.pipelineStack = append(s.pipelineStack, p) }

func (s *State) popPipeline(offset int) (Pipeline, error) {
	if len(s.pipelineStack) == 0 {
		return nil, newErr(ErrExpectedPipeline, offset, "pipeline stack empty")
	}
	last := len(s.pipelineStack) - 1
	p := s.pipelineStack[last]
	s.pipelineStack = s.pipelineStack[:last]
	return p, nil
}

func (s *State) peekPipeline(offset int) (Pipeline, error) {
	if len(s.pipelineStack) == 0 {
		return nil, newErr(ErrExpectedPipeline, offset, "pipeline stack empty")
	}
	return s.pipelineStack[len(s.pipelineStack)-1], nil
}

func (s *State) pushCall(f callFrame) { s.callStack = append(s.callStack, f) }

func (s *State) popCall(offset int) (callFrame, error) {
	if len(s.callStack) == 0 {
		return callFrame{}, newErr(ErrStackUnderflow, offset, "call stack empty")
	}
	last := len(s.callStack) - 1
	f := s.callStack[last]
	s.callStack = s.callStack[:last]
	return f, nil
}

func (s *State) allocScanID() uint16 {
	id := s.nextScanID
	s.nextScanID++
	return id
}
