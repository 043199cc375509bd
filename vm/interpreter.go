// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reifydb/reifydb/column"
	"github.com/reifydb/reifydb/evaluate"
	"github.com/reifydb/reifydb/value"
)

// Builtins is consulted by CallBuiltin; nil means no builtins are
// registered, and any CallBuiltin instruction fails.
type Machine struct {
	State    *State
	Builtins *BuiltinRegistry
}

func NewMachine(st *State, builtins *BuiltinRegistry) *Machine {
	if builtins == nil {
		builtins = NewBuiltinRegistry()
	}
	return &Machine{State: st, Builtins: builtins}
}

// Run executes the program from st.ip until Halt, running off the end of
// the bytecode (treated as an implicit Halt), or an error.
func (m *Machine) Run(ctx context.Context) error {
	st := m.State
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		offset := st.ip
		r := NewBytecodeReader(st.program.Bytecode, st.ip)
		op, ok := r.ReadOpcode()
		if !ok {
			return nil
		}
		halt, err := m.step(ctx, r, op, offset)
		st.ip = r.Position()
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
	}
}

func (m *Machine) step(ctx context.Context, r *BytecodeReader, op Opcode, offset int) (halt bool, err error) {
	st := m.State
	switch op {
	case OpNop:
		return false, nil
	case OpHalt:
		return true, nil

	case OpPushConst:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushConst: missing operand")
		}
		v, err := indexed(st.program.Constants, int(idx), offset, "constant")
		if err != nil {
			return false, err
		}
		st.pushOperand(ScalarOperand(v))
		return false, nil

	case OpPushExpr:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushExpr: missing operand")
		}
		if int(idx) >= len(st.program.Exprs) {
			return false, newErr(ErrIndexOutOfRange, offset, "expr index %d out of range", idx)
		}
		st.pushOperand(ExprRefOperand(int(idx)))
		return false, nil

	case OpPushColRef:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushColRef: missing operand")
		}
		name, err := indexed(st.program.Strings, int(idx), offset, "string")
		if err != nil {
			return false, err
		}
		st.pushOperand(ColRefOperand(name))
		return false, nil

	case OpPushColList:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushColList: missing operand")
		}
		list, err := indexed(st.program.ColumnLists, int(idx), offset, "column list")
		if err != nil {
			return false, err
		}
		st.pushOperand(ColListOperand(list))
		return false, nil

	case OpPushSortSpec:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushSortSpec: missing operand")
		}
		if int(idx) >= len(st.program.SortSpecs) {
			return false, newErr(ErrIndexOutOfRange, offset, "sort spec index %d out of range", idx)
		}
		st.pushOperand(SortSpecRefOperand(int(idx)))
		return false, nil

	case OpPushExtSpec:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "PushExtSpec: missing operand")
		}
		if int(idx) >= len(st.program.ExtensionSpecs) {
			return false, newErr(ErrIndexOutOfRange, offset, "extension spec index %d out of range", idx)
		}
		st.pushOperand(ExtSpecRefOperand(int(idx)))
		return false, nil

	case OpDrop:
		_, err := st.popOperand(offset)
		return false, err

	case OpLoadVar:
		id, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "LoadVar: missing operand")
		}
		v, ok := st.scopes.load(id)
		if !ok {
			return false, newErr(ErrUndefinedVariable, offset, "variable %d not bound", id)
		}
		st.pushOperand(v)
		return false, nil

	case OpStoreVar:
		id, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "StoreVar: missing operand")
		}
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		st.scopes.store(id, v)
		return false, nil

	case OpUpdateVar:
		id, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "UpdateVar: missing operand")
		}
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		if !st.scopes.update(id, v) {
			return false, newErr(ErrUndefinedVariable, offset, "variable %d not bound", id)
		}
		return false, nil

	case OpLoadInternalVar:
		id, ok := r.ReadU16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "LoadInternalVar: missing operand")
		}
		v, ok := st.scopes.loadInternal(id)
		if !ok {
			return false, newErr(ErrUndefinedVariable, offset, "internal variable %d not bound", id)
		}
		st.pushOperand(v)
		return false, nil

	case OpStoreInternalVar:
		id, ok := r.ReadU16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "StoreInternalVar: missing operand")
		}
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		st.scopes.storeInternal(id, v)
		return false, nil

	case OpLoadPipeline:
		id, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "LoadPipeline: missing operand")
		}
		v, ok := st.scopes.load(id)
		if !ok {
			return false, newErr(ErrUndefinedVariable, offset, "variable %d not bound", id)
		}
		p, ok := v.Pipeline()
		if !ok {
			return false, newErr(ErrExpectedPipeline, offset, "variable %d is not a pipeline", id)
		}
		st.pushPipeline(p)
		return false, nil

	case OpStorePipeline:
		id, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "StorePipeline: missing operand")
		}
		p, err := st.popPipeline(offset)
		if err != nil {
			return false, err
		}
		st.scopes.store(id, PipelineOperand(p))
		return false, nil

	case OpSource:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "Source: missing operand")
		}
		def, err := indexed(st.program.Sources, int(idx), offset, "source")
		if err != nil {
			return false, err
		}
		scan, err := m.openScanWithRetry(ctx, def)
		if err != nil {
			return false, err
		}
		id := st.allocScanID()
		st.activeScans.put(id, scan)
		st.pushPipeline(newScanPipeline(scan, st.config.BatchSize))
		return false, nil

	case OpFetchBatch:
		p, err := st.peekPipeline(offset)
		if err != nil {
			return false, err
		}
		batch, ok, err := p.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			st.pushOperand(FrameOperand(nil))
			return false, nil
		}
		st.pushOperand(FrameOperand(&Frame{Columns: batch}))
		return false, nil

	case OpInline:
		count, ok := r.ReadU16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "Inline: missing operand")
		}
		batches := make([]*column.Columns, count)
		for i := int(count) - 1; i >= 0; i-- {
			v, err := st.popOperand(offset)
			if err != nil {
				return false, err
			}
			f, ok := v.Frame()
			if !ok || f == nil {
				return false, newErr(ErrExpectedFrame, offset, "Inline: expected frame operand")
			}
			batches[i] = f.Columns
		}
		st.pushPipeline(newInlinePipeline(batches))
		return false, nil

	case OpMerge:
		return false, newErr(ErrUnsupportedOperator, offset, "Merge is not supported")

	case OpApply:
		return false, m.applyInstruction(ctx, r, offset)

	case OpCollect:
		p, err := st.popPipeline(offset)
		if err != nil {
			return false, err
		}
		all, err := drain(ctx, p)
		if err != nil {
			return false, err
		}
		_ = p.Close()
		st.pushOperand(FrameOperand(&Frame{Columns: all}))
		return false, nil

	case OpPopPipeline:
		p, err := st.popPipeline(offset)
		if err != nil {
			return false, err
		}
		return false, p.Close()

	case OpCheckComplete:
		_, err := st.peekPipeline(offset)
		return false, err

	case OpJump:
		delta, ok := r.ReadI16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "Jump: missing operand")
		}
		r.SetPosition(r.Position() + int(delta))
		return false, nil

	case OpJumpIf:
		delta, ok := r.ReadI16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "JumpIf: missing operand")
		}
		cond, err := popBool(st, offset)
		if err != nil {
			return false, err
		}
		if cond {
			r.SetPosition(r.Position() + int(delta))
		}
		return false, nil

	case OpJumpIfNot:
		delta, ok := r.ReadI16()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "JumpIfNot: missing operand")
		}
		cond, err := popBool(st, offset)
		if err != nil {
			return false, err
		}
		if !cond {
			r.SetPosition(r.Position() + int(delta))
		}
		return false, nil

	case OpCall:
		idx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "Call: missing operand")
		}
		fn, err := indexed(st.program.ScriptFunctions, int(idx), offset, "function")
		if err != nil {
			return false, err
		}
		if len(st.operandStack) < fn.Params {
			return false, newErr(ErrStackUnderflow, offset, "Call %s: expected %d args", fn.Name, fn.Params)
		}
		base := len(st.operandStack) - fn.Params
		args := append([]Operand(nil), st.operandStack[base:]...)
		st.operandStack = st.operandStack[:base]
		st.pushCall(callFrame{
			returnAddr:   r.Position(),
			operandBase:  base,
			pipelineBase: len(st.pipelineStack),
			scopeDepth:   st.scopes.depth(),
		})
		st.scopes.enter()
		for i, a := range args {
			st.scopes.store(uint32(i), a)
		}
		r.SetPosition(fn.Offset)
		return false, nil

	case OpReturn:
		var ret Operand
		hasRet := len(st.operandStack) > 0
		if hasRet {
			ret, err = st.popOperand(offset)
			if err != nil {
				return false, err
			}
		}
		frame, err := st.popCall(offset)
		if err != nil {
			return false, err
		}
		st.scopes.truncateTo(frame.scopeDepth)
		st.operandStack = st.operandStack[:frame.operandBase]
		if hasRet {
			st.pushOperand(ret)
		}
		r.SetPosition(frame.returnAddr)
		return false, nil

	case OpCallBuiltin:
		nameIdx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "CallBuiltin: missing name operand")
		}
		argc, ok := r.ReadU8()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "CallBuiltin: missing argc operand")
		}
		name, err := indexed(st.program.Strings, int(nameIdx), offset, "string")
		if err != nil {
			return false, err
		}
		fn, ok := m.Builtins.Lookup(name)
		if !ok {
			return false, newErr(ErrUnsupportedOperator, offset, "unknown builtin %q", name)
		}
		if len(st.operandStack) < int(argc) {
			return false, newErr(ErrStackUnderflow, offset, "CallBuiltin %s: expected %d args", name, argc)
		}
		base := len(st.operandStack) - int(argc)
		args := append([]Operand(nil), st.operandStack[base:]...)
		st.operandStack = st.operandStack[:base]
		result, err := fn(st, args)
		if err != nil {
			return false, err
		}
		st.pushOperand(result)
		return false, nil

	case OpEnterScope:
		st.scopes.enter()
		return false, nil

	case OpExitScope:
		st.scopes.exit()
		return false, nil

	case OpFrameLen:
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		f, ok := v.Frame()
		if !ok {
			return false, newErr(ErrExpectedFrame, offset, "FrameLen: expected frame operand")
		}
		n := 0
		if f != nil {
			n = f.Len()
		}
		st.pushOperand(ScalarOperand(value.Int8v(int64(n))))
		return false, nil

	case OpFrameRow:
		rowIdx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "FrameRow: missing operand")
		}
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		f, ok := v.Frame()
		if !ok || f == nil {
			return false, newErr(ErrExpectedFrame, offset, "FrameRow: expected frame operand")
		}
		if int(rowIdx) >= f.Len() {
			return false, newErr(ErrIndexOutOfRange, offset, "row %d out of range", rowIdx)
		}
		fields := make(map[string]value.Value, f.Columns.Width())
		for _, c := range f.Columns.All() {
			fields[c.Name] = c.Get(int(rowIdx))
		}
		st.pushOperand(RecordOperand(evaluate.RecordValue(fields)))
		return false, nil

	case OpGetField:
		nameIdx, ok := r.ReadU32()
		if !ok {
			return false, newErr(ErrTruncatedProgram, offset, "GetField: missing operand")
		}
		name, err := indexed(st.program.Strings, int(nameIdx), offset, "string")
		if err != nil {
			return false, err
		}
		v, err := st.popOperand(offset)
		if err != nil {
			return false, err
		}
		rec, ok := v.Record()
		if !ok {
			return false, newErr(ErrTypeMismatch, offset, "GetField: expected record operand")
		}
		field, ok := rec.Record()[name]
		if !ok {
			return false, newErr(ErrUndefinedVariable, offset, "field %q not found", name)
		}
		st.pushOperand(ScalarOperand(field))
		return false, nil

	case OpIntAdd, OpIntSub, OpIntMul, OpIntDiv:
		return false, intArith(st, op, offset)

	case OpIntLt, OpIntLe, OpIntGt, OpIntGe, OpIntEq, OpIntNe:
		return false, intCompare(st, op, offset)

	default:
		return false, newErr(ErrInvalidOpcode, offset, "opcode %d", op)
	}
}

func (m *Machine) openScanWithRetry(ctx context.Context, def SourceDef) (ScanState, error) {
	st := m.State
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = st.config.ScanBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(st.config.ScanRetries)), ctx)
	attempt := 0
	var scan ScanState
	err := backoff.Retry(func() error {
		attempt++
		s, err := st.source.OpenScan(ctx, def)
		if err != nil {
			zap.S().Warnw("vm: scan open failed, retrying", "source", def.Name, "attempt", attempt, "error", err)
			return err
		}
		scan = s
		return nil
	}, policy)
	if err != nil {
		return nil, errors.Wrapf(err, "vm: open scan %q", def.Name)
	}
	return scan, nil
}

func popBool(st *State, offset int) (bool, error) {
	v, err := st.popOperand(offset)
	if err != nil {
		return false, err
	}
	s, ok := v.Scalar()
	if !ok {
		return false, newErr(ErrTypeMismatch, offset, "expected boolean scalar")
	}
	return s.AsBool(), nil
}

func intArith(st *State, op Opcode, offset int) error {
	b, err := st.popOperand(offset)
	if err != nil {
		return err
	}
	a, err := st.popOperand(offset)
	if err != nil {
		return err
	}
	av, bv, err := twoInts(a, b, offset)
	if err != nil {
		return err
	}
	var r int64
	switch op {
	case OpIntAdd:
		r = av + bv
	case OpIntSub:
		r = av - bv
	case OpIntMul:
		r = av * bv
	case OpIntDiv:
		if bv == 0 {
			return newErr(ErrTypeMismatch, offset, "integer division by zero")
		}
		r = av / bv
	}
	st.pushOperand(ScalarOperand(value.Int8v(r)))
	return nil
}

func intCompare(st *State, op Opcode, offset int) error {
	b, err := st.popOperand(offset)
	if err != nil {
		return err
	}
	a, err := st.popOperand(offset)
	if err != nil {
		return err
	}
	av, bv, err := twoInts(a, b, offset)
	if err != nil {
		return err
	}
	var r bool
	switch op {
	case OpIntLt:
		r = av < bv
	case OpIntLe:
		r = av <= bv
	case OpIntGt:
		r = av > bv
	case OpIntGe:
		r = av >= bv
	case OpIntEq:
		r = av == bv
	case OpIntNe:
		r = av != bv
	}
	st.pushOperand(ScalarOperand(value.Bool(r)))
	return nil
}

func twoInts(a, b Operand, offset int) (int64, int64, error) {
	av, ok := a.Scalar()
	if !ok {
		return 0, 0, newErr(ErrTypeMismatch, offset, "expected integer scalar")
	}
	bv, ok := b.Scalar()
	if !ok {
		return 0, 0, newErr(ErrTypeMismatch, offset, "expected integer scalar")
	}
	return av.AsInt64(), bv.AsInt64(), nil
}

func indexed[T any](table []T, idx, offset int, what string) (T, error) {
	var zero T
	if idx < 0 || idx >= len(table) {
		return zero, newErr(ErrIndexOutOfRange, offset, "%s index %d out of range", what, idx)
	}
	return table[idx], nil
}
